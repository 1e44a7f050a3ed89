package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Makepad-fr/tada/internal/store"
)

// isolate points every config source at empty temp locations.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("HOME", home)
	t.Setenv("TADA_THEME", "")
	t.Setenv("TADA_LOG_LEVEL", "")
	t.Setenv("TADA_LOG_FILE", "")
	t.Setenv("TADA_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	work := t.TempDir()
	chdir(t, work)
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.ConfirmPrompt != store.DefaultConfirmPrompt {
		t.Errorf("ConfirmPrompt: got %q", cfg.ConfirmPrompt)
	}
	if len(cfg.Files) != 0 {
		t.Errorf("no files expected, got %v", cfg.Files)
	}
}

func TestProjectOverridesUser(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config", "tada", "config.toml"), `
theme = "neon"
log_level = "debug"
[labels]
edit = "編集"
`)
	writeFile(t, "tada.toml", `
theme = "mono"
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel from user file: got %q", cfg.LogLevel)
	}
	if cfg.Labels.Edit != "編集" {
		t.Errorf("Labels.Edit: got %q", cfg.Labels.Edit)
	}
	if cfg.Labels.Delete != "delete" {
		t.Errorf("unset labels keep defaults, got %q", cfg.Labels.Delete)
	}
	if len(cfg.Files) != 2 {
		t.Errorf("Files: got %v", cfg.Files)
	}
}

func TestHiddenProjectFile(t *testing.T) {
	isolate(t)
	writeFile(t, ".tada.toml", `confirm_prompt = "Sure?"`)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfirmPrompt != "Sure?" {
		t.Errorf("ConfirmPrompt: got %q", cfg.ConfirmPrompt)
	}
}

func TestExplicitFile(t *testing.T) {
	isolate(t)
	writeFile(t, "tada.toml", `theme = "neon"`)
	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, `log_file = "/tmp/tada.log"`)

	cfg, err := Load(explicit)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("explicit file replaces discovery, theme got %q", cfg.Theme)
	}
	if cfg.LogFile != "/tmp/tada.log" {
		t.Errorf("LogFile: got %q", cfg.LogFile)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing explicit file should fail")
	}
}

func TestEnvOverridesFiles(t *testing.T) {
	isolate(t)
	writeFile(t, "tada.toml", `theme = "neon"`)
	t.Setenv("TADA_THEME", "MONO")
	t.Setenv("TADA_LOG_LEVEL", "warn")
	t.Setenv("TADA_NO_COLOR", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be set from env")
	}
}

func TestNoColorConvention(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NO_COLOR should disable colour")
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{"bad theme", `theme = "rainbow"`, nil, "unknown theme"},
		{"bad level", `log_level = "loud"`, nil, "unknown log level"},
		{"unknown key", "colour = true", nil, "unknown keys: colour"},
		{"syntax", "theme = ", nil, "read config"},
		{"bad env bool", "", map[string]string{"TADA_NO_COLOR": "sometimes"}, "TADA_NO_COLOR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			writeFile(t, "tada.toml", tt.body)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error: got %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestPresenterLabels(t *testing.T) {
	cfg := Default()
	cfg.Labels.Save = "保存"
	cfg.Labels.Cancel = "  "
	l := cfg.PresenterLabels()
	if l.Save != "保存" {
		t.Errorf("Save: got %q", l.Save)
	}
	if l.Cancel != "cancel" {
		t.Errorf("blank captions fall back, got %q", l.Cancel)
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
