package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tada.log")
	l, err := New(Options{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("item added", "id", 1)
	l.Info("started")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	for _, want := range []string{"msg=\"item added\"", "id=1", "msg=started", "prefix=tada"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tada.log")
	l, err := New(Options{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	l.Close()

	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(string(b), "shown") {
		t.Error("warn line missing")
	}
}

func TestNew_NoFileDiscards(t *testing.T) {
	l, err := New(Options{Level: "info"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("nowhere")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_ReportCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tada.log")
	l, err := New(Options{Level: "debug", File: path, ReportCaller: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("here")
	l.Close()

	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "caller=") || !strings.Contains(string(b), "logging_test.go") {
		t.Errorf("caller not reported:\n%s", b)
	}
}

func TestClose_Twice(t *testing.T) {
	l, err := New(Options{Level: "info", File: filepath.Join(t.TempDir(), "tada.log")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	l.Info("after close")
}
