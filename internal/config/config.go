// Package config loads tada settings from TOML files and the environment.
//
// Sources, lowest precedence first:
//  1. built-in defaults
//  2. user config file (<user config dir>/tada/config.toml)
//  3. project config file (tada.toml or .tada.toml in the working directory)
//  4. an explicit file passed with --config (replaces 2 and 3)
//  5. TADA_* environment variables
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Makepad-fr/tada/internal/presenter"
	"github.com/Makepad-fr/tada/internal/store"
)

const (
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
)

// Labels are the captions shown on controls and in the new-item entry.
type Labels struct {
	Edit        string `toml:"edit"`
	Delete      string `toml:"delete"`
	Save        string `toml:"save"`
	Cancel      string `toml:"cancel"`
	Add         string `toml:"add"`
	Placeholder string `toml:"placeholder"`
}

type Config struct {
	Theme         string `toml:"theme"`
	LogLevel      string `toml:"log_level"`
	LogFile       string `toml:"log_file"`
	NoColor       bool   `toml:"no_color"`
	ForceColor    bool   `toml:"force_color"`
	ConfirmPrompt string `toml:"confirm_prompt"`
	Labels        Labels `toml:"labels"`

	// Files lists the config files that were read, in order.
	Files []string `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:         DefaultTheme,
		LogLevel:      DefaultLogLevel,
		ConfirmPrompt: store.DefaultConfirmPrompt,
		Labels: Labels{
			Edit:        "edit",
			Delete:      "delete",
			Save:        "save",
			Cancel:      "cancel",
			Add:         "add",
			Placeholder: "What needs to be done?",
		},
	}
}

// Load builds the configuration. When explicit is non-empty only that
// file is read and it must exist.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	if explicit != "" {
		if err := cfg.decodeFile(explicit); err != nil {
			return nil, err
		}
	} else {
		for _, p := range []string{userConfigFile(), projectConfigFile()} {
			if p == "" {
				continue
			}
			if err := cfg.decodeFile(p); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeFile overlays the keys present in path onto c.
func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	c.Files = append(c.Files, path)
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("TADA_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_FILE")); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_NO_COLOR")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TADA_NO_COLOR: %w", err)
		}
		c.NoColor = b
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}
	return nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validThemes = map[string]bool{"classic": true, "neon": true, "mono": true}

// Validate normalises names and rejects unknown values.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	var errs []error
	if !validThemes[c.Theme] {
		errs = append(errs, fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme))
	}
	if !validLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", c.LogLevel))
	}
	if strings.TrimSpace(c.ConfirmPrompt) == "" {
		c.ConfirmPrompt = store.DefaultConfirmPrompt
	}
	return errors.Join(errs...)
}

// PresenterLabels returns the row control captions.
func (c *Config) PresenterLabels() presenter.Labels {
	d := presenter.DefaultLabels()
	return presenter.Labels{
		Edit:   orDefault(c.Labels.Edit, d.Edit),
		Delete: orDefault(c.Labels.Delete, d.Delete),
		Save:   orDefault(c.Labels.Save, d.Save),
		Cancel: orDefault(c.Labels.Cancel, d.Cancel),
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func userConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "tada", "config.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func projectConfigFile() string {
	for _, name := range []string{"tada.toml", ".tada.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
