// Package logging builds the application logger.
//
// The TUI owns the terminal, so log lines go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the logger.
type Options struct {
	Level        string
	File         string
	ReportCaller bool
}

// Logger wraps a charmbracelet logger and the file it writes to.
type Logger struct {
	*log.Logger
	file *os.File
}

// New opens opts.File for appending and returns a logger writing to it.
// With no file the logger discards everything.
func New(opts Options) (*Logger, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	var file *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err = os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = file
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		ReportCaller:    opts.ReportCaller,
		Prefix:          "tada",
	})
	return &Logger{Logger: logger, file: file}, nil
}

// Close closes the log file. Calling it again is a no-op.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	l.SetOutput(io.Discard)
	return f.Close()
}
