// Package log wraps slog with a component field so every line says
// which part of the client produced it.
package log

import (
	"log/slog"
	"os"
)

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldError     = "error"
)

// Logger wraps slog.Logger with a component name.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level   slog.Level
	Handler slog.Handler
}

// New creates a logger. Output goes to stderr so it never interleaves
// with rendered tables or the TUI.
func New(cfg Config) *Logger {
	handler := cfg.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level})
	}
	return &Logger{Logger: slog.New(handler)}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With(FieldComponent, component)}
}
