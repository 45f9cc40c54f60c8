// Package logger configures the process-wide slog logger. Output goes to
// stderr through a tint handler, so diagnostics stay colorized and apart
// from lint results on stdout.
package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Interface defines the logging methods the pipeline uses.
type Interface interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Logger implements the logging interface.
type Logger struct {
	logger *slog.Logger
}

// New creates a logger at info level with color enabled.
func New() *Logger {
	return NewWithLevel(slog.LevelInfo, false)
}

// NewWithLevel creates a logger with the given level.
func NewWithLevel(level slog.Level, noColor bool) *Logger {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor || os.Getenv("NO_COLOR") != "",
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// NewWithVerbosity maps a --verbose count to a log level: 0 warns only,
// 1 adds info, 2 and above adds debug.
func NewWithVerbosity(verbose int, noColor bool) *Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return NewWithLevel(level, noColor)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// GetSlogLogger returns the underlying slog logger.
func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// SetAsDefault installs this logger as the slog default, so package-level
// slog calls across the pipeline use it.
func (l *Logger) SetAsDefault() {
	slog.SetDefault(l.logger)
}

// Error creates a structured error field
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Stack creates a structured stack field
func Stack(stack string) slog.Attr {
	return slog.String("stack", stack)
}
