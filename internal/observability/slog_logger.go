package observability

import (
	"log/slog"
	"os"
)

// SlogLogger implements the Logger interfaces of the lending and postgres
// packages on top of Go's standard structured logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger writing JSON to stderr at the given level.
func NewSlogLogger(level slog.Level) *SlogLogger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return &SlogLogger{logger: slog.New(handler)}
}

// NewSlogLoggerWithHandler creates a logger using the provided slog.Handler.
func NewSlogLoggerWithHandler(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
