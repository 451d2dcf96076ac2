package intercom

import (
	"fmt"
	"log/slog"
)

// Logger is the interface the core emits typed events to. The core never
// opens its own log sink; callers that don't provide one get a no-op logger.
type Logger interface {
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Debug(string, ...any) {}

// DefaultLogger returns a Logger backed by log/slog's default handler.
func DefaultLogger() Logger {
	return slogLogger{}
}

type slogLogger struct{}

func (slogLogger) Warn(msg string, args ...any) {
	slog.Warn("intercom: " + fmt.Sprintf(msg, args...))
}

func (slogLogger) Info(msg string, args ...any) {
	slog.Info("intercom: " + fmt.Sprintf(msg, args...))
}

func (slogLogger) Debug(msg string, args ...any) {
	slog.Debug("intercom: " + fmt.Sprintf(msg, args...))
}

// SlogLogger adapts an existing *slog.Logger.
func SlogLogger(l *slog.Logger) Logger {
	return &wrappedSlog{l}
}

type wrappedSlog struct {
	*slog.Logger
}

func (w *wrappedSlog) Warn(msg string, args ...any) {
	w.Logger.Warn("intercom: " + fmt.Sprintf(msg, args...))
}

func (w *wrappedSlog) Info(msg string, args ...any) {
	w.Logger.Info("intercom: " + fmt.Sprintf(msg, args...))
}

func (w *wrappedSlog) Debug(msg string, args ...any) {
	w.Logger.Debug("intercom: " + fmt.Sprintf(msg, args...))
}
