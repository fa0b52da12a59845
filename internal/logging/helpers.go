package logging

import (
	"context"
	"log/slog"
)

// FieldError is the key errors are logged under.
const FieldError = "error"

// Debug logs a debug message when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level with err attached under FieldError.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, FieldError, err)
	}
	logger.Error(msg, args...)
}

// With returns logger with args attached, or nil for a nil logger.
func With(logger *slog.Logger, args ...any) *slog.Logger {
	if logger == nil || len(args) == 0 {
		return logger
	}
	return logger.With(args...)
}

// Scoped resolves the request logger from ctx (falling back to fallback)
// and attaches args, typically the competition, team or match being served.
func Scoped(ctx context.Context, fallback *slog.Logger, args ...any) *slog.Logger {
	return With(FromContext(ctx, fallback), args...)
}
