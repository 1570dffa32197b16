package hybridvec

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with hybridvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an operation field to the logger.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op.String()),
	}
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogAliasFallback logs that an aliased source was materialized into a
// temporary before assignment.
func (l *Logger) LogAliasFallback(op Op, size int) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("aliased source materialized",
		"op", op.String(),
		"size", size,
	)
}

// LogRejected logs an operation refused by a size or capacity check.
func (l *Logger) LogRejected(op Op, err error) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("operation rejected",
		"op", op.String(),
		"error", err,
	)
}

var logger atomic.Pointer[Logger]

func init() {
	logger.Store(NoopLogger())
}

// SetLogger installs the package logger. A nil logger disables logging.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	logger.Store(l)
}

// DefaultLogger returns the installed package logger.
func DefaultLogger() *Logger {
	return logger.Load()
}
