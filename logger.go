package vec3

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vec3-specific context.
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
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithHandle adds a handle field to the logger.
func (l *Logger) WithHandle(h Handle) *Logger {
	return &Logger{
		Logger: l.Logger.With("handle", h.String()),
	}
}

// LogCreate logs a handle allocation.
func (l *Logger) LogCreate(ctx context.Context, h Handle, err error) {
	if err != nil {
		l.ErrorContext(ctx, "create failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "create completed",
			"handle", h.String(),
		)
	}
}

// LogDestroy logs a handle release.
func (l *Logger) LogDestroy(ctx context.Context, h Handle, err error) {
	if err != nil {
		l.WarnContext(ctx, "destroy rejected",
			"handle", h.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "destroy completed",
			"handle", h.String(),
		)
	}
}

// LogDot logs a dot product over two handles.
func (l *Logger) LogDot(ctx context.Context, a, b Handle, err error) {
	if err != nil {
		l.WarnContext(ctx, "dot rejected",
			"left", a.String(),
			"right", b.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dot completed",
			"left", a.String(),
			"right", b.String(),
		)
	}
}
