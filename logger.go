package bigseq

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bigseq-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCapacity adds a segment capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("segment_capacity", capacity),
	}
}

// LogSwitch logs a segment switch.
func (l *Logger) LogSwitch(ctx context.Context, from, to int64, loaded bool, d time.Duration) {
	l.DebugContext(ctx, "segment switched",
		"from", from,
		"to", to,
		"loaded", loaded,
		"duration", d,
	)
}

// LogStorageFailure logs a failed store operation.
func (l *Logger) LogStorageFailure(ctx context.Context, op string, segment int64, err error) {
	l.ErrorContext(ctx, "storage operation failed",
		"op", op,
		"segment", segment,
		"error", err,
	)
}

// LogCorrupted logs that an interrupted shift left the sequence unusable.
func (l *Logger) LogCorrupted(ctx context.Context, op string, index, size int, err error) {
	l.ErrorContext(ctx, "shift interrupted, sequence is unusable",
		"op", op,
		"index", index,
		"size", size,
		"error", err,
	)
}

// LogClose logs closing a sequence.
func (l *Logger) LogClose(ctx context.Context, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "close failed",
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sequence closed",
			"size", size,
		)
	}
}
