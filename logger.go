package groupseq

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with groupseq-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithGroupKey adds a group field to the logger.
func (l *Logger) WithGroupKey(key any) *Logger {
	return &Logger{
		Logger: l.Logger.With("group", key),
	}
}

// WithIndex adds a flat index field to the logger.
func (l *Logger) WithIndex(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", index),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(index int, err error) {
	if err != nil {
		l.Error("add failed",
			"error", err,
		)
	} else {
		l.Debug("add completed",
			"index", index,
		)
	}
}

// LogInsert logs a positional insert operation.
func (l *Logger) LogInsert(index int, err error) {
	if err != nil {
		l.Error("insert failed",
			"index", index,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"index", index,
		)
	}
}

// LogRemove logs a removal operation. index is -1 when nothing was
// removed.
func (l *Logger) LogRemove(index int, err error) {
	if err != nil {
		l.Error("remove failed",
			"index", index,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"index", index,
		)
	}
}

// LogSet logs an in-place replacement.
func (l *Logger) LogSet(index int, err error) {
	if err != nil {
		l.Error("set failed",
			"index", index,
			"error", err,
		)
	} else {
		l.Debug("set completed",
			"index", index,
		)
	}
}

// LogClear logs a bulk removal. scope is "group" or "all".
func (l *Logger) LogClear(scope string, count int) {
	l.Debug("clear completed",
		"scope", scope,
		"count", count,
	)
}
