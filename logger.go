package colstore

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/colstore/model"
)

// Logger wraps slog.Logger with colstore-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithTable adds a table field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// WithColumn adds a column field to the logger.
func (l *Logger) WithColumn(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", name),
	}
}

// WithChunk adds a chunk field to the logger.
func (l *Logger) WithChunk(id model.ChunkID) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunk", id),
	}
}

// LogAppend logs an insert into table.
func (l *Logger) LogAppend(ctx context.Context, table string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"table", table,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"table", table,
		)
	}
}

// LogScan logs a table scan.
func (l *Logger) LogScan(ctx context.Context, table, column, scanType string, matches int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"table", table,
			"column", column,
			"scan_type", scanType,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scan completed",
			"table", table,
			"column", column,
			"scan_type", scanType,
			"matches", matches,
			"duration", duration,
		)
	}
}

// LogCompress logs the compression of chunks of table.
func (l *Logger) LogCompress(ctx context.Context, table string, chunks int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compression failed",
			"table", table,
			"chunks", chunks,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "compression completed",
			"table", table,
			"chunks", chunks,
		)
	}
}
