// Package obslog provides the small leveled logger used by
// ad.ParallelDecompose for its start/finish and per-worker progress
// messages, trimmed from the layered stderr/file design of
// jinterlante1206-AleutianLocal/pkg/logging to this module's needs: no
// enterprise exporter, no JSON file sink, just a stderr slog.Logger with
// an optional additional file destination.
package obslog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Level mirrors slog's four severities, letting callers pick a minimum
// without importing log/slog directly everywhere.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) toSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures a Logger. A zero-value Config logs Debug+ (LevelDebug
// is the zero Level) to stderr in text form.
type Config struct {
	Level Level
	// File, if non-nil, receives every record as well as stderr.
	File io.Writer
	// Quiet suppresses the stderr destination (File, if set, still
	// receives records).
	Quiet bool
}

// Logger wraps a slog.Logger with the Debug/Info/Warn/Error surface
// ad.ParallelDecompose calls directly.
type Logger struct {
	slog *slog.Logger
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlog()}

	var handlers []slog.Handler
	if !cfg.Quiet {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
	}
	if cfg.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(cfg.File, opts))
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.NewTextHandler(io.Discard, opts)
	case 1:
		handler = handlers[0]
	default:
		handler = &fanoutHandler{handlers: handlers}
	}
	return &Logger{slog: slog.New(handler)}
}

// Default returns a Logger that writes Info+ text records to stderr.
func Default() *Logger {
	return New(Config{Level: LevelInfo})
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a Logger that includes the given attributes on every
// subsequent record, e.g. l.With("worker", i) for per-worker progress.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// fanoutHandler dispatches each record to every wrapped handler, used
// when both a stderr and a file destination are configured.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: out}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: out}
}
