package core

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// LevelTrace sits one step below slog.LevelDebug and backs the fourth -v.
const LevelTrace = slog.LevelDebug - 4

// NewLogger builds the diagnostic logger for a verbosity ceiling: 0 shows
// errors only, each step up to 4 adds warnings, info, debug and trace.
// Warnings and errors go to stderr, everything below to stdout.
func NewLogger(verbosity int) *slog.Logger {
	return NewLoggerTo(os.Stdout, os.Stderr, verbosity)
}

// NewLoggerTo is NewLogger with explicit destinations.
func NewLoggerTo(out, errOut io.Writer, verbosity int) *slog.Logger {
	level := levelForVerbosity(verbosity)
	return slog.New(&routingHandler{
		out: tint.NewHandler(out, tintOptions(out, level)),
		err: tint.NewHandler(errOut, tintOptions(errOut, level)),
	})
}

// Trace logs msg at trace level.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

func tintOptions(w io.Writer, level slog.Level) *tint.Options {
	return &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// tint would render the custom trace level as "DBG-4"
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRC")
				}
			}
			return a
		},
	}
}

func levelForVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelError
	case verbosity == 1:
		return slog.LevelWarn
	case verbosity == 2:
		return slog.LevelInfo
	case verbosity == 3:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// routingHandler sends warnings and errors to one handler and everything
// below to another, so stderr carries only problems.
type routingHandler struct {
	out slog.Handler
	err slog.Handler
}

func (h *routingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.pick(level).Enabled(ctx, level)
}

func (h *routingHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.pick(record.Level).Handle(ctx, record)
}

func (h *routingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &routingHandler{out: h.out.WithAttrs(attrs), err: h.err.WithAttrs(attrs)}
}

func (h *routingHandler) WithGroup(name string) slog.Handler {
	return &routingHandler{out: h.out.WithGroup(name), err: h.err.WithGroup(name)}
}

func (h *routingHandler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelWarn {
		return h.err
	}
	return h.out
}
