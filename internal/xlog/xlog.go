// Package xlog is a minimal terminal handler for log/slog, used by
// cmd/abidump to report decode diagnostics. It is deliberately not a
// port of go-ethereum's log package: no global root logger, no vmodule
// flags, no legacy level shim. It exists purely so the CLI can print
// leveled, optionally colorized lines without every call site
// formatting timestamps and levels by hand.
package xlog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// LevelTrace sits below slog's own Debug level. abidump itself logs at
// Debug when --verbose is set and emits no Trace records.
const LevelTrace = slog.Level(-8)

var levelNames = map[slog.Level]string{
	LevelTrace:      "TRACE",
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARN",
	slog.LevelError: "ERROR",
}

func levelString(l slog.Level) string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return l.String()
}

func levelColor(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "\x1b[34m" // blue
	case slog.LevelDebug:
		return "\x1b[36m" // cyan
	case slog.LevelInfo:
		return "\x1b[32m" // green
	case slog.LevelWarn:
		return "\x1b[33m" // yellow
	case slog.LevelError:
		return "\x1b[31m" // red
	default:
		return ""
	}
}

// Handler is a slog.Handler that writes one line per record in the
// form "LEVEL[time] message key=value ...", colorizing the level and
// keys when color is enabled.
type Handler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Leveler
	color bool
	attrs []slog.Attr
}

// New returns a Handler writing to out at or above minLevel. color
// enables ANSI escapes around the level and attribute keys; callers
// should only pass true when out is known to be a terminal.
func New(out io.Writer, minLevel slog.Leveler, color bool) *Handler {
	return &Handler{
		mu:    new(sync.Mutex),
		out:   out,
		level: minLevel,
		color: color,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	lvl := levelString(r.Level)
	if h.color {
		buf.WriteString(levelColor(r.Level))
		buf.WriteString(lvl)
		buf.WriteString("\x1b[0m")
	} else {
		buf.WriteString(lvl)
	}
	buf.WriteByte('[')
	buf.WriteString(r.Time.Format("01-02|15:04:05.000"))
	buf.WriteString("] ")
	buf.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		buf.WriteByte(' ')
		if h.color {
			buf.WriteString("\x1b[2m")
			buf.WriteString(a.Key)
			buf.WriteString("\x1b[0m")
		} else {
			buf.WriteString(a.Key)
		}
		buf.WriteByte('=')
		fmt.Fprint(&buf, formatValue(a.Value))
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	// Groups are not needed by abidump's flat diagnostics; return the
	// handler unchanged rather than pretending to nest keys.
	return h
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return v.Duration().String()
	default:
		return fmt.Sprint(v.Any())
	}
}
