// Package logx wires up the window manager's log output: four levels,
// default Info, written to stdout as "MM/dd/yyyy HH:mm:ss tt LEVEL
// message". It leans on log/slog for level filtering and the
// structured call sites (slog.Debug, slog.Warn with attrs) and
// supplies only the formatting.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is the minimum level that reaches the log, mutable up until
// SetDefault is called. Default is Info.
var Level = slog.LevelInfo

// SetDefault installs a slog.Logger using Handler and Level as the
// package-level default logger, so every slog.Info/Warn/Error/Debug
// call site in the program goes through it without threading a
// *slog.Logger value everywhere.
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, Level)))
}

// Handler renders records as "MM/dd/yyyy HH:mm:ss tt LEVEL message",
// followed by any structured attributes as space-separated key=value
// pairs, matching slog's own text handler for the attribute tail while
// replacing its timestamp/level/message preamble.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewHandler builds a Handler writing to w, enabled at minLevel and
// above.
func NewHandler(w io.Writer, minLevel slog.Leveler) *Handler {
	return &Handler{mu: &sync.Mutex{}, w: w, level: minLevel}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format("01/02/2006 15:04:05 PM"))
	b.WriteByte(' ')
	b.WriteString(levelWord(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	next := *h
	if h.group == "" {
		next.group = name
	} else {
		next.group = h.group + "." + name
	}
	return &next
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	fmt.Fprintf(b, "%v", a.Value.Any())
}

// levelWord renders the four level names; anything finer (e.g. slog's
// WarnContext-level adjustments) collapses to the nearest named level.
func levelWord(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
