// Package logging builds the service logger. Production output is one JSON
// line per call; development output is colorized and human-readable. Either
// way every line carries the service tag and a timestamp.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/hothcommerce/storefront/internal/config"
)

// New returns the storefront logger writing to stdout. The handler is
// chosen from nodeEnv: "development" gets the console handler, everything
// else structured JSON.
func New(nodeEnv string) *slog.Logger {
	return NewWithWriter(nodeEnv, os.Stdout)
}

// NewWithWriter is New with an explicit sink, used by tests.
func NewWithWriter(nodeEnv string, w io.Writer) *slog.Logger {
	var h slog.Handler
	if nodeEnv == "development" {
		color := false
		if f, ok := w.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		h = &consoleHandler{mu: &sync.Mutex{}, w: w, color: color}
	} else {
		h = slog.NewJSONHandler(w, nil)
	}
	return slog.New(h).With("service", config.ServiceName)
}

// consoleHandler renders "HH:MM:SS [level] message {meta}" lines with the
// level colorized when the sink is a terminal.
type consoleHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	color bool
	attrs []slog.Attr
}

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorGreen  = "\x1b[32m"
	colorGray   = "\x1b[90m"
)

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	meta := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		meta[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		meta[a.Key] = a.Value.Any()
		return true
	})

	level := r.Level.String()
	if h.color {
		level = levelColor(r.Level) + level + colorReset
	}

	line := r.Time.Format("15:04:05") + " [" + level + "] " + r.Message
	if len(meta) > 0 {
		if b, err := json.Marshal(meta); err == nil {
			line += " " + string(b)
		}
	}
	line += "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &consoleHandler{mu: h.mu, w: h.w, color: h.color, attrs: merged}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	// groups are not used by this service; keep attrs flat
	return h
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	default:
		return colorGray
	}
}
