package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
)

const timeLayout = "2006/01/02 15:04:05"

// TextHandler writes records as "2006/01/02 15:04:05 LEVEL msg key=value ...".
type TextHandler struct {
	slog.Handler
	l     *log.Logger
	attrs []slog.Attr
	group string
}

// NewTextHandler creates TextHandler writing to out.
func NewTextHandler(out io.Writer, options *slog.HandlerOptions) *TextHandler {
	return &TextHandler{
		Handler: slog.NewTextHandler(out, options),
		l:       log.New(out, "", 0),
	}
}

func (h *TextHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())

	for _, a := range h.attrs {
		attrs = append(attrs, h.format(a))
	}

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.format(a))

		return true
	})

	line := []any{r.Time.Format(timeLayout), r.Level.String(), r.Message}
	if len(attrs) > 0 {
		line = append(line, strings.Join(attrs, " "))
	}

	h.l.Println(line...)

	return nil
}

// WithAttrs keeps attributes of child loggers, e.g. slog.With("component", "loader").
func (h *TextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	child := *h
	child.Handler = h.Handler.WithAttrs(attrs)
	child.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &child
}

func (h *TextHandler) WithGroup(name string) slog.Handler {
	child := *h
	child.Handler = h.Handler.WithGroup(name)

	if child.group != "" {
		child.group += "." + name
	} else {
		child.group = name
	}

	return &child
}

func (h *TextHandler) format(a slog.Attr) string {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	return fmt.Sprintf("%s=%v", key, a.Value.Any())
}
