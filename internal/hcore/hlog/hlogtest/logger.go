package hlogtest

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/scem/paramrename/internal/hcore/hlog"
)

func NewLogger(t testing.TB) hlog.Logger {
	return hlog.NewLogger(console{t: t})
}

type console struct {
	t testing.TB

	attrs []slog.Attr
}

func (c console) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func renderAttr(sb *strings.Builder, attr slog.Attr) {
	sb.WriteString(" ")
	sb.WriteString(attr.Key)
	sb.WriteString("=")
	sb.WriteString(attr.Value.String())
}

func render(attrs []slog.Attr, record slog.Record) string {
	var sb strings.Builder
	sb.WriteString(record.Message)
	for _, attr := range attrs {
		renderAttr(&sb, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		renderAttr(&sb, attr)

		return true
	})

	return sb.String()
}

func (c console) Handle(ctx context.Context, record slog.Record) error {
	c.t.Logf("%s %s", record.Level.String(), render(c.attrs, record))

	return nil
}

func (c console) WithAttrs(attrs []slog.Attr) slog.Handler {
	c.attrs = slices.Clone(c.attrs)
	c.attrs = append(c.attrs, attrs...)

	return c
}

func (c console) WithGroup(name string) slog.Handler {
	return c
}

// Recorder captures records so tests can assert on what was logged.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.lines)
}

type recorderHandler struct {
	console
	r *Recorder
}

func (h recorderHandler) Handle(ctx context.Context, record slog.Record) error {
	h.r.mu.Lock()
	h.r.lines = append(h.r.lines, record.Level.String()+" "+render(h.attrs, record))
	h.r.mu.Unlock()

	return h.console.Handle(ctx, record)
}

func (h recorderHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.console = h.console.WithAttrs(attrs).(console) //nolint:errcheck

	return h
}

// NewRecordingLogger logs to t like NewLogger and also keeps every line in the returned Recorder.
func NewRecordingLogger(t testing.TB) (hlog.Logger, *Recorder) {
	r := &Recorder{}

	return hlog.NewLogger(recorderHandler{console: console{t: t}, r: r}), r
}

func (h recorderHandler) WithGroup(name string) slog.Handler {
	return h
}
