package hlog

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/scem/paramrename/internal/hlipgloss"
)

var levelColors = map[slog.Level]lipgloss.TerminalColor{
	slog.LevelDebug: lipgloss.Color("#29C6E8"),
	slog.LevelInfo:  lipgloss.Color("#2C75FE"),
	slog.LevelWarn:  lipgloss.Color("#E7C229"),
	slog.LevelError: lipgloss.Color("#FF2A25"),
}

type textHandler struct {
	attrs   []slog.Attr
	leveler slog.Leveler
	w       io.Writer
	mu      *sync.Mutex

	renderer Renderer
}

func (t textHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= t.leveler.Level()
}

func renderAttr(sb *strings.Builder, r Renderer, attr slog.Attr) {
	sb.WriteString(" ")
	sb.WriteString(r.keyStyle.Render(attr.Key + "="))
	sb.WriteString(attr.Value.String())
}

func FormatRecord(r Renderer, record slog.Record, attrs []slog.Attr) string {
	var sb strings.Builder
	sb.WriteString(r.lvlStyles[record.Level].Render(record.Level.String()))
	sb.WriteString(" ")
	sb.WriteString(record.Message)

	for _, attr := range attrs {
		renderAttr(&sb, r, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		renderAttr(&sb, r, attr)

		return true
	})

	return sb.String()
}

func (t textHandler) Handle(ctx context.Context, record slog.Record) error {
	line := FormatRecord(t.renderer, record, t.attrs) + "\n"

	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := io.WriteString(t.w, line)

	return err
}

func (t textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	t.attrs = slices.Clone(t.attrs)
	t.attrs = append(t.attrs, attrs...)

	return t
}

func (t textHandler) WithGroup(name string) slog.Handler {
	return t
}

type Renderer struct {
	lvlStyles map[slog.Level]lipgloss.Style
	keyStyle  lipgloss.Style
}

func NewRenderer(w io.Writer, plain bool) Renderer {
	r := hlipgloss.NewRenderer(w, plain)

	lvlStyles := map[slog.Level]lipgloss.Style{}
	for lvl, color := range levelColors {
		lvlStyles[lvl] = r.NewStyle().Bold(true).Foreground(color)
	}

	return Renderer{
		lvlStyles: lvlStyles,
		keyStyle:  r.NewStyle().Faint(true),
	}
}

func NewTextLogger(w io.Writer, leveler slog.Leveler, plain bool) Logger {
	return NewLogger(textHandler{
		w:        w,
		leveler:  leveler,
		mu:       &sync.Mutex{},
		renderer: NewRenderer(w, plain),
	})
}
