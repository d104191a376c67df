package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the pretty text handler.
//
//nolint:gochecknoglobals
var (
	styleTime  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleMsg   = lipgloss.NewStyle().Bold(true)
	styleKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleTrace = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func levelStyle(l Level) lipgloss.Style {
	switch {
	case l >= LevelError:
		return styleError
	case l >= LevelWarn:
		return styleWarn
	case l >= LevelInfo:
		return styleInfo
	case l >= LevelDebug:
		return styleDebug
	default:
		return styleTrace
	}
}

// prettyHandler is a lipgloss-styled text handler.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	if !r.Time.IsZero() {
		if stamp := h.formatTime(r.Time); stamp != "" {
			sb.WriteString(styleTime.Render(stamp))
			sb.WriteByte(' ')
		}
	}

	level := Level(r.Level)
	sb.WriteString(levelStyle(level).Render(strings.ToUpper(level.String())))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			sb.WriteByte(' ')
			sb.WriteString(styleTime.Render(
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(styleMsg.Render(r.Message))

	for _, a := range h.attrs {
		h.writeAttr(&sb, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, a)

		return true
	})

	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.w, sb.String())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(clone.attrs[:len(clone.attrs):len(clone.attrs)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(clone.groups[:len(clone.groups):len(clone.groups)], name)

	return &clone
}

// formatTime routes the record time through ReplaceAttr so the configured
// layout applies to pretty output too.
func (h *prettyHandler) formatTime(t time.Time) string {
	a := slog.Time(slog.TimeKey, t)
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return ""
	}

	return a.Value.String()
}

func (h *prettyHandler) writeAttr(sb *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			if a.Key != "" {
				member.Key = a.Key + "." + member.Key
			}

			h.writeAttr(sb, member)
		}

		return
	}

	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}

	sb.WriteByte(' ')
	sb.WriteString(styleKey.Render(key + "="))
	sb.WriteString(a.Value.String())
}
