package ui

import (
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/picbook/pkg/debug"
)

// MarkdownRenderer renders lesson prose with Glamour at a given wrap width.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

// NewMarkdownRendererWithTheme creates a renderer for the named glamour
// style. "auto" (or "") is resolved once here against the terminal so later
// width changes never re-query it while the TUI owns the input.
func NewMarkdownRendererWithTheme(width int, style string, theme Theme) *MarkdownRenderer {
	m := &MarkdownRenderer{style: resolveMarkdownStyle(style, theme)}
	m.SetWidth(width)
	return m
}

func resolveMarkdownStyle(style string, theme Theme) string {
	if style != "" && style != "auto" {
		return style
	}
	if TermProfile < colorprofile.ANSI {
		return "notty"
	}
	if theme.Renderer != nil && !theme.Renderer.HasDarkBackground() {
		return "light"
	}
	return "dark"
}

// SetWidth rebuilds the underlying renderer when the wrap width changes.
func (m *MarkdownRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	if m.renderer != nil && width == m.width {
		return
	}
	m.width = width

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		debug.Log("glamour style %q unavailable, falling back to plain text: %v", m.style, err)
		m.renderer = nil
		return
	}
	m.renderer = r
}

// Width returns the current wrap width.
func (m *MarkdownRenderer) Width() int {
	return m.width
}

// Style returns the resolved glamour style name.
func (m *MarkdownRenderer) Style() string {
	return m.style
}

// Render converts markdown to styled terminal text. Without a working
// renderer the input is returned unchanged.
func (m *MarkdownRenderer) Render(md string) (string, error) {
	if m == nil || m.renderer == nil {
		return md, nil
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md, err
	}
	return strings.Trim(compressBlankLines(out), "\n"), nil
}
