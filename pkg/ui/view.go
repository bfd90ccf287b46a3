package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/picbook/pkg/model"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderNavbar())
	b.WriteString("\n")
	b.WriteString(RenderDivider(m.theme, m.width))
	b.WriteString("\n")

	body := m.viewport.View()
	if m.tocVisible {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderTOC(), " ", body))
	} else {
		b.WriteString(body)
	}
	b.WriteString("\n")

	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderNavbar renders the collection title on the left and progress plus
// the primary link on the right.
func (m Model) renderNavbar() string {
	r := m.theme.Renderer
	meta := m.store.Meta()

	title := meta.Title
	if title == "" {
		title = "Tutorials"
	}
	if meta.Author != "" {
		title += " by " + meta.Author
	}

	left := m.theme.Header.Render("▣ " + title)

	right := RenderProgressBar(m.theme, m.nav.Current(), m.nav.Len(), 10)
	if link, ok := meta.PrimaryLink(); ok {
		right += r.NewStyle().Foreground(m.theme.Subtext).Render("  " + link.Label + " (o)")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < SpaceSM {
		return left + strings.Repeat(" ", SpaceSM) + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderTOC renders the "Contents" sidebar with focus indication.
func (m Model) renderTOC() string {
	r := m.theme.Renderer

	// Use different border style when TOC has focus
	borderColor := m.theme.Border
	if m.focus == focusTOC {
		borderColor = m.theme.Primary
	}

	inner := sidebarWidth - 2 - 2 // border + padding
	labelWidth := inner - 3 - 2   // prefix + viewed mark
	tocStyle := r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, SpaceXS).
		Width(sidebarWidth - 2).
		Height(m.bodyHeight() - 2).
		MaxHeight(m.bodyHeight())

	headerStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	itemStyle := m.theme.Base
	selectedStyle := m.theme.Selected
	cursorStyle := r.NewStyle().Bold(true).Foreground(ColorInfo).Background(m.theme.Highlight)
	viewedStyle := r.NewStyle().Foreground(m.theme.Success)

	var b strings.Builder
	b.WriteString(headerStyle.Render("§ Contents"))
	if m.focus == focusTOC {
		b.WriteString(r.NewStyle().Foreground(m.theme.Primary).Render(" ●"))
	}
	titles := m.store.Titles()
	first := m.tocOffset
	last := min(len(titles), first+m.tocRows())
	if first > 0 || last < len(titles) {
		b.WriteString(r.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf(" %d-%d/%d", first+1, last, len(titles))))
	}
	b.WriteString("\n\n")

	current := m.nav.Current()
	for i := first; i < last; i++ {
		title := titles[i]
		prefix := "   "
		style := itemStyle

		if m.focus == focusTOC && i == m.tocCursor {
			prefix = " → "
			style = cursorStyle
		} else if i == current {
			prefix = " ▶ "
			style = selectedStyle
		}

		viewed := "  "
		if m.viewed[i] {
			viewed = " ✓"
		}

		label := padRight(truncate(fmt.Sprintf("%d. %s", i+1, title), labelWidth), labelWidth)
		b.WriteString(style.Render(prefix+label) + viewedStyle.Render(viewed))
		b.WriteString("\n")
	}

	return tocStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderLesson builds the scrollable body for one record: heading,
// description, code sample and explanation.
func (m Model) renderLesson(rec model.TutorialRecord) string {
	r := m.theme.Renderer
	var b strings.Builder

	glyph, color := m.theme.GetIconGlyph(rec.Icon)
	heading := r.NewStyle().Foreground(color).Bold(true).Render(glyph) + " " +
		r.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(rec.Title)
	b.WriteString(heading)
	b.WriteString("\n\n")

	if !rec.Description.IsEmpty() {
		b.WriteString(m.renderProse(rec.Description))
		b.WriteString("\n\n")
	}

	if rec.Code != "" {
		b.WriteString(r.NewStyle().Bold(true).Foreground(m.theme.Secondary).Render("Example Code:"))
		b.WriteString("\n\n")
		b.WriteString(m.renderCode(rec.Code))
		b.WriteString("\n\n")
	}

	if !rec.Explanation.IsEmpty() {
		b.WriteString(m.renderProse(rec.Explanation))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderProse(md model.Markdown) string {
	out, err := m.markdown.Render(md.String())
	if err != nil {
		// Fallback to raw content on error
		return md.String()
	}
	return out
}

// renderCode draws the sample on a dark panel. The text itself is never
// wrapped or re-indented; only an optional line-number gutter is added.
func (m Model) renderCode(code string) string {
	lines := strings.Split(code, "\n")
	if m.lineNumbers {
		digits := len(fmt.Sprint(len(lines)))
		for i, line := range lines {
			gutter := m.theme.CodeGutter.Render(fmt.Sprintf("%*d │ ", digits, i+1))
			lines[i] = gutter + line
		}
	}
	return m.theme.Code.Render(strings.Join(lines, "\n"))
}

// renderControls renders Previous/Next, disabled at the edges, plus the
// status message.
func (m Model) renderControls() string {
	r := m.theme.Renderer

	prev := m.controlStyle(m.nav.CanRetreat()).Render("← Previous")
	next := m.controlStyle(m.nav.CanAdvance()).Render("Next →")

	status := ""
	if m.statusMsg != "" {
		statusStyle := r.NewStyle().Foreground(m.theme.Success)
		if m.statusIsError {
			statusStyle = r.NewStyle().Foreground(m.theme.Danger).Bold(true)
		}
		status = statusStyle.Render(m.statusMsg)
	}

	gap := m.width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(status)
	if gap < SpaceLG {
		pad := strings.Repeat(" ", SpaceSM)
		return prev + pad + status + pad + next
	}
	left := gap / 2
	return prev + strings.Repeat(" ", left) + status + strings.Repeat(" ", gap-left) + next
}

func (m Model) controlStyle(enabled bool) lipgloss.Style {
	if enabled {
		return m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	}
	return m.theme.Renderer.NewStyle().Foreground(m.theme.Muted).Faint(true)
}

// renderFooter renders context-sensitive key hints.
func (m Model) renderFooter() string {
	r := m.theme.Renderer

	keyStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	descStyle := r.NewStyle().Foreground(m.theme.Subtext)
	sepStyle := r.NewStyle().Foreground(m.theme.Muted)

	var hints []string
	if m.focus == focusTOC && m.tocVisible {
		hints = []string{
			keyStyle.Render("j/k") + descStyle.Render(" select"),
			keyStyle.Render("Enter") + descStyle.Render(" open lesson"),
			keyStyle.Render("Tab") + descStyle.Render(" back to lesson"),
			keyStyle.Render("t") + descStyle.Render(" hide contents"),
			keyStyle.Render("q") + descStyle.Render(" quit"),
		}
	} else {
		hints = []string{
			keyStyle.Render("←/→") + descStyle.Render(" lessons"),
			keyStyle.Render("1-9") + descStyle.Render(" jump"),
			keyStyle.Render("j/k") + descStyle.Render(" scroll"),
			keyStyle.Render("[/]") + descStyle.Render(" pan"),
			keyStyle.Render("y") + descStyle.Render(" copy code"),
			keyStyle.Render("t") + descStyle.Render(" contents"),
			keyStyle.Render("q") + descStyle.Render(" quit"),
		}
	}

	sep := sepStyle.Render(" │ ")
	return strings.Join(hints, sep)
}
