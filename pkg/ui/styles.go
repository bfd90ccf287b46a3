package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceLG = 4
)

// Layout constants
const (
	sidebarWidth  = 30 // Outer width including border
	navbarHeight  = 2  // Title line + divider
	footerHeight  = 2  // Controls line + key hints
	minMainWidth  = 30
	minBodyHeight = 5
	defaultWidth  = 100
	defaultHeight = 30
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// Light mode colors tuned for WCAG AA compliance (contrast ratio >= 4.5:1)
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorText     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorSubtext  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"}
	ColorMuted    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorBgSubtle = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#363949"}

	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
)

// RenderDivider renders a horizontal divider line
func RenderDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderProgressBar renders a [i/n] counter followed by a filled bar.
func RenderProgressBar(t Theme, current, total, barWidth int) string {
	r := t.Renderer
	pageNum := current + 1

	progressText := r.NewStyle().
		Foreground(t.Subtext).
		Render(fmtCounter(pageNum, total))

	filledWidth := 0
	if total > 0 {
		filledWidth = (pageNum * barWidth) / total
		// Ensure at least 1 filled bar when on any page
		if filledWidth < 1 && pageNum > 0 {
			filledWidth = 1
		}
	}
	if filledWidth > barWidth {
		filledWidth = barWidth
	}

	bar := r.NewStyle().Foreground(t.Success).Render(strings.Repeat("█", filledWidth)) +
		r.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", barWidth-filledWidth))

	return progressText + " " + bar
}
