package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBg        = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}
	ColorBgSubtle  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#363949"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorSubtext   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
)

var (
	// PanelStyle is the default style for unfocused panes
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHighlight)

	// FocusedPanelStyle is the style for the focused pane
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	// PaneTitleStyle renders the title line inside a pane
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// AxisLabelStyle renders the axis caption under a plot pane
	AxisLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StatusBarStyle renders the footer line
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext)

	// StatusErrorStyle renders transient error notices in the footer
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorDanger).
				Bold(true)

	// SearchLabelStyle renders the "Search:" prompt
	SearchLabelStyle = lipgloss.NewStyle().
				Foreground(ColorInfo).
				Bold(true)
)

// RenderSideBadge returns the hemisphere selector badge styled with the
// side's signature color.
func RenderSideBadge(t Theme, side string) string {
	return t.Renderer.NewStyle().
		Foreground(t.SideColor(side)).
		Bold(true).
		Render("[" + side + "]")
}
