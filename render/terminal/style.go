package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Role colors — blue for human turns, emerald for everything else.
	colorUser  = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorOther = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}

	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleUserBadge  = lipgloss.NewStyle().Foreground(colorUser).Bold(true)
	styleOtherBadge = lipgloss.NewStyle().Foreground(colorOther).Bold(true)

	styleHeader    = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta      = lipgloss.NewStyle().Foreground(colorDim)
	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
