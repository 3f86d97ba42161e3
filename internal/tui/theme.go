package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	// highlightStyle marks the region the listen sequence is on.
	highlightStyle = lipgloss.NewStyle().
			Background(colorYellow).
			Foreground(colorBase).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1).
			Width(34)

	listeningStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorYellow).Padding(0, 1)
	idleStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 1)

	footerStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusStyle   = lipgloss.NewStyle().Foreground(colorFocus)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
)
