package tui

import (
	"credcheck/types"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	colorPrimary    = "#7D56F4"
	colorSuccess    = "#04B575"
	colorError      = "#FF0000"
	colorWarning    = "#F5A623"
	colorInfo       = "#626262"
	colorHighlight  = "#FAFAFA"
	colorBorder     = "#874BFD"
	colorLink       = "#5FAFFF"
	colorDisabledBg = "#3C3C3C"
)

// Styles for the TUI application
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginTop(1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorError)).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(1, 2)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(colorLink))

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(colorPrimary)).
			Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorInfo)).
				Background(lipgloss.Color(colorDisabledBg)).
				Padding(0, 2)
)

// verdictStyles colors the verdict label by category
var verdictStyles = map[types.VerdictCategory]lipgloss.Style{
	types.VerdictReal:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSuccess)),
	types.VerdictFake:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorError)),
	types.VerdictUnverified: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWarning)),
}

// VerdictStyle returns the style for a verdict category
func VerdictStyle(category types.VerdictCategory) lipgloss.Style {
	if style, ok := verdictStyles[category]; ok {
		return style
	}
	return verdictStyles[types.VerdictUnverified]
}
