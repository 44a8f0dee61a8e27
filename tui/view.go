package tui

import (
	"credcheck/types"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// summaryIndent is the left margin applied to each source line inside the result box
	summaryIndent = 3

	// boxFrame is the horizontal space taken by box borders (2) and padding (4)
	boxFrame = 6

	// minLayoutWidth is the narrowest terminal the layout is fitted to
	minLayoutWidth = 20
)

// View implements tea.Model interface
func (m Model) View() string {
	return Render(m.state, m.input.View(), m.width)
}

// Render draws the screen for a request state and an already rendered input
// field. Text is wrapped to width; a width below minLayoutWidth disables fitting.
func Render(state RequestState, input string, width int) string {
	if width < minLayoutWidth {
		width = 0
	}

	var b strings.Builder

	b.WriteString(fit(TitleStyle, width).Render(TextTitle))
	b.WriteString("\n")
	b.WriteString(fit(InfoStyle, width).Render(TextSubtitle))
	b.WriteString("\n\n")

	b.WriteString(input)
	b.WriteString("\n\n")

	// Submit control is disabled while a request is in flight
	if state.IsLoading() {
		b.WriteString(DisabledButtonStyle.Render(TextSubmitLoading))
	} else {
		b.WriteString(ButtonStyle.Render(TextSubmitIdle))
	}
	b.WriteString("\n\n")

	switch state.Status {
	case StatusFailed:
		b.WriteString(fit(ErrorBoxStyle, width-2).Render(ErrorStyle.Render("❌ " + state.Message)))
		b.WriteString("\n\n")
	case StatusSuccess:
		if state.Result != nil {
			b.WriteString(fit(BoxStyle, width-2).Render(formatResult(*state.Result, width)))
			b.WriteString("\n\n")
		}
	}

	if state.IsLoading() {
		b.WriteString(fit(InfoStyle, width).Render(TextFooterLoading))
	} else {
		b.WriteString(fit(InfoStyle, width).Render(TextFooterIdle))
	}

	return b.String()
}

// formatResult formats a display result for the result box
func formatResult(result types.DisplayResult, width int) string {
	var b strings.Builder

	b.WriteString(HeadingStyle.Render(TextResultHeading))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Verdict: %s\n", VerdictStyle(result.VerdictCategory).Render(result.VerdictLabel)))
	b.WriteString(fmt.Sprintf("Confidence Score: %d%%\n\n", result.ConfidencePercent))

	b.WriteString(HeadingStyle.Render(TextExplanationHeading))
	b.WriteString("\n")
	b.WriteString(result.Explanation)
	b.WriteString("\n\n")

	b.WriteString(HeadingStyle.Render(TextSourcesHeading))
	b.WriteString("\n")
	if len(result.Sources) == 0 {
		b.WriteString(InfoStyle.Render(TextNoSources))
		return b.String()
	}

	maxWidth := 0
	if width > 0 {
		maxWidth = width - boxFrame - summaryIndent
	}

	indent := strings.Repeat(" ", summaryIndent)
	for i, src := range result.Sources {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, src.Label))
		if src.Link != "" {
			b.WriteString(indent + LinkStyle.Render(truncate(src.Link, maxWidth)) + "\n")
		}
		if src.Summary != "" {
			b.WriteString(indent + truncate(src.Summary, maxWidth) + "\n")
		}
		if src.Claimant != "" {
			b.WriteString(indent + truncate("Claimed by: "+src.Claimant, maxWidth) + "\n")
		}
		b.WriteString(indent + InfoStyle.Render(truncate("Source: "+src.Attribution, maxWidth)))
		if i < len(result.Sources)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// fit wraps a style's content to width cells; width <= 0 leaves it unbounded
func fit(style lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return style
	}
	return style.Width(width)
}

// truncate shortens s to at most width terminal cells; width <= 0 leaves it untouched
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
