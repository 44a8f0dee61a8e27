package tui

import (
	"context"
	"credcheck/types"

	tea "github.com/charmbracelet/bubbletea"
)

// analyze creates a command that runs one analysis request off the UI goroutine
func analyze(ctx context.Context, analyzer Analyzer, requestID string, req types.AnalysisRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := analyzer.Analyze(ctx, requestID, req)
		return AnalysisResponseMsg{
			RequestID: requestID,
			Response:  resp,
			Err:       err,
		}
	}
}
