package tui

import "credcheck/types"

// Messages for the tea program

// AnalysisResponseMsg is sent when an analysis request settles
type AnalysisResponseMsg struct {
	RequestID string
	Response  *types.AnalysisResponse
	Err       error
}
