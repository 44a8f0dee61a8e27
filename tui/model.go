package tui

import (
	"context"
	"credcheck/types"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Analyzer submits analysis requests to the remote service
type Analyzer interface {
	Analyze(ctx context.Context, requestID string, req types.AnalysisRequest) (*types.AnalysisResponse, error)
}

// Model is the request controller. It owns the RequestState and is the only
// writer of it; Bubble Tea calls Update on a single goroutine.
type Model struct {
	analyzer Analyzer
	input    textarea.Model
	state    RequestState

	// In-flight request, set only while loading
	requestID string
	cancel    context.CancelFunc

	width int
	newID func() string
}

// NewModel creates a new TUI model in the idle state
func NewModel(analyzer Analyzer) Model {
	input := textarea.New()
	input.Placeholder = TextPlaceholder
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.SetHeight(5)
	input.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	input.Focus()

	return Model{
		analyzer: analyzer,
		input:    input,
		state:    Idle(),
		newID:    uuid.NewString,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// State returns the current request state
func (m Model) State() RequestState {
	return m.state
}

// Input returns the raw text currently in the input field
func (m Model) Input() string {
	return m.input.Value()
}

// SetInput replaces the input field contents
func (m Model) SetInput(value string) Model {
	m.input.Reset()
	m.input.SetValue(value)
	return m
}
