package tui

import (
	"context"
	"credcheck/analysis"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case AnalysisResponseMsg:
		return m.handleAnalysisResponse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case "enter", "ctrl+s":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a new analysis unless one is already in flight
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state.IsLoading() {
		return m, nil
	}

	req := analysis.Classify(m.input.Value())
	ctx, cancel := context.WithCancel(context.Background())

	m.state = Loading()
	m.requestID = m.newID()
	m.cancel = cancel

	log.Printf("🔍 [%s] analyzing %s input", m.requestID, req.Kind)
	return m, analyze(ctx, m.analyzer, m.requestID, req)
}

// handleAnalysisResponse settles the in-flight request
func (m Model) handleAnalysisResponse(msg AnalysisResponseMsg) (tea.Model, tea.Cmd) {
	if !m.state.IsLoading() || msg.RequestID != m.requestID {
		log.Printf("⚠️  dropping stale response for request %s", msg.RequestID)
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.requestID = ""

	if msg.Err != nil {
		log.Printf("❌ [%s] analysis failed: %v", msg.RequestID, msg.Err)
		m.state = Failed(msg.Err.Error())
		return m, nil
	}

	result, err := analysis.Normalize(msg.Response)
	if err != nil {
		log.Printf("❌ [%s] %v", msg.RequestID, err)
		m.state = Failed(err.Error())
		return m, nil
	}

	log.Printf("✅ [%s] %s (%d%%), %d source(s)", msg.RequestID, result.VerdictLabel, result.ConfidencePercent, len(result.Sources))
	m.state = Succeeded(*result)
	return m, nil
}

// handleResize fits the input field to the terminal
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	if w := msg.Width - 4; w > 0 {
		m.input.SetWidth(w)
	}
	return m, nil
}
