package tui

import tea "github.com/charmbracelet/bubbletea"

// NewProgram wraps the model in a BubbleTea program with the alternate
// screen enabled. Callers that watch files feed change messages in through
// the returned program's Send.
func NewProgram(m AppModel) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Run runs the timer until the user quits.
func Run(m AppModel) error {
	_, err := NewProgram(m).Run()
	return err
}
