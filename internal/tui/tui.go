package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the interactive interface and blocks until the user quits
func Run(store Store, emotions []string, opts Options) error {
	p := tea.NewProgram(NewAppModel(store, emotions, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
