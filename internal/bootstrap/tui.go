package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"

	"pathora/internal/ui/app"
)

// RunTUI starts the terminal UI on top of an assembled App and blocks until
// the user quits.
func RunTUI(a *App) error {
	model := app.New(app.Ports{
		Account:    a.Account,
		Curriculum: a.Curriculum,
		Progress:   a.Progress,
		Assistant:  a.Assistant,
		Workspace:  a.Workspace,
		Resources:  a.Resources,
	}, a.Log.Named("ui"))

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
