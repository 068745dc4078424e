package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndenisov/sketchkeep/internal/client"
	"github.com/ndenisov/sketchkeep/internal/logger"
)

// TUI runs the terminal dashboard on top of an assembled client app.
type TUI struct {
	app    *client.App
	logger *logger.Logger
}

func New(app *client.App, logger *logger.Logger) *TUI {
	return &TUI{app: app, logger: logger}
}

// Run blocks until the user quits the dashboard.
func (t *TUI) Run(ctx context.Context) error {
	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	model := newDashboardModel(
		ctx,
		t.app.Cache(),
		t.app.Autosave(),
		t.app.AutosaveInterval(),
		t.app.Offline(),
		exportDir,
	)

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
