package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AVoropaev/go-money-keeper/internal/adapter"
	"github.com/AVoropaev/go-money-keeper/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// Run drives the whole client session: the auth flow first, then the ledger
// screens. It returns ErrUserQuit when the user leaves voluntarily.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.server)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
