package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AVoropaev/go-money-keeper/internal/adapter"
	"github.com/AVoropaev/go-money-keeper/models"
)

const statusVisibleFor = 2 * time.Second

func cmdRegister(ctx context.Context, server adapter.ServerAdapter, credentials models.Credentials) tea.Cmd {
	return func() tea.Msg {
		if err := server.Register(ctx, credentials); err != nil {
			return errMsg{err: err}
		}

		return registerDoneMsg{username: credentials.Username}
	}
}

func cmdLogin(ctx context.Context, server adapter.ServerAdapter, credentials models.Credentials) tea.Cmd {
	return func() tea.Msg {
		if err := server.Login(ctx, credentials); err != nil {
			return errMsg{err: err}
		}

		return loginDoneMsg{username: credentials.Username}
	}
}

func cmdLoadTransactions(ctx context.Context, server adapter.ServerAdapter) tea.Cmd {
	return func() tea.Msg {
		transactions, err := server.ListTransactions(ctx)
		if err != nil {
			return errMsg{err: err}
		}

		return listLoadedMsg{transactions: transactions}
	}
}

func cmdSaveTransaction(ctx context.Context, server adapter.ServerAdapter, transaction models.Transaction) tea.Cmd {
	return func() tea.Msg {
		if err := server.AddTransaction(ctx, transaction); err != nil {
			return errMsg{err: err}
		}

		return transactionSavedMsg{}
	}
}

func cmdCopyToClipboard(value string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return errMsg{err: err}
		}

		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusVisibleFor, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
