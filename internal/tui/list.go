// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AVoropaev/go-money-keeper/models"
)

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Refresh):
		m.loading = true
		m.errText = ""
		return m, cmdLoadTransactions(m.ctx, m.server)

	case key.Matches(keyMsg, keys.Add):
		m.errText = ""
		m.resetFormInputs()
		m.screen = screenAddForm
		return m, nil

	case key.Matches(keyMsg, keys.Copy):
		return m, cmdCopyToClipboard(m.server.Token())

	case key.Matches(keyMsg, keys.Back):
		// Logout drops the session token so the next user starts clean.
		m.server.SetToken("")
		m.username = ""
		m.transactions = nil
		m.status = ""
		m.errText = ""
		m.screen = screenWelcome
		return m, nil
	}

	return m, nil
}

func (m appModel) viewList() string {
	var b strings.Builder

	if len(m.transactions) == 0 {
		b.WriteString(helpStyle.Render("Записей пока нет"))
	} else {
		var balance float64
		for _, transaction := range m.transactions {
			b.WriteString(renderTransaction(transaction) + "\n")
			balance += signedAmount(transaction)
		}
		b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Баланс: %.2f", balance)))
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n\n" + line)
	}

	title := "Мои записи"
	if m.username != "" {
		title += " — " + m.username
	}

	return renderPage(title, b.String(), "a: добавить • r: обновить • t: токен • esc: выйти")
}

func renderTransaction(transaction models.Transaction) string {
	style := incomeStyle
	sign := "+"
	if transaction.Type != models.TransactionTypeIncome {
		style = expenseStyle
		sign = "-"
	}

	line := fmt.Sprintf("%s  %s%.2f  %s", transaction.Date, sign, transaction.Amount, transaction.Type)
	if transaction.Note != "" {
		line += "  " + helpStyle.Render(transaction.Note)
	}

	return style.Render(line)
}

// signedAmount treats anything other than income as an outflow, mirroring how
// the bundled clients have always rendered the running balance.
func signedAmount(transaction models.Transaction) float64 {
	if transaction.Type == models.TransactionTypeIncome {
		return transaction.Amount
	}

	return -transaction.Amount
}
