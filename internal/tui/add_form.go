package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AVoropaev/go-money-keeper/models"
)

var transactionTypes = []string{models.TransactionTypeIncome, models.TransactionTypeExpense}

func (m appModel) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Back):
			m.errText = ""
			m.resetFormInputs()
			m.screen = screenList
			return m, nil

		case key.Matches(keyMsg, keys.Left):
			if m.typeIndex > 0 {
				m.typeIndex--
			}
			return m, nil

		case key.Matches(keyMsg, keys.Right):
			if m.typeIndex < len(transactionTypes)-1 {
				m.typeIndex++
			}
			return m, nil

		case key.Matches(keyMsg, keys.Up):
			m.focusFormField(m.formFocused - 1)
			return m, nil

		case key.Matches(keyMsg, keys.Down):
			m.focusFormField(m.formFocused + 1)
			return m, nil

		case key.Matches(keyMsg, keys.Enter):
			if m.formFocused < formFieldDate {
				m.focusFormField(m.formFocused + 1)
				return m, nil
			}
			return m.submitAddForm()
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocused], cmd = m.formInputs[m.formFocused].Update(msg)
	return m, cmd
}

func (m *appModel) focusFormField(index int) {
	if index < formFieldAmount || index > formFieldDate {
		return
	}

	m.formInputs[m.formFocused].Blur()
	m.formFocused = index
	m.formInputs[m.formFocused].Focus()
}

func (m appModel) submitAddForm() (tea.Model, tea.Cmd) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(m.formInputs[formFieldAmount].Value()), 64)
	if err != nil || amount <= 0 {
		m.errText = "Сумма должна быть положительным числом"
		return m, nil
	}

	date := strings.TrimSpace(m.formInputs[formFieldDate].Value())
	if date == "" {
		m.errText = "Укажите дату"
		return m, nil
	}

	transaction := models.Transaction{
		Type:   transactionTypes[m.typeIndex],
		Amount: amount,
		Note:   strings.TrimSpace(m.formInputs[formFieldNote].Value()),
		Date:   date,
	}

	m.loading = true
	m.errText = ""
	return m, cmdSaveTransaction(m.ctx, m.server, transaction)
}

func (m appModel) viewAddForm() string {
	var b strings.Builder

	b.WriteString(renderTypeSwitch(m.typeIndex) + "\n\n")
	for _, input := range m.formInputs {
		b.WriteString(input.View() + "\n")
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n" + line)
	}

	return renderPage("Новая запись", b.String(), "←/→: тип • enter: сохранить • esc: назад")
}

func renderTypeSwitch(selected int) string {
	parts := make([]string, 0, len(transactionTypes))
	for i, transactionType := range transactionTypes {
		label := "доход"
		if transactionType == models.TransactionTypeExpense {
			label = "расход"
		}

		if i == selected {
			parts = append(parts, cursorStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, helpStyle.Render(" "+label+" "))
		}
	}

	return strings.Join(parts, " ")
}
