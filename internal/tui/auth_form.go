package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AVoropaev/go-money-keeper/models"
)

// updateAuthForm serves both the login and the register screens: the fields
// are identical, only the submit command differs.
func (m appModel) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Back):
			m.errText = ""
			m.resetAuthInputs()
			m.screen = screenWelcome
			return m, nil

		case key.Matches(keyMsg, keys.Up):
			m.focusAuthField(m.authFocused - 1)
			return m, nil

		case key.Matches(keyMsg, keys.Down):
			m.focusAuthField(m.authFocused + 1)
			return m, nil

		case key.Matches(keyMsg, keys.Enter):
			if m.authFocused < authFieldPassword {
				m.focusAuthField(m.authFocused + 1)
				return m, nil
			}
			return m.submitAuthForm()
		}
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocused], cmd = m.authInputs[m.authFocused].Update(msg)
	return m, cmd
}

func (m *appModel) focusAuthField(index int) {
	if index < authFieldUsername || index > authFieldPassword {
		return
	}

	m.authInputs[m.authFocused].Blur()
	m.authFocused = index
	m.authInputs[m.authFocused].Focus()
}

func (m appModel) submitAuthForm() (tea.Model, tea.Cmd) {
	credentials := models.Credentials{
		Username: strings.TrimSpace(m.authInputs[authFieldUsername].Value()),
		Password: m.authInputs[authFieldPassword].Value(),
	}

	if credentials.Username == "" || credentials.Password == "" {
		m.errText = "Заполните логин и пароль"
		return m, nil
	}

	m.loading = true
	m.errText = ""

	if m.screen == screenRegister {
		return m, cmdRegister(m.ctx, m.server, credentials)
	}
	return m, cmdLogin(m.ctx, m.server, credentials)
}

func (m appModel) viewAuthForm(title string) string {
	var b strings.Builder

	for _, input := range m.authInputs {
		b.WriteString(input.View() + "\n")
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n" + line)
	}

	return renderPage(title, b.String(), "enter: отправить • esc: назад")
}
