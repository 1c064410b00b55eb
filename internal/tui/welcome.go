package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var welcomeItems = []string{"Войти", "Зарегистрироваться"}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.welcomeCursor > 0 {
			m.welcomeCursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if m.welcomeCursor < len(welcomeItems)-1 {
			m.welcomeCursor++
		}

	case key.Matches(keyMsg, keys.Enter):
		m.errText = ""
		m.resetAuthInputs()
		if m.welcomeCursor == 0 {
			m.screen = screenLogin
		} else {
			m.screen = screenRegister
		}
		return m, textinput.Blink
	}

	return m, nil
}

func (m appModel) viewWelcome() string {
	var b strings.Builder

	for i, item := range welcomeItems {
		cursor := "  "
		if i == m.welcomeCursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + item + "\n")
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n" + line)
	}

	return renderPage("Money Keeper", b.String(), "↑/↓: выбор • enter: подтвердить")
}
