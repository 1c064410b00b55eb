// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AVoropaev/go-money-keeper/internal/adapter"
	"github.com/AVoropaev/go-money-keeper/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenAddForm
)

const (
	authFieldUsername = iota
	authFieldPassword
)

const (
	formFieldAmount = iota
	formFieldNote
	formFieldDate
)

// appModel is the single bubbletea model behind the whole client. Screens
// share it and are switched through the screen field.
type appModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	screen     screen
	quitByUser bool
	loading    bool

	status  string
	errText string

	welcomeCursor int

	authInputs  []textinput.Model
	authFocused int

	username     string
	transactions []models.Transaction

	formInputs  []textinput.Model
	formFocused int
	typeIndex   int
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:        ctx,
		server:     server,
		screen:     screenWelcome,
		authInputs: newAuthInputs(),
		formInputs: newFormInputs(),
	}
}

func newAuthInputs() []textinput.Model {
	username := textinput.New()
	username.Placeholder = "логин"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "пароль"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return []textinput.Model{username, password}
}

func newFormInputs() []textinput.Model {
	amount := textinput.New()
	amount.Placeholder = "сумма"
	amount.CharLimit = 24
	amount.Focus()

	note := textinput.New()
	note.Placeholder = "заметка"
	note.CharLimit = 128

	date := textinput.New()
	date.Placeholder = "дата"
	date.CharLimit = 32
	date.SetValue(time.Now().Format("2006-01-02"))

	return []textinput.Model{amount, note, date}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitByUser = true
			return m, tea.Quit
		}

	case errMsg:
		m.loading = false
		m.errText = humanizeError(msg.err)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case registerDoneMsg:
		m.loading = false
		m.errText = ""
		m.status = "Пользователь " + msg.username + " зарегистрирован, теперь войдите"
		m.resetAuthInputs()
		m.screen = screenLogin
		return m, cmdClearStatus()

	case loginDoneMsg:
		m.loading = false
		m.errText = ""
		m.status = ""
		m.username = msg.username
		m.resetAuthInputs()
		m.screen = screenList
		return m, cmdLoadTransactions(m.ctx, m.server)

	case listLoadedMsg:
		m.loading = false
		m.errText = ""
		m.transactions = msg.transactions
		return m, nil

	case transactionSavedMsg:
		m.loading = false
		m.errText = ""
		m.status = "Запись добавлена"
		m.resetFormInputs()
		m.screen = screenList
		return m, tea.Batch(cmdLoadTransactions(m.ctx, m.server), cmdClearStatus())

	case copiedMsg:
		m.status = "Токен скопирован в буфер обмена"
		return m, cmdClearStatus()
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin, screenRegister:
		return m.updateAuthForm(msg)
	case screenList:
		return m.updateList(msg)
	case screenAddForm:
		return m.updateAddForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	switch m.screen {
	case screenWelcome:
		return m.viewWelcome()
	case screenLogin:
		return m.viewAuthForm("Вход")
	case screenRegister:
		return m.viewAuthForm("Регистрация")
	case screenList:
		return m.viewList()
	case screenAddForm:
		return m.viewAddForm()
	}

	return ""
}

func (m *appModel) resetAuthInputs() {
	m.authInputs = newAuthInputs()
	m.authFocused = authFieldUsername
}

func (m *appModel) resetFormInputs() {
	m.formInputs = newFormInputs()
	m.formFocused = formFieldAmount
	m.typeIndex = 0
}

// statusLine renders the shared error/status footer placed under every screen.
func (m appModel) statusLine() string {
	switch {
	case m.loading:
		return helpStyle.Render("Загрузка...")
	case m.errText != "":
		return errorStyle.Render(m.errText)
	case m.status != "":
		return statusStyle.Render(m.status)
	}

	return ""
}
