// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AVoropaev/go-money-keeper/internal/adapter"
	"github.com/AVoropaev/go-money-keeper/internal/mock"
	"github.com/AVoropaev/go-money-keeper/models"
)

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)

	return newAppModel(context.Background(), server), server
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, model appModel, msg tea.Msg) (appModel, tea.Cmd) {
	next, cmd := model.Update(msg)

	result, ok := next.(appModel)
	require.True(t, ok)

	return result, cmd
}

// ───────────────────────────── navigation ─────────────────────────────

func TestWelcome_NavigatesToLoginAndRegister(t *testing.T) {
	model, _ := newTestModel(t)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenLogin, model.screen)

	model.screen = screenWelcome
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenRegister, model.screen)
}

func TestQuit_MarksUserQuitFromAnyScreen(t *testing.T) {
	for _, s := range []screen{screenWelcome, screenLogin, screenList, screenAddForm} {
		model, _ := newTestModel(t)
		model.screen = s

		model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})

		assert.True(t, model.quitByUser)
		require.NotNil(t, cmd)
	}
}

func TestAuthForm_EscReturnsToWelcome(t *testing.T) {
	model, _ := newTestModel(t)
	model.screen = screenLogin
	model.errText = "старая ошибка"

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenWelcome, model.screen)
	assert.Empty(t, model.errText)
}

// ───────────────────────────── auth flow ─────────────────────────────

func TestAuthForm_EmptyCredentialsRejectedLocally(t *testing.T) {
	model, _ := newTestModel(t)
	model.screen = screenLogin
	model.authFocused = authFieldPassword

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.NotEmpty(t, model.errText)
}

func TestLogin_SubmitCallsServerAndOpensList(t *testing.T) {
	model, server := newTestModel(t)
	model.screen = screenLogin
	model.authInputs[authFieldUsername].SetValue("alice")
	model.authInputs[authFieldPassword].SetValue("secret")
	model.authFocused = authFieldPassword

	server.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "alice", Password: "secret"}).
		Return(nil)

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, model.loading)

	msg := cmd()
	require.IsType(t, loginDoneMsg{}, msg)

	server.EXPECT().ListTransactions(gomock.Any()).Return(nil, nil)

	model, cmd = update(t, model, msg)
	assert.Equal(t, screenList, model.screen)
	assert.Equal(t, "alice", model.username)

	require.NotNil(t, cmd)
	require.IsType(t, listLoadedMsg{}, cmd())
}

func TestLogin_ServerErrorShownInStatusLine(t *testing.T) {
	model, server := newTestModel(t)
	model.screen = screenLogin
	model.authInputs[authFieldUsername].SetValue("alice")
	model.authInputs[authFieldPassword].SetValue("wrong")
	model.authFocused = authFieldPassword

	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(adapter.ErrUnauthorized)

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	model, _ = update(t, model, cmd())

	assert.Equal(t, screenLogin, model.screen)
	assert.False(t, model.loading)
	assert.Equal(t, "Сессия истекла, войдите заново", model.errText)
}

func TestRegister_SuccessRedirectsToLogin(t *testing.T) {
	model, server := newTestModel(t)
	model.screen = screenRegister
	model.authInputs[authFieldUsername].SetValue("bob")
	model.authInputs[authFieldPassword].SetValue("secret")
	model.authFocused = authFieldPassword

	server.EXPECT().
		Register(gomock.Any(), models.Credentials{Username: "bob", Password: "secret"}).
		Return(nil)

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	model, _ = update(t, model, cmd())

	assert.Equal(t, screenLogin, model.screen)
	assert.Contains(t, model.status, "bob")
}

// ───────────────────────────── ledger screens ─────────────────────────────

func TestList_RefreshReloadsTransactions(t *testing.T) {
	model, server := newTestModel(t)
	model.screen = screenList

	stored := []models.Transaction{
		{ID: 1, Type: models.TransactionTypeIncome, Amount: 100, Date: "2024-01-01"},
		{ID: 2, Type: models.TransactionTypeExpense, Amount: 40.5, Date: "2024-01-02"},
	}
	server.EXPECT().ListTransactions(gomock.Any()).Return(stored, nil)

	model, cmd := update(t, model, keyRune('r'))
	require.NotNil(t, cmd)

	model, _ = update(t, model, cmd())

	assert.Equal(t, stored, model.transactions)
	assert.False(t, model.loading)
}

func TestList_EscLogsOutAndDropsToken(t *testing.T) {
	model, server := newTestModel(t)
	model.screen = screenList
	model.username = "alice"
	model.transactions = []models.Transaction{{ID: 1}}

	server.EXPECT().SetToken("")

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenWelcome, model.screen)
	assert.Empty(t, model.username)
	assert.Nil(t, model.transactions)
}

func TestAddForm_RejectsBadAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "-5", "0"} {
		model, _ := newTestModel(t)
		model.screen = screenAddForm
		model.formInputs[formFieldAmount].SetValue(amount)
		model.formFocused = formFieldDate

		model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd, "amount %q", amount)
		assert.NotEmpty(t, model.errText, "amount %q", amount)
	}
}

func TestAddForm_SubmitSendsSelectedTypeAndFields(t *testing.T) {
	model, server := newTestModel(t)
	model.screen = screenAddForm
	model.formInputs[formFieldAmount].SetValue("250.50")
	model.formInputs[formFieldNote].SetValue("продукты")
	model.formInputs[formFieldDate].SetValue("2024-03-01")
	model.formFocused = formFieldDate

	// Switch the type toggle from income to expense.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, model.typeIndex)

	server.EXPECT().
		AddTransaction(gomock.Any(), models.Transaction{
			Type:   models.TransactionTypeExpense,
			Amount: 250.50,
			Note:   "продукты",
			Date:   "2024-03-01",
		}).
		Return(nil)

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, transactionSavedMsg{}, cmd())
}

func TestAddForm_EscReturnsToListWithoutSaving(t *testing.T) {
	model, _ := newTestModel(t)
	model.screen = screenAddForm
	model.formInputs[formFieldAmount].SetValue("10")

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenList, model.screen)
	assert.Empty(t, model.formInputs[formFieldAmount].Value())
}

// ───────────────────────────── rendering ─────────────────────────────

func TestViewList_ShowsBalanceAndEntries(t *testing.T) {
	model, _ := newTestModel(t)
	model.screen = screenList
	model.username = "alice"
	model.transactions = []models.Transaction{
		{ID: 1, Type: models.TransactionTypeIncome, Amount: 100, Date: "2024-01-01", Note: "зарплата"},
		{ID: 2, Type: models.TransactionTypeExpense, Amount: 30, Date: "2024-01-02"},
	}

	view := model.View()

	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "зарплата")
	assert.Contains(t, view, "Баланс: 70.00")
	assert.Contains(t, view, "ctrl+c: выход")
}

func TestViewList_EmptyLedgerHint(t *testing.T) {
	model, _ := newTestModel(t)
	model.screen = screenList

	assert.Contains(t, model.View(), "Записей пока нет")
}

// ───────────────────────────── error humanizing ─────────────────────────────

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: "Сессия истекла, войдите заново"},
		{name: "forbidden", err: adapter.ErrForbidden, want: "Нет доступа, войдите заново"},
		{name: "server", err: adapter.ErrInternalServerError, want: "Ошибка на сервере, попробуйте позже"},
		{name: "unknown", err: assert.AnError, want: assert.AnError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
