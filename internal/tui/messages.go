package tui

import (
	"github.com/AVoropaev/go-money-keeper/models"
)

// Сообщения между командами и моделью приложения.

type registerDoneMsg struct {
	username string
}

type loginDoneMsg struct {
	username string
}

type listLoadedMsg struct {
	transactions []models.Transaction
}

type transactionSavedMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}

type errMsg struct {
	err error
}
