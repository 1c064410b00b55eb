package tui

import (
	"errors"
	"net"
	"strings"

	"github.com/AVoropaev/go-money-keeper/internal/adapter"
)

// humanizeError rewrites transport and server errors into short messages
// suitable for the status line. Unknown errors pass through unchanged.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	if errors.As(err, &netErr) || strings.Contains(err.Error(), "connection refused") {
		return "Отсутствует сеть или сервер недоступен"
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Сессия истекла, войдите заново"
	case errors.Is(err, adapter.ErrForbidden):
		return "Нет доступа, войдите заново"
	case errors.Is(err, adapter.ErrInternalServerError):
		return "Ошибка на сервере, попробуйте позже"
	}

	return err.Error()
}
