// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AVoropaev/go-money-keeper/internal/service"
	"github.com/AVoropaev/go-money-keeper/internal/utils"
	"github.com/AVoropaev/go-money-keeper/models"
)

// nextSpy records whether the wrapped handler was reached and what user ID
// it saw in the request context.
type nextSpy struct {
	called bool
	userID int64
	hadID  bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.hadID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rr := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rr, req)

	// absent header is the one distinct failure mode
	require.Equal(t, http.StatusForbidden, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "No token provided", body["error"])
	assert.False(t, spy.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	tests := []struct {
		name   string
		header string
	}{
		{"no space", "tokenwithoutscheme"},
		{"empty token", "Bearer "},
		{"too many parts", "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &nextSpy{}
			req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
			req.Header.Set("Authorization", tt.header)
			rr := httptest.NewRecorder()

			h.auth(spy.handler()).ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, "Unauthorized", body["error"])
			assert.False(t, spy.called)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.Header.Set("Authorization", "Bearer bad.token.here")
	rr := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rr, req)

	// expired, tampered and foreign tokens all collapse to the same reply
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.False(t, spy.called)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "good.token.here", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.Header.Set("Authorization", "Bearer good.token.here")
	rr := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, spy.called)
	require.True(t, spy.hadID)
	assert.Equal(t, int64(42), spy.userID)
}
