// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/internal/service"
	"github.com/AVoropaev/go-money-keeper/internal/utils"
	"github.com/AVoropaev/go-money-keeper/models"
)

// ─────────────────────────────────────────────
// Mock LedgerService
// ─────────────────────────────────────────────

type mockLedgerService struct {
	addFn  func(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error)
	listFn func(ctx context.Context, userID int64) ([]models.Transaction, error)
}

func (m *mockLedgerService) AddTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	return m.addFn(ctx, userID, transaction)
}

func (m *mockLedgerService) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return m.listFn(ctx, userID)
}

func newHandlerWithLedger(t *testing.T, ledger service.LedgerService) *Handler {
	t.Helper()
	svcs := &service.Services{
		LedgerService: ledger,
	}
	return NewHandler(svcs, logger.Nop())
}

// authedRequest builds a request whose context carries userID, as the auth
// middleware would have left it.
func authedRequest(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// createTransaction
// ─────────────────────────────────────────────

func TestCreateTransaction_Success(t *testing.T) {
	ledger := &mockLedgerService{
		addFn: func(_ context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "expense", transaction.Type)
			assert.Equal(t, 12.5, transaction.Amount)
			transaction.ID = 1
			transaction.UserID = userID
			return transaction, nil
		},
	}
	h := newHandlerWithLedger(t, ledger)

	req := authedRequest(http.MethodPost, "/transaction",
		`{"type":"expense","amount":12.5,"note":"groceries","date":"2026-01-15"}`, 42)
	rr := httptest.NewRecorder()

	h.createTransaction(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Transaction added", body["message"])
}

func TestCreateTransaction_OwnerFromContextNotBody(t *testing.T) {
	ledger := &mockLedgerService{
		addFn: func(_ context.Context, userID int64, _ models.Transaction) (models.Transaction, error) {
			assert.Equal(t, int64(42), userID, "owner must come from the authenticated context")
			return models.Transaction{}, nil
		},
	}
	h := newHandlerWithLedger(t, ledger)

	// user_id in the payload must have no effect
	req := authedRequest(http.MethodPost, "/transaction",
		`{"user_id":999,"type":"income","amount":1}`, 42)
	rr := httptest.NewRecorder()

	h.createTransaction(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateTransaction_NoIdentityInContext(t *testing.T) {
	h := newHandlerWithLedger(t, &mockLedgerService{})

	req := httptest.NewRequest(http.MethodPost, "/transaction", strings.NewReader(`{"type":"income","amount":1}`))
	rr := httptest.NewRecorder()

	h.createTransaction(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateTransaction_InvalidJSON(t *testing.T) {
	h := newHandlerWithLedger(t, &mockLedgerService{})

	req := authedRequest(http.MethodPost, "/transaction", "{oops", 42)
	rr := httptest.NewRecorder()

	h.createTransaction(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateTransaction_StorageFailure(t *testing.T) {
	ledger := &mockLedgerService{
		addFn: func(_ context.Context, _ int64, _ models.Transaction) (models.Transaction, error) {
			return models.Transaction{}, errors.New("disk full")
		},
	}
	h := newHandlerWithLedger(t, ledger)

	req := authedRequest(http.MethodPost, "/transaction", `{"type":"income","amount":1}`, 42)
	rr := httptest.NewRecorder()

	h.createTransaction(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Failed to add transaction", body["error"])
}

// ─────────────────────────────────────────────
// listTransactions
// ─────────────────────────────────────────────

func TestListTransactions_Success(t *testing.T) {
	expected := []models.Transaction{
		{ID: 1, UserID: 42, Type: "income", Amount: 100, Note: "salary", Date: "2026-01-01"},
		{ID: 2, UserID: 42, Type: "expense", Amount: 25.5, Note: "books", Date: "2026-01-02"},
	}
	ledger := &mockLedgerService{
		listFn: func(_ context.Context, userID int64) ([]models.Transaction, error) {
			assert.Equal(t, int64(42), userID)
			return expected, nil
		},
	}
	h := newHandlerWithLedger(t, ledger)

	req := authedRequest(http.MethodGet, "/transactions", "", 42)
	rr := httptest.NewRecorder()

	h.listTransactions(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var list []models.Transaction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "salary", list[0].Note)
	assert.Equal(t, 25.5, list[1].Amount)
}

func TestListTransactions_EmptyLedger(t *testing.T) {
	ledger := &mockLedgerService{
		listFn: func(_ context.Context, _ int64) ([]models.Transaction, error) {
			return []models.Transaction{}, nil
		},
	}
	h := newHandlerWithLedger(t, ledger)

	req := authedRequest(http.MethodGet, "/transactions", "", 42)
	rr := httptest.NewRecorder()

	h.listTransactions(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	// an empty ledger serialises to an empty array, never null
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestListTransactions_StorageFailure(t *testing.T) {
	ledger := &mockLedgerService{
		listFn: func(_ context.Context, _ int64) ([]models.Transaction, error) {
			return nil, errors.New("db is down")
		},
	}
	h := newHandlerWithLedger(t, ledger)

	req := authedRequest(http.MethodGet, "/transactions", "", 42)
	rr := httptest.NewRecorder()

	h.listTransactions(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Failed to fetch", body["error"])
}
