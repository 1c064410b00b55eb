package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/AVoropaev/go-money-keeper/internal/config"
	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /register. The server does not issue a token on registration, so the
// adapter's token is left untouched.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login
// and stores the token from the response body via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var tokenResp models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return fmt.Errorf("login decode response: %w", err)
	}
	if tokenResp.Token == "" {
		return fmt.Errorf("login response carries no token")
	}

	h.SetToken(tokenResp.Token)
	return nil
}

// authedRequest builds a request carrying the stored bearer token. When no
// token has been set the Authorization header is omitted entirely, so the
// server's missing-token reply comes through unchanged.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// AddTransaction implements [ServerAdapter]. It POSTs the transaction to
// POST /transaction with the stored bearer token.
func (h *httpServerAdapter) AddTransaction(ctx context.Context, transaction models.Transaction) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(transaction).
		Post("/transaction")
	if err != nil {
		return fmt.Errorf("add transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTransactions implements [ServerAdapter]. It GETs /transactions with
// the stored bearer token and decodes the returned array.
func (h *httpServerAdapter) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	resp, err := h.authedRequest(ctx).
		Get("/transactions")
	if err != nil {
		return nil, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err = json.Unmarshal(resp.Body(), &transactions); err != nil {
		return nil, fmt.Errorf("list transactions decode response: %w", err)
	}

	return transactions, nil
}
