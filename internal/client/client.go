// Package client provides a Go consumer for the fintrack API: a thin HTTP
// client plus a cached store mirroring the behavior of the web client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/domain/user"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response decoded from the server envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client handles communication with the fintrack API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates an API client against the given base URL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
	}
}

// SetToken installs the bearer token used on protected endpoints.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Session is the authenticated result of signup or login.
type Session struct {
	Token string    `json:"token"`
	User  user.View `json:"user"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user and installs the returned token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	var resp struct {
		Session
		envelope
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", signupRequest{name, email, password}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.Session, nil
}

// Login authenticates and installs the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp struct {
		Session
		envelope
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{email, password}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.Session, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*user.View, error) {
	var resp struct {
		envelope
		User user.View `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// AccountInput is the payload for creating an account.
type AccountInput struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	AccountNumber  *string `json:"accountNumber,omitempty"`
	Icon           string  `json:"icon,omitempty"`
	InitialBalance float64 `json:"initialBalance,omitempty"`
}

// ListAccounts returns the user's accounts, newest first.
func (c *Client) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	var resp struct {
		envelope
		Accounts []*account.Account `json:"accounts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/accounts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

// CreateAccount creates a new account.
func (c *Client) CreateAccount(ctx context.Context, input AccountInput) (*account.Account, error) {
	var resp struct {
		envelope
		Account *account.Account `json:"account"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/accounts", input, &resp); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

// UpdateAccount applies a partial update; nil fields are left untouched.
func (c *Client) UpdateAccount(ctx context.Context, id int64, patch map[string]any) (*account.Account, error) {
	var resp struct {
		envelope
		Account *account.Account `json:"account"`
	}
	path := fmt.Sprintf("/api/accounts/%d", id)
	if err := c.do(ctx, http.MethodPut, path, patch, &resp); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

// DeleteAccount removes an account; its transactions are detached server-side.
func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	var resp envelope
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", id), nil, &resp)
}

// TransactionInput is the payload for creating a transaction.
type TransactionInput struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	AccountID   *int64    `json:"accountId,omitempty"`
}

// ListTransactions returns the user's transactions, most recent date first.
func (c *Client) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	var resp struct {
		envelope
		Transactions []*transaction.Transaction `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// GetTransaction fetches a single transaction.
func (c *Client) GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error) {
	var resp struct {
		envelope
		Transaction *transaction.Transaction `json:"transaction"`
	}
	path := fmt.Sprintf("/api/transactions/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transaction, nil
}

// CreateTransaction creates a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, input TransactionInput) (*transaction.Transaction, error) {
	var resp struct {
		envelope
		Transaction *transaction.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/transactions", input, &resp); err != nil {
		return nil, err
	}
	return resp.Transaction, nil
}

// UpdateTransaction applies a partial update. A patch entry "accountId": nil
// detaches the transaction; an absent key keeps the current account.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, patch map[string]any) (*transaction.Transaction, error) {
	var resp struct {
		envelope
		Transaction *transaction.Transaction `json:"transaction"`
	}
	path := fmt.Sprintf("/api/transactions/%d", id)
	if err := c.do(ctx, http.MethodPut, path, patch, &resp); err != nil {
		return nil, err
	}
	return resp.Transaction, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	var resp envelope
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/transactions/%d", id), nil, &resp)
}

// Summary fetches the server-side income/expense/balance aggregate.
func (c *Client) Summary(ctx context.Context) (*transaction.Summary, error) {
	var resp struct {
		envelope
		Summary *transaction.Summary `json:"summary"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transactions/summary", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Summary, nil
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do executes one API call: marshals the body, sets the bearer token, and
// decodes either the expected payload or an error envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Message == "" {
			env.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
