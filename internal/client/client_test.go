package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain/account"
)

func TestClientAuthFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/signup":
			assert.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"success": true, "message": "Account created successfully",
				"token": "tok-1", "user": map[string]any{"id": 1, "name": "Ada", "email": "ada@example.com"},
			})
		case "/api/auth/me":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"user":    map[string]any{"id": 1, "name": "Ada", "email": "ada@example.com", "createdAt": "2025-03-01T12:00:00Z"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	session, err := c.Signup(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, int64(1), session.User.ID)

	// Signup installs the token; /me must carry it.
	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)
	require.NotNil(t, me.CreatedAt)
}

func TestClientErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "User with this email already exists"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Signup(context.Background(), "Ada", "ada@example.com", "secret1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "User with this email already exists", apiErr.Message)
}

func TestClientErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListTransactions(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClientAccountPatchShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/accounts/3", r.URL.Path)

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, map[string]any{"name": "Renamed"}, patch, "only supplied fields travel")

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"account": account.Account{ID: 3, Name: "Renamed", Type: "bank"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok")

	acc, err := c.UpdateAccount(context.Background(), 3, map[string]any{"name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", acc.Name)
}

func TestClientTransactionDetachPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))

		raw, present := patch["accountId"]
		require.True(t, present, "detach must send accountId explicitly")
		assert.Equal(t, "null", string(raw))

		json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"message":     "Transaction updated successfully",
			"transaction": map[string]any{"id": 7, "type": "income", "amount": 1, "accountId": nil},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok")

	tx, err := c.UpdateTransaction(context.Background(), 7, map[string]any{"accountId": nil})
	require.NoError(t, err)
	assert.Nil(t, tx.AccountID)
}
