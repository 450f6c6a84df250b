package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/transaction"
)

// fakeAPI is an in-memory server speaking the API envelope. It tracks rows so
// store mutations can be verified against a live summary.
type fakeAPI struct {
	mu           sync.Mutex
	nextID       int64
	transactions []*transaction.Transaction
	failList     bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transactions", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failList {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Internal Server Error"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "count": len(f.transactions), "transactions": f.transactions,
		})
	})
	mux.HandleFunc("GET /api/transactions/summary", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var income, expense float64
		for _, t := range f.transactions {
			if t.Type == transaction.TypeIncome {
				income += t.Amount
			} else {
				expense += t.Amount
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"summary": transaction.Summary{TotalIncome: income, TotalExpense: expense, Balance: income - expense},
		})
	})
	mux.HandleFunc("POST /api/transactions", func(w http.ResponseWriter, r *http.Request) {
		var in TransactionInput
		json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		f.nextID++
		t := &transaction.Transaction{
			ID: f.nextID, UserID: 1, Type: in.Type, Amount: in.Amount,
			Description: in.Description, Category: in.Category, Date: in.Date, AccountID: in.AccountID,
		}
		f.transactions = append(f.transactions, t)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "transaction": t})
	})
	mux.HandleFunc("DELETE /api/transactions/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, t := range f.transactions {
			if r.PathValue("id") == jsonID(t.ID) {
				f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
				json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Transaction deleted successfully"})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Transaction not found"})
	})
	return mux
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func newTestStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL)
	c.SetToken("test-token")
	return NewStore(c)
}

func TestStoreLoad(t *testing.T) {
	api := &fakeAPI{}
	api.transactions = []*transaction.Transaction{
		{ID: 1, Type: "income", Amount: 100, Date: time.Now()},
		{ID: 2, Type: "expense", Amount: 40, Date: time.Now()},
	}
	api.nextID = 2

	store := newTestStore(t, api)
	require.NoError(t, store.Load(context.Background()))

	assert.Len(t, store.Transactions(), 2)
	assert.Equal(t, 100.0, store.Summary().TotalIncome)
	assert.Equal(t, 40.0, store.Summary().TotalExpense)
	assert.Equal(t, 60.0, store.Summary().Balance)
	assert.False(t, store.Loading())
}

func TestStoreLoadFailureResetsCache(t *testing.T) {
	api := &fakeAPI{}
	api.transactions = []*transaction.Transaction{{ID: 1, Type: "income", Amount: 100}}
	store := newTestStore(t, api)
	require.NoError(t, store.Load(context.Background()))
	require.Len(t, store.Transactions(), 1)

	api.mu.Lock()
	api.failList = true
	api.mu.Unlock()

	err := store.Load(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	assert.Empty(t, store.Transactions(), "failed reload must not keep stale rows")
	assert.Equal(t, transaction.Summary{}, store.Summary())
	assert.False(t, store.Loading())
}

func TestStoreAddTransactionRecomputesLocally(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)
	require.NoError(t, store.Load(context.Background()))

	_, err := store.AddTransaction(context.Background(), TransactionInput{
		Type: "income", Amount: 0.1, Description: "a", Category: "c", Date: time.Now(),
	})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = store.AddTransaction(context.Background(), TransactionInput{
			Type: "expense", Amount: 0.1, Description: "b", Category: "c", Date: time.Now(),
		})
		require.NoError(t, err)
	}

	// 0.1 - 0.1 - 0.1 must come out exactly, not as a float artifact.
	assert.Equal(t, -0.1, store.Summary().Balance)
	assert.Equal(t, 0.1, store.Summary().TotalIncome)
	assert.Equal(t, 0.2, store.Summary().TotalExpense)

	// Newest first.
	txs := store.Transactions()
	require.Len(t, txs, 3)
	assert.Equal(t, "expense", txs[0].Type)
}

func TestStoreDeleteTransaction(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)
	require.NoError(t, store.Load(context.Background()))

	created, err := store.AddTransaction(context.Background(), TransactionInput{
		Type: "income", Amount: 50, Description: "a", Category: "c", Date: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteTransaction(context.Background(), created.ID))
	assert.Empty(t, store.Transactions())
	assert.Equal(t, transaction.Summary{}, store.Summary())

	// Deleting again surfaces the server's 404.
	err = store.DeleteTransaction(context.Background(), created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestStoreRefetchReconciles(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)
	require.NoError(t, store.Load(context.Background()))

	// A row appears server-side without going through this store.
	api.mu.Lock()
	api.nextID++
	api.transactions = append(api.transactions, &transaction.Transaction{
		ID: api.nextID, Type: "income", Amount: 75, Date: time.Now(),
	})
	api.mu.Unlock()

	require.NoError(t, store.Refetch(context.Background()))
	assert.Len(t, store.Transactions(), 1)
	assert.Equal(t, 75.0, store.Summary().TotalIncome)
}

func TestStoreAccountBalances(t *testing.T) {
	accID := int64(1)
	otherID := int64(2)
	api := &fakeAPI{}
	api.transactions = []*transaction.Transaction{
		{ID: 1, Type: "income", Amount: 100, AccountID: &accID},
		{ID: 2, Type: "expense", Amount: 30.5, AccountID: &accID},
		{ID: 3, Type: "expense", Amount: 10, AccountID: nil},
	}
	api.nextID = 3

	store := newTestStore(t, api)
	require.NoError(t, store.Load(context.Background()))

	balances := store.AccountBalances([]*account.Account{
		{ID: accID, InitialBalance: 20},
		{ID: otherID, InitialBalance: 5},
	})

	assert.Equal(t, 89.5, balances[accID], "initial + income - expense")
	assert.Equal(t, 5.0, balances[otherID], "untouched account keeps its initial balance")
}
