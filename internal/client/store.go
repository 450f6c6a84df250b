package client

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/transaction"
)

// Store is a mutex-guarded cache of the user's transactions plus the derived
// summary. Mutations update the cache immediately and recompute the summary
// locally; Refetch reconciles against the server, which stays authoritative.
type Store struct {
	mu           sync.Mutex
	client       *Client
	transactions []*transaction.Transaction
	summary      transaction.Summary
	loading      bool
}

func NewStore(c *Client) *Store {
	return &Store{client: c}
}

// Load fetches transactions and the server summary. On failure the cached
// list is reset to empty so stale rows never outlive a failed reload.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	transactions, err := s.client.ListTransactions(ctx)
	if err == nil {
		var summary *transaction.Summary
		summary, err = s.client.Summary(ctx)
		if err == nil {
			s.mu.Lock()
			s.transactions = transactions
			s.summary = *summary
			s.loading = false
			s.mu.Unlock()
			return nil
		}
	}

	s.mu.Lock()
	s.transactions = nil
	s.summary = transaction.Summary{}
	s.loading = false
	s.mu.Unlock()
	return err
}

// Refetch is the manual authoritative reload.
func (s *Store) Refetch(ctx context.Context) error {
	return s.Load(ctx)
}

// AddTransaction creates the transaction on the server, prepends it to the
// cache, and recomputes the summary over the cached rows.
func (s *Store) AddTransaction(ctx context.Context, input TransactionInput) (*transaction.Transaction, error) {
	created, err := s.client.CreateTransaction(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.transactions = append([]*transaction.Transaction{created}, s.transactions...)
	s.summary = recomputeSummary(s.transactions)
	s.mu.Unlock()

	return created, nil
}

// DeleteTransaction removes the transaction on the server, then drops it from
// the cache and recomputes the summary.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.client.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
	s.summary = recomputeSummary(s.transactions)
	s.mu.Unlock()

	return nil
}

// Transactions returns a copy of the cached transaction list.
func (s *Store) Transactions() []*transaction.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*transaction.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Summary returns the current cached summary.
func (s *Store) Summary() transaction.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Loading reports whether a Load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// AccountBalances derives per-account balances from the cached transactions:
// initial balance plus the signed sum of rows referencing each account. The
// result is a pure cache-side view, never persisted.
func (s *Store) AccountBalances(accounts []*account.Account) map[int64]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	balances := make(map[int64]decimal.Decimal, len(accounts))
	for _, acc := range accounts {
		balances[acc.ID] = decimal.NewFromFloat(acc.InitialBalance)
	}

	for _, t := range s.transactions {
		if t.AccountID == nil {
			continue
		}
		bal, ok := balances[*t.AccountID]
		if !ok {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == transaction.TypeExpense {
			amount = amount.Neg()
		}
		balances[*t.AccountID] = bal.Add(amount)
	}

	out := make(map[int64]float64, len(balances))
	for id, bal := range balances {
		out[id], _ = bal.Float64()
	}
	return out
}

// recomputeSummary rebuilds the aggregate from the cached rows using decimal
// arithmetic so repeated local updates cannot drift from the server's
// DECIMAL(10,2) sums.
func recomputeSummary(transactions []*transaction.Transaction) transaction.Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == transaction.TypeIncome {
			income = income.Add(amount)
		} else {
			expense = expense.Add(amount)
		}
	}

	totalIncome, _ := income.Float64()
	totalExpense, _ := expense.Float64()
	balance, _ := income.Sub(expense).Float64()

	return transaction.Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      balance,
	}
}
