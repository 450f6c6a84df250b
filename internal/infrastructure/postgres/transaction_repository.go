package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/apperr"
)

// TransactionRepository implements transaction.Repository for PostgreSQL.
type TransactionRepository struct {
	db *DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = "id, user_id, type, amount, description, category, date, account_id, created_at, updated_at"

// ListByUserID returns the user's transactions, most recent date first.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID int64) ([]*transaction.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}
	defer rows.Close()

	transactions := make([]*transaction.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperr.FromPostgres(err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromPostgres(err)
	}

	return transactions, nil
}

// GetByID fetches a single transaction owned by the user.
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transaction.ErrNotFound
	}
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}
	return t, nil
}

// Create inserts a new transaction. A dangling account reference surfaces as
// a foreign key violation from the database, not a pre-check.
func (r *TransactionRepository) Create(ctx context.Context, userID int64, params transaction.CreateParams) (*transaction.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, description, category, date, account_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + transactionColumns

	row := r.db.QueryRowContext(ctx, query,
		userID, params.Type, params.Amount, params.Description,
		params.Category, params.Date, nullInt64(params.AccountID),
	)

	t, err := scanTransaction(row)
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}
	return t, nil
}

// Update applies a partial update with a fixed statement; boolean flags pick
// the touched columns. Detach clears account_id through the same flag pair a
// reassignment uses, with a NULL value.
func (r *TransactionRepository) Update(ctx context.Context, userID, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
	query := `
		UPDATE transactions SET
			type        = CASE WHEN $1 THEN $2 ELSE type END,
			amount      = CASE WHEN $3 THEN $4 ELSE amount END,
			description = CASE WHEN $5 THEN $6 ELSE description END,
			category    = CASE WHEN $7 THEN $8 ELSE category END,
			date        = CASE WHEN $9 THEN $10 ELSE date END,
			account_id  = CASE WHEN $11 THEN $12 ELSE account_id END,
			updated_at  = CURRENT_TIMESTAMP
		WHERE id = $13 AND user_id = $14
		RETURNING ` + transactionColumns

	row := r.db.QueryRowContext(ctx, query,
		params.Type != nil, nullString(params.Type),
		params.Amount != nil, nullFloat64(params.Amount),
		params.Description != nil, nullString(params.Description),
		params.Category != nil, nullString(params.Category),
		params.Date != nil, nullTime(params.Date),
		params.AccountID != nil || params.Detach, nullInt64(params.AccountID),
		id, userID,
	)

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transaction.ErrNotFound
	}
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}
	return t, nil
}

// Delete removes the transaction owned by the user.
func (r *TransactionRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperr.FromPostgres(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.FromPostgres(err)
	}
	if rows == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

// Summarize aggregates income, expense, and net balance in a single query.
// A user with no transactions gets an all-zero summary.
func (r *TransactionRepository) Summarize(ctx context.Context, userID int64) (*transaction.Summary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0) AS balance
		FROM transactions
		WHERE user_id = $1`

	var s transaction.Summary
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.TotalIncome, &s.TotalExpense, &s.Balance)
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}

	return &s, nil
}

func scanTransaction(row rowScanner) (*transaction.Transaction, error) {
	var t transaction.Transaction
	var accountID sql.NullInt64

	err := row.Scan(
		&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Description,
		&t.Category, &t.Date, &accountID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if accountID.Valid {
		t.AccountID = &accountID.Int64
	}
	return &t, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
