package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fintrack/internal/domain/account"
	"fintrack/internal/shared/apperr"
)

// AccountRepository implements account.Repository for PostgreSQL.
type AccountRepository struct {
	db *DB
}

var _ account.Repository = (*AccountRepository)(nil)

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = "id, user_id, name, type, account_number, icon, initial_balance, created_at, updated_at"

// ListByUserID returns all accounts owned by the user, newest first with id
// as a stable tie-break for rows sharing a timestamp.
func (r *AccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*account.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}
	defer rows.Close()

	accounts := make([]*account.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, apperr.FromPostgres(err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromPostgres(err)
	}

	return accounts, nil
}

// Create inserts a new account for the user.
func (r *AccountRepository) Create(ctx context.Context, userID int64, params account.CreateParams) (*account.Account, error) {
	query := `
		INSERT INTO accounts (user_id, name, type, account_number, icon, initial_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + accountColumns

	row := r.db.QueryRowContext(ctx, query,
		userID, params.Name, params.Type, nullString(params.AccountNumber),
		params.Icon, params.InitialBalance,
	)

	acc, err := scanAccount(row)
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}
	return acc, nil
}

// Update applies a partial update. The statement is fixed; boolean flags
// select which columns the patch touches. updated_at always refreshes.
func (r *AccountRepository) Update(ctx context.Context, userID, id int64, params account.UpdateParams) (*account.Account, error) {
	query := `
		UPDATE accounts SET
			name            = CASE WHEN $1 THEN $2 ELSE name END,
			type            = CASE WHEN $3 THEN $4 ELSE type END,
			account_number  = CASE WHEN $5 THEN $6 ELSE account_number END,
			icon            = CASE WHEN $7 THEN $8 ELSE icon END,
			initial_balance = CASE WHEN $9 THEN $10 ELSE initial_balance END,
			updated_at      = CURRENT_TIMESTAMP
		WHERE id = $11 AND user_id = $12
		RETURNING ` + accountColumns

	row := r.db.QueryRowContext(ctx, query,
		params.Name != nil, nullString(params.Name),
		params.Type != nil, nullString(params.Type),
		params.AccountNumber != nil, nullString(params.AccountNumber),
		params.Icon != nil, nullString(params.Icon),
		params.InitialBalance != nil, nullFloat64(params.InitialBalance),
		id, userID,
	)

	acc, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, apperr.FromPostgres(err)
	}
	return acc, nil
}

// Delete removes the account. Referencing transactions are detached by the
// ON DELETE SET NULL foreign key, never deleted.
func (r *AccountRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperr.FromPostgres(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.FromPostgres(err)
	}
	if rows == 0 {
		return account.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*account.Account, error) {
	var acc account.Account
	var accountNumber sql.NullString

	err := row.Scan(
		&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &accountNumber,
		&acc.Icon, &acc.InitialBalance, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if accountNumber.Valid {
		acc.AccountNumber = &accountNumber.String
	}
	return &acc, nil
}

// Nullable parameter helpers

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
