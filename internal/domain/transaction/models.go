package transaction

import (
	"time"

	"fintrack/internal/shared/apperr"
)

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// MaxDescriptionLength matches the description column width.
const MaxDescriptionLength = 500

// Domain errors
var (
	ErrNotFound         = apperr.NotFound("Transaction not found")
	ErrNoFields         = apperr.Validation("No fields to update")
	errMissingFields    = apperr.Validation("Please provide all required fields")
	errInvalidType      = apperr.Validation(`Type must be either "income" or "expense"`)
	errNonPositive      = apperr.Validation("Amount must be greater than 0")
	errDescriptionLimit = apperr.Validation("Description must be 500 characters or fewer")
)

// Transaction is a single income or expense entry, optionally referencing an
// account. A nil AccountID means the entry is detached.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	AccountID   *int64    `json:"accountId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Summary is the derived aggregate over a user's transactions.
type Summary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// IsValidType checks the type enum.
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// CreateParams contains parameters for creating a new transaction.
type CreateParams struct {
	Type        string
	Amount      float64
	Description string
	Category    string
	Date        time.Time
	AccountID   *int64
}

// Validate enforces the create rules: all fields present, type in the enum,
// amount strictly positive, description bounded.
func (p CreateParams) Validate() error {
	if p.Type == "" || p.Amount == 0 || p.Description == "" || p.Category == "" || p.Date.IsZero() {
		return errMissingFields
	}
	if !IsValidType(p.Type) {
		return errInvalidType
	}
	if p.Amount <= 0 {
		return errNonPositive
	}
	if len(p.Description) > MaxDescriptionLength {
		return errDescriptionLimit
	}
	return nil
}

// UpdateParams is the patch applied to a transaction. Nil fields keep their
// prior values. Detach explicitly clears the account reference; it cannot be
// combined with AccountID.
type UpdateParams struct {
	Type        *string
	Amount      *float64
	Description *string
	Category    *string
	Date        *time.Time
	AccountID   *int64
	Detach      bool
}

// IsZero reports whether the patch would only touch updated_at.
func (p UpdateParams) IsZero() bool {
	return p.Type == nil && p.Amount == nil && p.Description == nil &&
		p.Category == nil && p.Date == nil && p.AccountID == nil && !p.Detach
}

// Validate re-checks supplied fields against the create rules.
func (p UpdateParams) Validate() error {
	if p.IsZero() {
		return ErrNoFields
	}
	if p.Type != nil && !IsValidType(*p.Type) {
		return errInvalidType
	}
	if p.Amount != nil && *p.Amount <= 0 {
		return errNonPositive
	}
	if p.Description != nil && len(*p.Description) > MaxDescriptionLength {
		return errDescriptionLimit
	}
	return nil
}
