package account

import (
	"time"

	"fintrack/internal/shared/apperr"
)

// Allowed account types
var accountTypes = map[string]struct{}{
	"cash":       {},
	"bank":       {},
	"credit":     {},
	"investment": {},
	"savings":    {},
	"other":      {},
}

// DefaultIcon is used when a new account does not specify one.
const DefaultIcon = "wallet"

// Domain errors
var (
	ErrNotFound    = apperr.NotFound("Account not found")
	errNameAndType = apperr.Validation("Name and type are required")
	errInvalidType = apperr.Validation("Type must be one of: cash, bank, credit, investment, savings, other")
)

// Account represents a financial account owned by a user. Deleting an
// account detaches referencing transactions instead of deleting them.
type Account struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	AccountNumber  *string   `json:"accountNumber"`
	Icon           string    `json:"icon"`
	InitialBalance float64   `json:"initialBalance"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateParams contains parameters for creating a new account.
type CreateParams struct {
	Name           string
	Type           string
	AccountNumber  *string
	Icon           string
	InitialBalance float64
}

// Validate checks required fields and the type enum. Defaults the icon.
func (p *CreateParams) Validate() error {
	if p.Name == "" || p.Type == "" {
		return errNameAndType
	}
	if !IsValidType(p.Type) {
		return errInvalidType
	}
	if p.Icon == "" {
		p.Icon = DefaultIcon
	}
	return nil
}

// UpdateParams is the patch applied to an account. Nil fields keep their
// prior values.
type UpdateParams struct {
	Name           *string
	Type           *string
	AccountNumber  *string
	Icon           *string
	InitialBalance *float64
}

// IsZero reports whether the patch would change nothing.
func (p UpdateParams) IsZero() bool {
	return p.Name == nil && p.Type == nil && p.AccountNumber == nil &&
		p.Icon == nil && p.InitialBalance == nil
}

// Validate re-checks supplied fields against the create rules.
func (p UpdateParams) Validate() error {
	if p.Type != nil && !IsValidType(*p.Type) {
		return errInvalidType
	}
	return nil
}

// IsValidType checks if the provided account type is valid.
func IsValidType(t string) bool {
	_, ok := accountTypes[t]
	return ok
}
