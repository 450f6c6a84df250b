package transaction

import "context"

// Repository persists transactions. Every operation is scoped to the owning
// user; rows owned by other users are indistinguishable from absent rows.
type Repository interface {
	ListByUserID(ctx context.Context, userID int64) ([]*Transaction, error)
	GetByID(ctx context.Context, userID, id int64) (*Transaction, error)
	Create(ctx context.Context, userID int64, params CreateParams) (*Transaction, error)
	Update(ctx context.Context, userID, id int64, params UpdateParams) (*Transaction, error)
	Delete(ctx context.Context, userID, id int64) error
	Summarize(ctx context.Context, userID int64) (*Summary, error)
}
