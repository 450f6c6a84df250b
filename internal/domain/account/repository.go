package account

import "context"

// Repository persists accounts. Every operation is scoped to the owning user;
// rows owned by other users are indistinguishable from absent rows.
type Repository interface {
	ListByUserID(ctx context.Context, userID int64) ([]*Account, error)
	Create(ctx context.Context, userID int64, params CreateParams) (*Account, error)
	Update(ctx context.Context, userID, id int64, params UpdateParams) (*Account, error)
	Delete(ctx context.Context, userID, id int64) error
}
