package http

import (
	"context"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/domain/user"
)

// MockUserRepo implements user.Repository for testing
type MockUserRepo struct {
	CreateFunc     func(ctx context.Context, params user.CreateParams) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*user.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, params user.CreateParams) (*user.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrNotFound
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrNotFound
}

// MockAccountRepo implements account.Repository for testing
type MockAccountRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*account.Account, error)
	CreateFunc       func(ctx context.Context, userID int64, params account.CreateParams) (*account.Account, error)
	UpdateFunc       func(ctx context.Context, userID, id int64, params account.UpdateParams) (*account.Account, error)
	DeleteFunc       func(ctx context.Context, userID, id int64) error
}

func (m *MockAccountRepo) ListByUserID(ctx context.Context, userID int64) ([]*account.Account, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAccountRepo) Create(ctx context.Context, userID int64, params account.CreateParams) (*account.Account, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockAccountRepo) Update(ctx context.Context, userID, id int64, params account.UpdateParams) (*account.Account, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, params)
	}
	return nil, nil
}

func (m *MockAccountRepo) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

// MockTransactionRepo implements transaction.Repository for testing
type MockTransactionRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*transaction.Transaction, error)
	GetByIDFunc      func(ctx context.Context, userID, id int64) (*transaction.Transaction, error)
	CreateFunc       func(ctx context.Context, userID int64, params transaction.CreateParams) (*transaction.Transaction, error)
	UpdateFunc       func(ctx context.Context, userID, id int64, params transaction.UpdateParams) (*transaction.Transaction, error)
	DeleteFunc       func(ctx context.Context, userID, id int64) error
	SummarizeFunc    func(ctx context.Context, userID int64) (*transaction.Summary, error)
}

func (m *MockTransactionRepo) ListByUserID(ctx context.Context, userID int64) ([]*transaction.Transaction, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, userID, id int64) (*transaction.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, transaction.ErrNotFound
}

func (m *MockTransactionRepo) Create(ctx context.Context, userID int64, params transaction.CreateParams) (*transaction.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) Update(ctx context.Context, userID, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockTransactionRepo) Summarize(ctx context.Context, userID int64) (*transaction.Summary, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, userID)
	}
	return &transaction.Summary{}, nil
}
