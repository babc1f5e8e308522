package txnmock

import (
	"context"
	"time"

	domain "coopfin/internal/domain/transaction"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, t *domain.Transaction) error
	GetByTransactionIDFn func(ctx context.Context, txnID string) (*domain.Transaction, error)
	ListByMemberIDFn     func(ctx context.Context, memberID string) ([]domain.Transaction, error)
	ListByLoanIDFn       func(ctx context.Context, loanID string) ([]domain.Transaction, error)
	ListFn               func(ctx context.Context, from, to *time.Time) ([]domain.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTransactionID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, txnID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByMemberID(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context, from, to *time.Time) ([]domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, from, to)
	}
	return nil, nil
}
