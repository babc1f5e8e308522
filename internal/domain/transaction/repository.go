package transaction

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByTransactionID(ctx context.Context, txnID string) (*Transaction, error)
	// ListByMemberID returns a member's entries newest first.
	ListByMemberID(ctx context.Context, memberID string) ([]Transaction, error)
	// ListByLoanID returns a loan's entries oldest first, the order the
	// schedule matcher consumes them in.
	ListByLoanID(ctx context.Context, loanID string) ([]Transaction, error)
	// List returns entries newest first, optionally bounded by CreatedAt.
	List(ctx context.Context, from, to *time.Time) ([]Transaction, error)
}
