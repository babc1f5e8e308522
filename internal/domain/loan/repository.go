package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row (SELECT ... FOR UPDATE) so that
	// concurrent transitions on the same loan are serialized.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByMemberID(ctx context.Context, memberID string) ([]Loan, error)
	List(ctx context.Context) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
