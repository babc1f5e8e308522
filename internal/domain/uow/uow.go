package uow

import (
	"context"

	"coopfin/internal/domain/loan"
	"coopfin/internal/domain/member"
	"coopfin/internal/domain/setting"
	"coopfin/internal/domain/transaction"
)

type Repos struct {
	Members      member.Repository
	Loans        loan.Repository
	Transactions transaction.Repository
	Settings     setting.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
