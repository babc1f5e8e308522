package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"coopfin/internal/domain/ledger"
	domainLoan "coopfin/internal/domain/loan"
	domainMember "coopfin/internal/domain/member"
	domainTxn "coopfin/internal/domain/transaction"
)

type Usecase struct {
	members domainMember.Repository
	loans   domainLoan.Repository
	txns    domainTxn.Repository
}

func NewUsecase(members domainMember.Repository, loans domainLoan.Repository, txns domainTxn.Repository) *Usecase {
	return &Usecase{members: members, loans: loans, txns: txns}
}

type Stats struct {
	TotalMembers       int64                   `json:"total_members"`
	TotalDeposits      decimal.Decimal         `json:"total_deposits"`
	OutstandingLoans   decimal.Decimal         `json:"outstanding_loans"`
	ActiveLoanCount    int                     `json:"active_loan_count"`
	PendingLoanCount   int                     `json:"pending_loan_count"`
	MonthlyCollections decimal.Decimal         `json:"monthly_collections"`
	RecentTransactions []domainTxn.Transaction `json:"recent_transactions"`
}

// Stats aggregates the landing-page figures from a single snapshot of the
// ledger. Outstanding amounts use the same zero floor as the reports.
func (u *Usecase) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	total, err := u.members.CountActive(ctx, domainMember.RoleMember)
	if err != nil {
		return nil, err
	}

	txns, err := u.txns.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}

	outstanding := decimal.Zero
	active, pending := 0, 0
	for i := range loans {
		switch loans[i].Status {
		case domainLoan.StatusActive:
			active++
			outstanding = outstanding.Add(ledger.Outstanding(&loans[i], txns))
		case domainLoan.StatusPending:
			pending++
		}
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	recent := txns
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &Stats{
		TotalMembers:       total,
		TotalDeposits:      ledger.TotalDeposits(txns),
		OutstandingLoans:   outstanding,
		ActiveLoanCount:    active,
		PendingLoanCount:   pending,
		MonthlyCollections: ledger.MonthlyCollections(txns, startOfMonth, now),
		RecentTransactions: recent,
	}, nil
}
