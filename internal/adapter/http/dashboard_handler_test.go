package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainLoan "coopfin/internal/domain/loan"
	domainMember "coopfin/internal/domain/member"
	domainTxn "coopfin/internal/domain/transaction"
	"coopfin/internal/testutil/loanmock"
	"coopfin/internal/testutil/membermock"
	"coopfin/internal/testutil/txnmock"
	uc "coopfin/internal/usecase/dashboard"
)

func TestDashboardStats(t *testing.T) {
	e := newEchoWithValidator()
	members := &membermock.Repo{
		CountActiveFn: func(ctx context.Context, role domainMember.Role) (int64, error) {
			return 7, nil
		},
	}
	loans := &loanmock.Repo{
		ListFn: func(ctx context.Context) ([]domainLoan.Loan, error) {
			return []domainLoan.Loan{
				{LoanID: "l1", Status: domainLoan.StatusActive, TotalDue: decimal.NewFromInt(5000)},
				{LoanID: "l2", Status: domainLoan.StatusPending, TotalDue: decimal.NewFromInt(2000)},
			}, nil
		},
	}
	txns := &txnmock.Repo{
		ListFn: func(ctx context.Context, from, to *time.Time) ([]domainTxn.Transaction, error) {
			return []domainTxn.Transaction{
				{Type: domainTxn.TypeDeposit, Amount: decimal.NewFromInt(800), CreatedAt: time.Now().UTC()},
			}, nil
		},
	}
	h := NewDashboardHandler(uc.NewUsecase(members, loans, txns))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Stats(c); err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.TotalMembers != 7 {
		t.Fatalf("total members = %d, want 7", got.TotalMembers)
	}
	if got.ActiveLoanCount != 1 || got.PendingLoanCount != 1 {
		t.Fatalf("loan counts = %d/%d, want 1/1", got.ActiveLoanCount, got.PendingLoanCount)
	}
	if !got.OutstandingLoans.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("outstanding = %s, want 5000", got.OutstandingLoans)
	}
	if !got.TotalDeposits.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("deposits = %s, want 800", got.TotalDeposits)
	}
	if len(got.RecentTransactions) != 1 {
		t.Fatalf("recent = %d, want 1", len(got.RecentTransactions))
	}
}
