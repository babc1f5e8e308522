package loan

import (
	"time"

	"github.com/shopspring/decimal"

	domainLoan "coopfin/internal/domain/loan"
)

type ApplyInput struct {
	MemberID string          `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
	// nil applies the policy defaultInterestRate
	InterestRate *decimal.Decimal `json:"interest_rate"`
	TermMonths   int              `json:"term_months"`
	Purpose      string           `json:"purpose"`
}

type PaymentInput struct {
	LoanID      string          `json:"loan_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ActorID     string          `json:"-"`
}

type LoanDTO struct {
	LoanID         string          `json:"loan_id"`
	MemberID       string          `json:"member_id"`
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	TermMonths     int             `json:"term_months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalDue       decimal.Decimal `json:"total_due"`
	Status         string          `json:"status"`
	Purpose        string          `json:"purpose"`
	ApprovedByID   *string         `json:"approved_by_id,omitempty"`
	AppliedAt      time.Time       `json:"applied_at"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
}

// DetailDTO adds the ledger-derived figures and the amortization schedule.
type DetailDTO struct {
	LoanDTO
	TotalPaid   decimal.Decimal            `json:"total_paid"`
	Outstanding decimal.Decimal            `json:"outstanding"`
	ProgressPct decimal.Decimal            `json:"progress_pct"`
	Schedule    []domainLoan.ScheduleEntry `json:"schedule"`
}

func toDTO(l *domainLoan.Loan) LoanDTO {
	return LoanDTO{
		LoanID:         l.LoanID,
		MemberID:       l.MemberID,
		Amount:         l.Amount,
		InterestRate:   l.InterestRate,
		TermMonths:     l.TermMonths,
		MonthlyPayment: l.MonthlyPayment,
		TotalDue:       l.TotalDue,
		Status:         string(l.Status),
		Purpose:        l.Purpose,
		ApprovedByID:   l.ApprovedByID,
		AppliedAt:      l.AppliedAt,
		ApprovedAt:     l.ApprovedAt,
		StartDate:      l.StartDate,
	}
}
