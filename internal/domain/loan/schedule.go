package loan

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"coopfin/internal/domain/transaction"
)

type ScheduleStatus string

const (
	ScheduleStatusPaid     ScheduleStatus = "Paid"
	ScheduleStatusOverdue  ScheduleStatus = "Overdue"
	ScheduleStatusUpcoming ScheduleStatus = "Upcoming"
)

// ScheduleEntry is one period of a loan's amortization schedule.
type ScheduleEntry struct {
	Period     int             `json:"period"`
	DueDate    time.Time       `json:"due_date"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	PaidDate   *time.Time      `json:"paid_date,omitempty"`
	Status     ScheduleStatus  `json:"status"`
}

// BuildSchedule produces exactly TermMonths entries for an activated loan.
// Due dates are StartDate plus i calendar months (time.AddDate semantics).
// LOAN_PAYMENT entries are sorted chronologically (ties by insertion order)
// and matched to periods positionally: the i-th payment settles period i no
// matter its amount or when it landed relative to the due date. Returns nil
// when the loan has no start date yet.
func BuildSchedule(l *Loan, payments []transaction.Transaction, now time.Time) []ScheduleEntry {
	if l == nil || l.StartDate == nil {
		return nil
	}

	ordered := make([]transaction.Transaction, 0, len(payments))
	for _, p := range payments {
		if p.Type == transaction.TypeLoanPayment {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	schedule := make([]ScheduleEntry, 0, l.TermMonths)
	for i := 1; i <= l.TermMonths; i++ {
		entry := ScheduleEntry{
			Period:     i,
			DueDate:    l.StartDate.AddDate(0, i, 0),
			AmountDue:  l.MonthlyPayment,
			AmountPaid: decimal.Zero,
		}
		if i <= len(ordered) {
			p := ordered[i-1]
			paidAt := p.CreatedAt
			entry.AmountPaid = p.Amount
			entry.PaidDate = &paidAt
			entry.Status = ScheduleStatusPaid
		} else if now.After(entry.DueDate) {
			entry.Status = ScheduleStatusOverdue
		} else {
			entry.Status = ScheduleStatusUpcoming
		}
		schedule = append(schedule, entry)
	}
	return schedule
}
