// Package ledger computes derived balance figures from the append-only
// transaction log. Everything here is a pure fold over a slice the caller
// loaded; empty input yields zero, and nothing is ever written back.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"coopfin/internal/domain/loan"
	"coopfin/internal/domain/transaction"
)

// TotalDeposits sums DEPOSIT amounts.
func TotalDeposits(txns []transaction.Transaction) decimal.Decimal {
	return sumByType(txns, transaction.TypeDeposit)
}

// TotalWithdrawals sums WITHDRAWAL amounts.
func TotalWithdrawals(txns []transaction.Transaction) decimal.Decimal {
	return sumByType(txns, transaction.TypeWithdrawal)
}

// SavingsBalance is deposits minus withdrawals. Not floored: an over-withdrawn
// account shows a signed negative figure.
func SavingsBalance(txns []transaction.Transaction) decimal.Decimal {
	return TotalDeposits(txns).Sub(TotalWithdrawals(txns))
}

// TotalPaid sums LOAN_PAYMENT amounts recorded against the given loan.
func TotalPaid(loanID string, txns []transaction.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == transaction.TypeLoanPayment && t.LoanID != nil && *t.LoanID == loanID {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Outstanding is the remaining amount owed on a loan, floored at zero so an
// overpaid loan never reports a negative balance.
func Outstanding(l *loan.Loan, txns []transaction.Transaction) decimal.Decimal {
	out := l.TotalDue.Sub(TotalPaid(l.LoanID, txns))
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// MonthlyCollections sums DEPOSIT and LOAN_PAYMENT amounts whose CreatedAt
// falls within [from, to].
func MonthlyCollections(txns []transaction.Transaction, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type != transaction.TypeDeposit && t.Type != transaction.TypeLoanPayment {
			continue
		}
		if t.CreatedAt.Before(from) || t.CreatedAt.After(to) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total
}

// MonthTotals are per-calendar-month sums by transaction type.
type MonthTotals struct {
	Month        string // YYYY-MM
	Deposits     decimal.Decimal
	LoanPayments decimal.Decimal
	Withdrawals  decimal.Decimal
	LoanReleases decimal.Decimal
}

// Collections is deposits plus loan payments for the month.
func (m MonthTotals) Collections() decimal.Decimal {
	return m.Deposits.Add(m.LoanPayments)
}

// MonthlyBreakdown groups the whole log by calendar month, ascending.
func MonthlyBreakdown(txns []transaction.Transaction) []MonthTotals {
	byMonth := make(map[string]*MonthTotals)
	for _, t := range txns {
		key := t.CreatedAt.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &MonthTotals{
				Month:        key,
				Deposits:     decimal.Zero,
				LoanPayments: decimal.Zero,
				Withdrawals:  decimal.Zero,
				LoanReleases: decimal.Zero,
			}
			byMonth[key] = m
		}
		switch t.Type {
		case transaction.TypeDeposit:
			m.Deposits = m.Deposits.Add(t.Amount)
		case transaction.TypeLoanPayment:
			m.LoanPayments = m.LoanPayments.Add(t.Amount)
		case transaction.TypeWithdrawal:
			m.Withdrawals = m.Withdrawals.Add(t.Amount)
		case transaction.TypeLoanRelease:
			m.LoanReleases = m.LoanReleases.Add(t.Amount)
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthTotals, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byMonth[k])
	}
	return out
}

func sumByType(txns []transaction.Transaction, typ transaction.Type) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == typ {
			total = total.Add(t.Amount)
		}
	}
	return total
}
