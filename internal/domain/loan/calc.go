package loan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// Terms are the figures derived once at application time. Values carry full
// precision; callers round to 2 decimal places when persisting.
type Terms struct {
	TotalInterest  decimal.Decimal
	TotalDue       decimal.Decimal
	MonthlyPayment decimal.Decimal
}

// Calculate derives loan terms under simple interest:
//
//	totalInterest = principal * (rate/100) * (term/12)
//	totalDue      = principal + totalInterest
//	monthlyPayment = totalDue / term
//
// Interest is linear on the principal for the full term; nothing compounds.
// Policy bounds (min/max amount and term) are the caller's job using the
// resolved settings; this only rejects inputs the formula cannot hold for.
func Calculate(principal, annualRatePercent decimal.Decimal, termMonths int) (Terms, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return Terms{}, fmt.Errorf("%w: principal must be positive", ErrInvalidLoanTerms)
	}
	if annualRatePercent.IsNegative() {
		return Terms{}, fmt.Errorf("%w: interest rate must not be negative", ErrInvalidLoanTerms)
	}
	if termMonths < 1 {
		return Terms{}, fmt.Errorf("%w: term must be at least 1 month", ErrInvalidLoanTerms)
	}

	term := decimal.NewFromInt(int64(termMonths))
	totalInterest := principal.Mul(annualRatePercent).Div(hundred).Mul(term).Div(monthsPerYear)
	totalDue := principal.Add(totalInterest)

	return Terms{
		TotalInterest:  totalInterest,
		TotalDue:       totalDue,
		MonthlyPayment: totalDue.Div(term),
	}, nil
}
