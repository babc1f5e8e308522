package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"coopfin/internal/domain/ledger"
	domainLoan "coopfin/internal/domain/loan"
	domainMember "coopfin/internal/domain/member"
	domainSetting "coopfin/internal/domain/setting"
	domainTxn "coopfin/internal/domain/transaction"
	"coopfin/internal/domain/uow"
	"coopfin/pkg/id"

	"github.com/shopspring/decimal"
)

// ErrValidation marks caller-supplied values outside the configured policy
// bounds. The handler maps it to a 400 with the wrapped message.
var ErrValidation = errors.New("validation failed")

type Usecase struct {
	loans    domainLoan.Repository
	members  domainMember.Repository
	txns     domainTxn.Repository
	settings domainSetting.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(
	loans domainLoan.Repository,
	members domainMember.Repository,
	txns domainTxn.Repository,
	settings domainSetting.Repository,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{loans: loans, members: members, txns: txns, settings: settings, uow: tx}
}

// Apply creates a PENDING loan. Amount and term are bounded by the resolved
// policy settings; monthlyPayment and totalDue are derived once here and
// stored immutably.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.MemberID == "" || len(in.MemberID) != 32 {
		return nil, fmt.Errorf("%w: member_id is required", ErrValidation)
	}

	if _, err := u.members.GetByMemberID(ctx, in.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainMember.ErrNotFound
		}
		return nil, err
	}

	rows, err := u.settings.List(ctx)
	if err != nil {
		return nil, err
	}
	policy, err := domainSetting.ResolvePolicy(rows)
	if err != nil {
		return nil, err
	}

	rate := policy.DefaultInterestRate
	if in.InterestRate != nil {
		rate = *in.InterestRate
	}

	if in.Amount.LessThan(policy.MinLoanAmount) || in.Amount.GreaterThan(policy.MaxLoanAmount) {
		return nil, fmt.Errorf("%w: loan amount must be between %s and %s",
			ErrValidation, policy.MinLoanAmount.StringFixed(2), policy.MaxLoanAmount.StringFixed(2))
	}
	if in.TermMonths < policy.MinTermMonths || in.TermMonths > policy.MaxTermMonths {
		return nil, fmt.Errorf("%w: loan term must be between %d and %d months",
			ErrValidation, policy.MinTermMonths, policy.MaxTermMonths)
	}

	terms, err := domainLoan.Calculate(in.Amount, rate, in.TermMonths)
	if err != nil {
		return nil, err
	}

	l := &domainLoan.Loan{
		LoanID:         id.NewID32(),
		MemberID:       in.MemberID,
		Amount:         in.Amount,
		InterestRate:   rate,
		TermMonths:     in.TermMonths,
		MonthlyPayment: terms.MonthlyPayment.Round(2),
		TotalDue:       terms.TotalDue.Round(2),
		Status:         domainLoan.StatusPending,
		Purpose:        in.Purpose,
		AppliedAt:      time.Now().UTC(),
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	dto := toDTO(l)
	return &dto, nil
}

// Approve moves a PENDING loan to ACTIVE and releases the principal. The
// status change and the LOAN_RELEASE entry commit as one unit; the row lock
// taken by WithinLoanTx serializes concurrent calls so the second one sees
// ACTIVE and fails the guard.
func (u *Usecase) Approve(ctx context.Context, loanID, actorID string) (*LoanDTO, error) {
	var dto LoanDTO

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusPending {
			return domainLoan.ErrInvalidTransition
		}

		now := time.Now().UTC()
		l.Status = domainLoan.StatusActive
		l.ApprovedByID = &actorID
		l.ApprovedAt = &now
		l.StartDate = &now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		release := &domainTxn.Transaction{
			TransactionID: id.NewID32(),
			MemberID:      l.MemberID,
			Type:          domainTxn.TypeLoanRelease,
			Amount:        l.Amount,
			Description:   "Loan disbursement - " + l.Purpose,
			LoanID:        &l.LoanID,
			RecordedByID:  actorID,
		}
		if err := r.Transactions.Create(ctx, release); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return &dto, nil
}

// Reject is terminal and writes no ledger entry.
func (u *Usecase) Reject(ctx context.Context, loanID, actorID string) (*LoanDTO, error) {
	var dto LoanDTO

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusPending {
			return domainLoan.ErrInvalidTransition
		}
		l.Status = domainLoan.StatusRejected
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return &dto, nil
}

// RecordPayment appends one LOAN_PAYMENT entry against an ACTIVE loan. It
// deliberately does not cap the running total at totalDue and never flips the
// loan to PAID; both are policy decisions left to the adopting organization.
func (u *Usecase) RecordPayment(ctx context.Context, in PaymentInput) (*domainTxn.Transaction, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	var txn *domainTxn.Transaction
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusActive {
			return domainLoan.ErrInvalidLoanState
		}

		desc := in.Description
		if desc == "" {
			desc = "Loan payment"
		}
		txn = &domainTxn.Transaction{
			TransactionID: id.NewID32(),
			MemberID:      l.MemberID,
			Type:          domainTxn.TypeLoanPayment,
			Amount:        in.Amount,
			Description:   desc,
			LoanID:        &l.LoanID,
			RecordedByID:  in.ActorID,
		}
		return r.Transactions.Create(ctx, txn)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return txn, nil
}

// Get returns the loan with ledger-derived figures and its schedule.
func (u *Usecase) Get(ctx context.Context, loanID string) (*DetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	txns, err := u.txns.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	totalPaid := ledger.TotalPaid(l.LoanID, txns)
	outstanding := ledger.Outstanding(l, txns)

	progress := decimal.Zero
	if l.TotalDue.IsPositive() {
		progress = totalPaid.Div(l.TotalDue).Mul(decimal.NewFromInt(100))
		if progress.GreaterThan(decimal.NewFromInt(100)) {
			progress = decimal.NewFromInt(100)
		}
	}

	return &DetailDTO{
		LoanDTO:     toDTO(l),
		TotalPaid:   totalPaid,
		Outstanding: outstanding,
		ProgressPct: progress.Round(2),
		Schedule:    domainLoan.BuildSchedule(l, txns, time.Now().UTC()),
	}, nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, toDTO(&ls[i]))
	}
	return out, nil
}
