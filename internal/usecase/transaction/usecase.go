package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainMember "coopfin/internal/domain/member"
	domainTxn "coopfin/internal/domain/transaction"
	"coopfin/pkg/id"
)

var ErrValidation = errors.New("validation failed")

type Usecase struct {
	txns    domainTxn.Repository
	members domainMember.Repository
}

func NewUsecase(txns domainTxn.Repository, members domainMember.Repository) *Usecase {
	return &Usecase{txns: txns, members: members}
}

type RecordInput struct {
	MemberID    string          `json:"member_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LoanID      *string         `json:"loan_id,omitempty"`
	ActorID     string          `json:"-"`
}

// Record appends one ledger entry. Entries are immutable once written; there
// is no update or delete path.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*domainTxn.Transaction, error) {
	if in.MemberID == "" {
		return nil, fmt.Errorf("%w: member_id is required", ErrValidation)
	}
	typ := domainTxn.Type(in.Type)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: invalid transaction type %q", ErrValidation, in.Type)
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if _, err := u.members.GetByMemberID(ctx, in.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainMember.ErrNotFound
		}
		return nil, err
	}

	t := &domainTxn.Transaction{
		TransactionID: id.NewID32(),
		MemberID:      in.MemberID,
		Type:          typ,
		Amount:        in.Amount,
		Description:   in.Description,
		LoanID:        in.LoanID,
		RecordedByID:  in.ActorID,
	}
	if err := u.txns.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns entries newest first, optionally bounded to a period.
func (u *Usecase) List(ctx context.Context, from, to *time.Time) ([]domainTxn.Transaction, error) {
	return u.txns.List(ctx, from, to)
}

// ListByMember returns a member's entries newest first.
func (u *Usecase) ListByMember(ctx context.Context, memberID string) ([]domainTxn.Transaction, error) {
	return u.txns.ListByMemberID(ctx, memberID)
}
