package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coopfin/internal/domain/ledger"
	domainMember "coopfin/internal/domain/member"
	domainTxn "coopfin/internal/domain/transaction"
	"coopfin/pkg/id"
)

var ErrValidation = errors.New("validation failed")

const minPasswordLen = 6

type Usecase struct {
	members domainMember.Repository
	txns    domainTxn.Repository
}

func NewUsecase(members domainMember.Repository, txns domainTxn.Repository) *Usecase {
	return &Usecase{members: members, txns: txns}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type RegisteredDTO struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Register creates a MEMBER-role account with a bcrypt password hash.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisteredDTO, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", ErrValidation)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	_, err := u.members.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domainMember.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	m := &domainMember.Member{
		MemberID:     id.NewID32(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domainMember.RoleMember,
		Phone:        in.Phone,
		Address:      in.Address,
		Active:       true,
		JoinedAt:     time.Now().UTC(),
	}
	if err := u.members.Create(ctx, m); err != nil {
		return nil, err
	}

	return &RegisteredDTO{MemberID: m.MemberID, Name: m.Name, Email: m.Email}, nil
}

type ProfileDTO struct {
	MemberID       string          `json:"member_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Active         bool            `json:"active"`
	JoinedAt       time.Time       `json:"joined_at"`
	SavingsBalance decimal.Decimal `json:"savings_balance"`
	TotalDeposits  decimal.Decimal `json:"total_deposits"`
}

// Get returns a member with savings figures derived from the ledger.
func (u *Usecase) Get(ctx context.Context, memberID string) (*ProfileDTO, error) {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainMember.ErrNotFound
		}
		return nil, err
	}

	txns, err := u.txns.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &ProfileDTO{
		MemberID:       m.MemberID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Address:        m.Address,
		Active:         m.Active,
		JoinedAt:       m.JoinedAt,
		SavingsBalance: ledger.SavingsBalance(txns),
		TotalDeposits:  ledger.TotalDeposits(txns),
	}, nil
}

// Statement bundles a member with their full transaction history, for the
// XLSX export.
type Statement struct {
	Member       domainMember.Member
	Transactions []domainTxn.Transaction
	Savings      decimal.Decimal
	Deposits     decimal.Decimal
}

func (u *Usecase) Statement(ctx context.Context, memberID string) (*Statement, error) {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainMember.ErrNotFound
		}
		return nil, err
	}
	txns, err := u.txns.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &Statement{
		Member:       *m,
		Transactions: txns,
		Savings:      ledger.SavingsBalance(txns),
		Deposits:     ledger.TotalDeposits(txns),
	}, nil
}

func (u *Usecase) List(ctx context.Context) ([]domainMember.Member, error) {
	return u.members.List(ctx, true)
}
