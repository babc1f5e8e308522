package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("loan not found")
	// state machine guard failures
	ErrInvalidTransition = errors.New("invalid loan state transition")
	ErrInvalidLoanState  = errors.New("loan is not active")
	// calculator input failures
	ErrInvalidLoanTerms = errors.New("invalid loan terms")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusPaid     Status = "PAID"
	StatusRejected Status = "REJECTED"
)

// Loan holds the terms fixed at application time. MonthlyPayment and TotalDue
// are derived once by Calculate and stored immutably; outstanding figures are
// always recomputed from the transaction ledger, never stored here.
type Loan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID         string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	MemberID       string          `gorm:"size:32;index:idx_loans_member" json:"member_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TermMonths     int             `gorm:"column:term_months" json:"term_months"`
	MonthlyPayment decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	TotalDue       decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_due"`
	Status         Status          `gorm:"type:enum('PENDING','ACTIVE','PAID','REJECTED');default:'PENDING'" json:"status"`
	Purpose        string          `gorm:"type:text" json:"purpose"`
	ApprovedByID   *string         `gorm:"size:32" json:"approved_by_id,omitempty"`
	AppliedAt      time.Time       `gorm:"autoCreateTime" json:"applied_at"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"-"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
