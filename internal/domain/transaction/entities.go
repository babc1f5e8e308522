package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("transaction not found")

// Type is the ledger entry kind. The set is closed; anything else is
// rejected before it reaches storage.
type Type string

const (
	TypeDeposit     Type = "DEPOSIT"
	TypeWithdrawal  Type = "WITHDRAWAL"
	TypeLoanRelease Type = "LOAN_RELEASE"
	TypeLoanPayment Type = "LOAN_PAYMENT"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeLoanRelease, TypeLoanPayment:
		return true
	}
	return false
}

// Label is the human-facing form used in statements.
func (t Type) Label() string {
	switch t {
	case TypeDeposit:
		return "Deposit"
	case TypeWithdrawal:
		return "Withdrawal"
	case TypeLoanRelease:
		return "Loan Release"
	case TypeLoanPayment:
		return "Loan Payment"
	}
	return string(t)
}

// Transaction is one append-only ledger entry. Entries are never updated or
// deleted; every balance in the system is a fold over this log.
type Transaction struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	TransactionID string          `gorm:"size:32;uniqueIndex:ux_txns_txn_id_active" json:"transaction_id"`
	MemberID      string          `gorm:"size:32;index:idx_txns_member" json:"member_id"`
	Type          Type            `gorm:"type:enum('DEPOSIT','WITHDRAWAL','LOAN_RELEASE','LOAN_PAYMENT')" json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Description   string          `gorm:"type:text" json:"description"`
	// Public id of the loan this entry settles or releases, for loan types only
	LoanID       *string        `gorm:"size:32;index:idx_txns_loan" json:"loan_id,omitempty"`
	RecordedByID string         `gorm:"size:32" json:"recorded_by_id"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
