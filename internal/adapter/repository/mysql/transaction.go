package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	txnDomain "coopfin/internal/domain/transaction"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txnDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) GetByTransactionID(ctx context.Context, txnID string) (*txnDomain.Transaction, error) {
	var out txnDomain.Transaction
	res := r.db.WithContext(ctx).Where("transaction_id = ?", txnID).First(&out)
	return &out, res.Error
}

func (r *TransactionRepository) ListByMemberID(ctx context.Context, memberID string) ([]txnDomain.Transaction, error) {
	var out []txnDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListByLoanID(ctx context.Context, loanID string) ([]txnDomain.Transaction, error) {
	var out []txnDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) List(ctx context.Context, from, to *time.Time) ([]txnDomain.Transaction, error) {
	q := r.db.WithContext(ctx)
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	var out []txnDomain.Transaction
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
