package mysql

import (
	"context"

	"gorm.io/gorm"

	memberDomain "coopfin/internal/domain/member"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) Save(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) List(ctx context.Context, onlyMembers bool) ([]memberDomain.Member, error) {
	q := r.db.WithContext(ctx)
	if onlyMembers {
		q = q.Where("role = ?", memberDomain.RoleMember)
	}
	var out []memberDomain.Member
	res := q.Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *MemberRepository) CountActive(ctx context.Context, role memberDomain.Role) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&memberDomain.Member{}).
		Where("role = ? AND active = ?", role, true).
		Count(&n)
	return n, res.Error
}
