package membermock

import (
	"context"

	domain "coopfin/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, m *domain.Member) error
	GetByMemberIDFn func(ctx context.Context, memberID string) (*domain.Member, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.Member, error)
	ListFn          func(ctx context.Context, onlyMembers bool) ([]domain.Member, error)
	CountActiveFn   func(ctx context.Context, role domain.Role) (int64, error)
	SaveFn          func(ctx context.Context, m *domain.Member) error
}

func (m *Repo) Create(ctx context.Context, mem *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mem)
	}
	return nil
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, onlyMembers bool) ([]domain.Member, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, onlyMembers)
	}
	return nil, nil
}

func (m *Repo) CountActive(ctx context.Context, role domain.Role) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx, role)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, mem *domain.Member) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mem)
	}
	return nil
}
