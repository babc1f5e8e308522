package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	// List returns members ordered by name; onlyMembers restricts to the
	// MEMBER role (staff excluded from balance reports).
	List(ctx context.Context, onlyMembers bool) ([]Member, error)
	CountActive(ctx context.Context, role Role) (int64, error)
	Save(ctx context.Context, m *Member) error
}
