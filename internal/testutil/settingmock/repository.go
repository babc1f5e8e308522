package settingmock

import (
	"context"

	domain "coopfin/internal/domain/setting"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn   func(ctx context.Context) ([]domain.Setting, error)
	UpsertFn func(ctx context.Context, key, value string) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Setting, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Upsert(ctx context.Context, key, value string) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, key, value)
	}
	return nil
}
