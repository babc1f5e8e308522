package setting

import "context"

type Repository interface {
	List(ctx context.Context) ([]Setting, error)
	// Upsert inserts or replaces the value for a key.
	Upsert(ctx context.Context, key, value string) error
}
