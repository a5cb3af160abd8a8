package domain

import "context"

type CatalogRepository interface {
	// Write paths
	UpsertHotel(ctx context.Context, h Hotel, role Role, position int) error
	// DeleteExcept removes every hotel whose id is not in keep.
	DeleteExcept(ctx context.Context, keep []string) (int, error)

	// Read paths
	GetTarget(ctx context.Context) (Hotel, error)
	ListCompetitors(ctx context.Context) ([]Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	DelPrefix(ctx context.Context, prefix string) (int, error)
}

// Role tells the target hotel apart from its competitors in storage.
type Role string

const (
	RoleTarget     Role = "target"
	RoleCompetitor Role = "competitor"
)
