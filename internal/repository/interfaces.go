package repository

import (
	"context"
	"errors"

	"github.com/dom/league-profile-gateway/internal/domain"
)

// ErrCacheMiss is returned when no rotation document has been written yet.
var ErrCacheMiss = errors.New("rotation cache miss")

// RotationCacheRepository stores the single cached rotation document.
type RotationCacheRepository interface {
	Get(ctx context.Context) (*domain.RotationDocument, error)
	Put(ctx context.Context, doc *domain.RotationDocument) error
}

type Repositories struct {
	// RotationCache is nil when no cache store is configured.
	RotationCache RotationCacheRepository
}
