package ports

import (
	"context"
	"time"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// AuthRepository defines persistence operations for users.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenRevoker stores revoked bearer tokens until they expire. Backed by an
// external key-value store so revocation survives restarts and is shared
// across instances.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
