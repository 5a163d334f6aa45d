package ports

import (
	"context"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// DeliveryConfigRepository defines persistence operations for delivery
// configurations.
type DeliveryConfigRepository interface {
	Create(ctx context.Context, cfg *domain.DeliveryConfig) (*domain.DeliveryConfig, error)
	// FindActive returns the single active configuration for a (country,
	// service level) pair, or domain.ErrConfigNotFound.
	FindActive(ctx context.Context, country string, level domain.ServiceLevel) (*domain.DeliveryConfig, error)
	FindByID(ctx context.Context, id string) (*domain.DeliveryConfig, error)
	List(ctx context.Context) ([]*domain.DeliveryConfig, error)
	Update(ctx context.Context, cfg *domain.DeliveryConfig) error
	Deactivate(ctx context.Context, id string) error
}
