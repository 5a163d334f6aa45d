package ports

import (
	"context"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// CommissionTierRepository defines persistence operations for commission tiers.
type CommissionTierRepository interface {
	Create(ctx context.Context, tier *domain.CommissionTier) (*domain.CommissionTier, error)
	// ListActive returns active tiers ordered by ascending display order.
	ListActive(ctx context.Context) ([]*domain.CommissionTier, error)
	// List returns all tiers, active or not, ordered by ascending display order.
	List(ctx context.Context) ([]*domain.CommissionTier, error)
	FindByID(ctx context.Context, id string) (*domain.CommissionTier, error)
	// Deactivate soft-disables a tier. Tiers are never hard-deleted in the
	// normal flow; Delete exists as a separate admin operation.
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// SellerRepository exposes the seller lookups the pricing core needs.
type SellerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Seller, error)
}
