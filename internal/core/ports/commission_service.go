package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// BreakdownInput carries the parameters of a single commission computation.
// SellerID is optional; when the seller has a positive negotiated rate it
// replaces tiered lookup entirely.
type BreakdownInput struct {
	BasePrice decimal.Decimal
	SellerID  string
}

// CreateTierInput carries the fields for a new commission tier.
type CreateTierInput struct {
	MinThreshold decimal.Decimal
	MaxThreshold *decimal.Decimal // nil = unbounded
	Percentage   decimal.Decimal
	Description  string
	DisplayOrder int
}

// CommissionService defines the commission engine and tier administration.
type CommissionService interface {
	// ComputeBreakdown always returns a usable breakdown: a configuration gap
	// or unknown seller degrades to zero commission, never an error.
	ComputeBreakdown(ctx context.Context, input BreakdownInput) (*domain.PriceBreakdown, error)

	CreateTier(ctx context.Context, input CreateTierInput) (*domain.CommissionTier, error)
	ListTiers(ctx context.Context, activeOnly bool) ([]*domain.CommissionTier, error)
	DeactivateTier(ctx context.Context, id string) error
	DeleteTier(ctx context.Context, id string) error

	// SeedDefaultTiers installs the default tier table. It is a no-op when any
	// active tier already exists.
	SeedDefaultTiers(ctx context.Context) error
}
