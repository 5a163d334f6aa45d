package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

const noCommissionDescription = "no commission"

var oneHundred = decimal.NewFromInt(100)

// CommissionService computes platform commissions and administers the tier table.
type CommissionService struct {
	tiers   ports.CommissionTierRepository
	sellers ports.SellerRepository
	logger  zerolog.Logger
}

func NewCommissionService(tiers ports.CommissionTierRepository, sellers ports.SellerRepository, logger zerolog.Logger) *CommissionService {
	return &CommissionService{tiers: tiers, sellers: sellers, logger: logger}
}

// ComputeBreakdown determines the commission for a base price. A seller with a
// positive negotiated rate bypasses tiered lookup; a configuration gap or an
// unknown seller degrades to zero commission. The call always returns a usable
// breakdown: FinalPrice = BasePrice + CommissionAmount on every path.
func (s *CommissionService) ComputeBreakdown(ctx context.Context, input ports.BreakdownInput) (*domain.PriceBreakdown, error) {
	if input.SellerID != "" {
		seller, err := s.sellers.FindByID(ctx, input.SellerID)
		switch {
		case err == nil && seller.HasCustomRate():
			return s.customBreakdown(input.BasePrice, seller), nil
		case err != nil && !errors.Is(err, domain.ErrSellerNotFound):
			return nil, err
		case errors.Is(err, domain.ErrSellerNotFound):
			s.logger.Warn().Str("seller_id", input.SellerID).Msg("seller not found, commission degraded to zero")
			return zeroBreakdown(input.BasePrice), nil
		}
		// Seller exists but has no custom rate: fall through to tiered lookup.
	}

	tiers, err := s.tiers.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, tier := range tiers {
		if tier.Contains(input.BasePrice) {
			amount := input.BasePrice.Mul(tier.Percentage).Div(oneHundred).Round(2)
			return &domain.PriceBreakdown{
				BasePrice:            input.BasePrice,
				CommissionPercentage: tier.Percentage,
				CommissionAmount:     amount,
				FinalPrice:           input.BasePrice.Add(amount),
				TierDescription:      tier.Description,
				IsCustomCommission:   false,
			}, nil
		}
	}

	s.logger.Warn().
		Str("base_price", input.BasePrice.String()).
		Msg("no active commission tier matches price, commission degraded to zero")
	return zeroBreakdown(input.BasePrice), nil
}

func (s *CommissionService) customBreakdown(basePrice decimal.Decimal, seller *domain.Seller) *domain.PriceBreakdown {
	rate := *seller.CustomCommissionRate
	amount := basePrice.Mul(rate).Div(oneHundred).Round(2)
	return &domain.PriceBreakdown{
		BasePrice:            basePrice,
		CommissionPercentage: rate,
		CommissionAmount:     amount,
		FinalPrice:           basePrice.Add(amount),
		TierDescription:      "negotiated seller rate",
		IsCustomCommission:   true,
		SellerName:           seller.ShopName,
	}
}

func zeroBreakdown(basePrice decimal.Decimal) *domain.PriceBreakdown {
	return &domain.PriceBreakdown{
		BasePrice:            basePrice,
		CommissionPercentage: decimal.Zero,
		CommissionAmount:     decimal.Zero,
		FinalPrice:           basePrice,
		TierDescription:      noCommissionDescription,
		IsCustomCommission:   false,
	}
}

// CreateTier validates and stores a new commission tier. A new tier whose
// [min, max] pair exactly matches an existing active tier is rejected as a
// conflict; overlapping-but-different brackets are not detected.
func (s *CommissionService) CreateTier(ctx context.Context, input ports.CreateTierInput) (*domain.CommissionTier, error) {
	if !input.Percentage.IsPositive() || input.Percentage.GreaterThan(oneHundred) {
		return nil, domain.ErrInvalidPercentage
	}
	if input.MaxThreshold != nil && input.MaxThreshold.LessThan(input.MinThreshold) {
		return nil, domain.ErrInvalidThresholds
	}

	candidate := domain.CommissionTier{
		MinThreshold: input.MinThreshold,
		MaxThreshold: input.MaxThreshold,
	}
	active, err := s.tiers.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range active {
		if existing.SameBracket(candidate) {
			return nil, domain.ErrDuplicateTier
		}
	}

	now := time.Now().UTC()
	tier := &domain.CommissionTier{
		MinThreshold: input.MinThreshold,
		MaxThreshold: input.MaxThreshold,
		Percentage:   input.Percentage,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.tiers.Create(ctx, tier)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("tier_id", created.ID).
		Str("percentage", created.Percentage.String()).
		Msg("commission tier created")
	return created, nil
}

func (s *CommissionService) ListTiers(ctx context.Context, activeOnly bool) ([]*domain.CommissionTier, error) {
	if activeOnly {
		return s.tiers.ListActive(ctx)
	}
	return s.tiers.List(ctx)
}

func (s *CommissionService) DeactivateTier(ctx context.Context, id string) error {
	return s.tiers.Deactivate(ctx, id)
}

func (s *CommissionService) DeleteTier(ctx context.Context, id string) error {
	return s.tiers.Delete(ctx, id)
}

// SeedDefaultTiers installs the default tier table:
//
//	< 10 000          → 10%
//	[10 000, 30 000]  →  8%
//	[30 001, 50 000]  →  6%
//	> 50 000          →  5%
//
// The call is a no-op when any active tier already exists.
func (s *CommissionService) SeedDefaultTiers(ctx context.Context) error {
	active, err := s.tiers.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return nil
	}

	ptr := func(d decimal.Decimal) *decimal.Decimal { return &d }
	now := time.Now().UTC()
	defaults := []*domain.CommissionTier{
		{MinThreshold: decimal.Zero, MaxThreshold: ptr(decimal.NewFromFloat(9999.99)), Percentage: decimal.NewFromInt(10), Description: "moins de 10 000 FCFA", DisplayOrder: 1},
		{MinThreshold: decimal.NewFromInt(10000), MaxThreshold: ptr(decimal.NewFromInt(30000)), Percentage: decimal.NewFromInt(8), Description: "10 000 à 30 000 FCFA", DisplayOrder: 2},
		{MinThreshold: decimal.NewFromInt(30001), MaxThreshold: ptr(decimal.NewFromInt(50000)), Percentage: decimal.NewFromInt(6), Description: "30 001 à 50 000 FCFA", DisplayOrder: 3},
		{MinThreshold: decimal.NewFromFloat(50000.01), MaxThreshold: nil, Percentage: decimal.NewFromInt(5), Description: "plus de 50 000 FCFA", DisplayOrder: 4},
	}
	for _, tier := range defaults {
		tier.Active = true
		tier.CreatedAt = now
		tier.UpdatedAt = now
		if _, err := s.tiers.Create(ctx, tier); err != nil {
			return err
		}
	}
	s.logger.Info().Int("tiers", len(defaults)).Msg("default commission tiers seeded")
	return nil
}
