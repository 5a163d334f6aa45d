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

// ShippingService computes shipping costs and delivery estimates. A persisted
// delivery configuration for the destination takes precedence over the static
// tariff table; the GENERAL configuration sits between the two.
type ShippingService struct {
	configs ports.DeliveryConfigRepository
	logger  zerolog.Logger
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewShippingService(configs ports.DeliveryConfigRepository, logger zerolog.Logger) *ShippingService {
	return &ShippingService{configs: configs, logger: logger, now: time.Now}
}

// Cost computes the shipping price for a package. See Quote for the rules.
func (s *ShippingService) Cost(ctx context.Context, weightKg decimal.Decimal, country, city string, level domain.ServiceLevel) (decimal.Decimal, error) {
	quote, err := s.Quote(ctx, weightKg, country, city, level)
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Cost, nil
}

// Quote computes shipping cost and estimated delivery date in one pass.
//
// Resolution order: active configuration for (country, level), then the
// GENERAL configuration, then the static regional tariff table. An
// unresolvable country lands in the rest-of-world bucket, never an error.
func (s *ShippingService) Quote(ctx context.Context, weightKg decimal.Decimal, country, city string, level domain.ServiceLevel) (*ports.ShippingQuote, error) {
	region := domain.ResolveRegion(country)

	cfg, source, err := s.resolveConfig(ctx, domain.NormalizeCountry(country), level)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return s.quoteFromConfig(cfg, source, region, weightKg, city), nil
	}
	return s.quoteFromTable(region, weightKg, city, level), nil
}

// resolveConfig returns the governing delivery configuration, or nil when the
// static table applies. Repository errors other than not-found are surfaced.
func (s *ShippingService) resolveConfig(ctx context.Context, country string, level domain.ServiceLevel) (*domain.DeliveryConfig, string, error) {
	cfg, err := s.configs.FindActive(ctx, country, level)
	if err == nil {
		return cfg, ports.RateSourceConfig, nil
	}
	if !errors.Is(err, domain.ErrConfigNotFound) {
		return nil, "", err
	}

	cfg, err = s.configs.FindActive(ctx, domain.CountryGeneral, level)
	if err == nil {
		return cfg, ports.RateSourceGeneral, nil
	}
	if !errors.Is(err, domain.ErrConfigNotFound) {
		return nil, "", err
	}
	return nil, ports.RateSourceTable, nil
}

func (s *ShippingService) quoteFromConfig(cfg *domain.DeliveryConfig, source string, region domain.Region, weightKg decimal.Decimal, city string) *ports.ShippingQuote {
	cost := cfg.BaseFare.Add(weightKg.Mul(cfg.FarePerKg))

	quote := &ports.ShippingQuote{
		Region:     region,
		RateSource: source,
	}
	if weightKg.GreaterThan(decimal.NewFromInt(bulkDiscountThresholdKg)) && cfg.BulkDiscountPercent.IsPositive() {
		cost = cost.Sub(cost.Mul(cfg.BulkDiscountPercent).Div(oneHundred))
		quote.BulkDiscount = true
	}
	if region == domain.RegionSenegal && domain.IsRemoteCity(city) && cfg.RemoteSurchargePercent.IsPositive() {
		cost = cost.Add(cost.Mul(cfg.RemoteSurchargePercent).Div(oneHundred))
		quote.RemoteSurcharge = true
	}
	if cost.LessThan(cfg.MinimumBilling) {
		cost = cfg.MinimumBilling
		quote.MinimumApplied = true
	}

	quote.Cost = cost
	quote.EstimatedDelivery = s.estimatedDate(cfg.ExpectedDeliveryDays)
	return quote
}

func (s *ShippingService) quoteFromTable(region domain.Region, weightKg decimal.Decimal, city string, level domain.ServiceLevel) *ports.ShippingQuote {
	baseCost := weightKg.Mul(ratePerKg(region, level))
	cost := baseCost

	quote := &ports.ShippingQuote{
		Region:     region,
		RateSource: ports.RateSourceTable,
	}
	// Both adjustments are computed against the unadjusted base cost.
	if weightKg.GreaterThan(decimal.NewFromInt(bulkDiscountThresholdKg)) {
		cost = cost.Sub(baseCost.Mul(staticBulkDiscountPercent).Div(oneHundred))
		quote.BulkDiscount = true
	}
	if region == domain.RegionSenegal && domain.IsRemoteCity(city) {
		cost = cost.Add(baseCost.Mul(staticRemoteSurchargePercent).Div(oneHundred))
		quote.RemoteSurcharge = true
	}

	minimum := minimumBillingInternational
	if region == domain.RegionSenegal {
		minimum = minimumBillingSenegal
	}
	if cost.LessThan(minimum) {
		cost = minimum
		quote.MinimumApplied = true
	}

	quote.Cost = cost
	quote.EstimatedDelivery = s.estimatedDate(deliveryDays(region, level))
	return quote
}

// EstimatedDeliveryDate returns today plus the applicable delivery days,
// honouring the same configuration precedence as Quote.
func (s *ShippingService) EstimatedDeliveryDate(ctx context.Context, country string, level domain.ServiceLevel) (time.Time, error) {
	cfg, _, err := s.resolveConfig(ctx, domain.NormalizeCountry(country), level)
	if err != nil {
		return time.Time{}, err
	}
	if cfg != nil {
		return s.estimatedDate(cfg.ExpectedDeliveryDays), nil
	}
	return s.estimatedDate(deliveryDays(domain.ResolveRegion(country), level)), nil
}

func (s *ShippingService) estimatedDate(days int) time.Time {
	return s.now().UTC().AddDate(0, 0, days)
}
