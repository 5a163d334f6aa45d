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

// DeliveryConfigService administers the admin-editable tariff overrides.
type DeliveryConfigService struct {
	configs ports.DeliveryConfigRepository
	logger  zerolog.Logger
}

func NewDeliveryConfigService(configs ports.DeliveryConfigRepository, logger zerolog.Logger) *DeliveryConfigService {
	return &DeliveryConfigService{configs: configs, logger: logger}
}

// Create validates and stores a new configuration. At most one active
// configuration may exist per (country, service level) pair.
func (s *DeliveryConfigService) Create(ctx context.Context, input ports.CreateDeliveryConfigInput) (*domain.DeliveryConfig, error) {
	if err := validateConfigInput(input.BulkDiscountPercent, input.RemoteSurchargePercent, input.MinDeliveryDays, input.MaxDeliveryDays); err != nil {
		return nil, err
	}

	country := domain.NormalizeCountry(input.Country)
	if _, err := s.configs.FindActive(ctx, country, input.ServiceLevel); err == nil {
		return nil, domain.ErrDuplicateConfig
	} else if !errors.Is(err, domain.ErrConfigNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	cfg := &domain.DeliveryConfig{
		Country:                country,
		ServiceLevel:           input.ServiceLevel,
		BaseFare:               input.BaseFare,
		FarePerKg:              input.FarePerKg,
		MinDeliveryDays:        input.MinDeliveryDays,
		MaxDeliveryDays:        input.MaxDeliveryDays,
		ExpectedDeliveryDays:   input.ExpectedDeliveryDays,
		MinimumBilling:         input.MinimumBilling,
		BulkDiscountPercent:    input.BulkDiscountPercent,
		RemoteSurchargePercent: input.RemoteSurchargePercent,
		Active:                 true,
		Description:            input.Description,
		Notes:                  input.Notes,
		ModifiedBy:             input.ModifiedBy,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	created, err := s.configs.Create(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("config_id", created.ID).
		Str("country", created.Country).
		Str("service_level", string(created.ServiceLevel)).
		Str("modified_by", created.ModifiedBy).
		Msg("delivery configuration created")
	return created, nil
}

func (s *DeliveryConfigService) List(ctx context.Context) ([]*domain.DeliveryConfig, error) {
	return s.configs.List(ctx)
}

// Update edits an existing configuration. Country and service level are
// immutable; change those by deactivating and creating a new configuration.
func (s *DeliveryConfigService) Update(ctx context.Context, id string, input ports.UpdateDeliveryConfigInput) (*domain.DeliveryConfig, error) {
	if err := validateConfigInput(input.BulkDiscountPercent, input.RemoteSurchargePercent, input.MinDeliveryDays, input.MaxDeliveryDays); err != nil {
		return nil, err
	}

	cfg, err := s.configs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg.BaseFare = input.BaseFare
	cfg.FarePerKg = input.FarePerKg
	cfg.MinDeliveryDays = input.MinDeliveryDays
	cfg.MaxDeliveryDays = input.MaxDeliveryDays
	cfg.ExpectedDeliveryDays = input.ExpectedDeliveryDays
	cfg.MinimumBilling = input.MinimumBilling
	cfg.BulkDiscountPercent = input.BulkDiscountPercent
	cfg.RemoteSurchargePercent = input.RemoteSurchargePercent
	cfg.Description = input.Description
	cfg.Notes = input.Notes
	cfg.ModifiedBy = input.ModifiedBy
	cfg.UpdatedAt = time.Now().UTC()

	if err := s.configs.Update(ctx, cfg); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("config_id", cfg.ID).
		Str("modified_by", cfg.ModifiedBy).
		Msg("delivery configuration updated")
	return cfg, nil
}

func (s *DeliveryConfigService) Deactivate(ctx context.Context, id string) error {
	return s.configs.Deactivate(ctx, id)
}

// SeedDefaults installs delivery configurations for the local market (Senegal)
// that mirror the static tariff table, so admins have editable rows to start
// from without changing any computed price. No-op when any active
// configuration already exists.
func (s *DeliveryConfigService) SeedDefaults(ctx context.Context) error {
	existing, err := s.configs.List(ctx)
	if err != nil {
		return err
	}
	for _, cfg := range existing {
		if cfg.Active {
			return nil
		}
	}

	now := time.Now().UTC()
	defaults := []*domain.DeliveryConfig{
		{ServiceLevel: domain.LevelExpress, FarePerKg: decimal.NewFromInt(3500), MinDeliveryDays: 1, MaxDeliveryDays: 2, ExpectedDeliveryDays: 1, Description: "livraison express Sénégal"},
		{ServiceLevel: domain.LevelStandard, FarePerKg: decimal.NewFromInt(2000), MinDeliveryDays: 2, MaxDeliveryDays: 4, ExpectedDeliveryDays: 3, Description: "livraison standard Sénégal"},
		{ServiceLevel: domain.LevelEconomy, FarePerKg: decimal.NewFromInt(1500), MinDeliveryDays: 4, MaxDeliveryDays: 7, ExpectedDeliveryDays: 5, Description: "livraison économique Sénégal"},
	}
	for _, cfg := range defaults {
		cfg.Country = string(domain.RegionSenegal)
		cfg.BaseFare = decimal.Zero
		cfg.MinimumBilling = minimumBillingSenegal
		cfg.BulkDiscountPercent = staticBulkDiscountPercent
		cfg.RemoteSurchargePercent = staticRemoteSurchargePercent
		cfg.Active = true
		cfg.ModifiedBy = "system"
		cfg.CreatedAt = now
		cfg.UpdatedAt = now
		if _, err := s.configs.Create(ctx, cfg); err != nil {
			return err
		}
	}
	s.logger.Info().Int("configs", len(defaults)).Msg("default delivery configurations seeded")
	return nil
}

func validateConfigInput(bulkPct, remotePct decimal.Decimal, minDays, maxDays int) error {
	if bulkPct.IsNegative() || bulkPct.GreaterThan(oneHundred) {
		return domain.ErrInvalidPercentage
	}
	if remotePct.IsNegative() || remotePct.GreaterThan(oneHundred) {
		return domain.ErrInvalidPercentage
	}
	if maxDays < minDays {
		return domain.ErrInvalidDeliveryDays
	}
	return nil
}
