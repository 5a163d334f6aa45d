package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

func validConfigInput() ports.CreateDeliveryConfigInput {
	return ports.CreateDeliveryConfigInput{
		Country:              "FR",
		ServiceLevel:         domain.LevelStandard,
		BaseFare:             decimal.NewFromInt(1000),
		FarePerKg:            decimal.NewFromInt(6000),
		MinDeliveryDays:      5,
		MaxDeliveryDays:      9,
		ExpectedDeliveryDays: 7,
		MinimumBilling:       decimal.NewFromInt(5000),
		ModifiedBy:           "admin_1",
	}
}

func TestDeliveryConfigCreate_Success(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	created, err := svc.Create(context.Background(), validConfigInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Active {
		t.Fatalf("new configuration should be active")
	}
	if created.Country != "FR" {
		t.Fatalf("expected normalized country FR, got %s", created.Country)
	}
	if created.ModifiedBy != "admin_1" {
		t.Fatalf("expected audit trail, got %q", created.ModifiedBy)
	}
}

func TestDeliveryConfigCreate_NormalizesCountryName(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	input := validConfigInput()
	input.Country = "france"
	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Country != "FR" {
		t.Fatalf("expected FR, got %s", created.Country)
	}
}

func TestDeliveryConfigCreate_RejectsDuplicatePair(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), validConfigInput()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), validConfigInput())
	if !errors.Is(err, domain.ErrDuplicateConfig) {
		t.Fatalf("expected ErrDuplicateConfig, got %v", err)
	}

	// A different service level for the same country is fine.
	input := validConfigInput()
	input.ServiceLevel = domain.LevelExpress
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("different level: %v", err)
	}
}

func TestDeliveryConfigCreate_Validation(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	badPct := validConfigInput()
	badPct.BulkDiscountPercent = decimal.NewFromInt(150)
	if _, err := svc.Create(context.Background(), badPct); !errors.Is(err, domain.ErrInvalidPercentage) {
		t.Fatalf("expected ErrInvalidPercentage, got %v", err)
	}

	negPct := validConfigInput()
	negPct.RemoteSurchargePercent = decimal.NewFromInt(-1)
	if _, err := svc.Create(context.Background(), negPct); !errors.Is(err, domain.ErrInvalidPercentage) {
		t.Fatalf("expected ErrInvalidPercentage, got %v", err)
	}

	badDays := validConfigInput()
	badDays.MinDeliveryDays = 10
	badDays.MaxDeliveryDays = 5
	if _, err := svc.Create(context.Background(), badDays); !errors.Is(err, domain.ErrInvalidDeliveryDays) {
		t.Fatalf("expected ErrInvalidDeliveryDays, got %v", err)
	}
}

func TestDeliveryConfigUpdate_KeepsCountryAndLevel(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	created, err := svc.Create(context.Background(), validConfigInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateDeliveryConfigInput{
		BaseFare:             decimal.NewFromInt(2000),
		FarePerKg:            decimal.NewFromInt(5500),
		MinDeliveryDays:      4,
		MaxDeliveryDays:      8,
		ExpectedDeliveryDays: 6,
		MinimumBilling:       decimal.NewFromInt(4000),
		ModifiedBy:           "admin_2",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Country != "FR" || updated.ServiceLevel != domain.LevelStandard {
		t.Fatalf("country and level must be immutable, got %s/%s", updated.Country, updated.ServiceLevel)
	}
	if !updated.BaseFare.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("base fare not updated")
	}
	if updated.ModifiedBy != "admin_2" {
		t.Fatalf("expected updated audit trail, got %q", updated.ModifiedBy)
	}
}

func TestDeliveryConfigUpdate_NotFound(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	_, err := svc.Update(context.Background(), "missing", ports.UpdateDeliveryConfigInput{
		MaxDeliveryDays: 1,
	})
	if !errors.Is(err, domain.ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestDeliveryConfigDeactivate_RemovesFromPricing(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	created, err := svc.Create(context.Background(), validConfigInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := repo.FindActive(context.Background(), "FR", domain.LevelStandard); !errors.Is(err, domain.ErrConfigNotFound) {
		t.Fatalf("deactivated configuration still active")
	}

	// The pair is free again for a replacement.
	if _, err := svc.Create(context.Background(), validConfigInput()); err != nil {
		t.Fatalf("recreate after deactivate: %v", err)
	}
}

func TestSeedDefaults_InstallsSenegalBaseline(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(repo.configs) != 3 {
		t.Fatalf("expected 3 seeded configurations, got %d", len(repo.configs))
	}
	for _, cfg := range repo.configs {
		if cfg.Country != "SN" {
			t.Fatalf("expected SN baseline, got %s", cfg.Country)
		}
		if !cfg.Active {
			t.Fatalf("seeded configuration should be active")
		}
		if cfg.ModifiedBy != "system" {
			t.Fatalf("expected system audit entry, got %q", cfg.ModifiedBy)
		}
	}

	std, err := repo.FindActive(context.Background(), "SN", domain.LevelStandard)
	if err != nil {
		t.Fatalf("find standard: %v", err)
	}
	if !std.FarePerKg.Equal(decimal.NewFromInt(2000)) || !std.BaseFare.IsZero() {
		t.Fatalf("standard baseline does not mirror table: %s + %s/kg", std.BaseFare, std.FarePerKg)
	}
}

func TestSeedDefaults_PricingMatchesTableExceptBulkRemote(t *testing.T) {
	repo := &stubConfigRepo{}
	if err := NewDeliveryConfigService(repo, discardLogger).SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	shipping := NewShippingService(repo, discardLogger)
	shipping.now = func() time.Time { return referenceNow }

	// Plain quotes price exactly as the static table, just sourced from the
	// seeded rows.
	quote, err := shipping.Quote(context.Background(), dec("2"), "SN", "Dakar", domain.LevelStandard)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if !quote.Cost.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected 4000, got %s", quote.Cost)
	}
	if quote.RateSource != ports.RateSourceConfig {
		t.Fatalf("expected config rate source, got %s", quote.RateSource)
	}

	// The one divergence: with both adjustments in play, configured rows
	// compound them (10800 * 1.15 = 12420) while the table applies both
	// against the unadjusted base (12600).
	quote, err = shipping.Quote(context.Background(), dec("6"), "SN", "Tambacounda", domain.LevelStandard)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if !quote.Cost.Equal(decimal.NewFromInt(12420)) {
		t.Fatalf("expected 12420, got %s", quote.Cost)
	}
	if !quote.BulkDiscount || !quote.RemoteSurcharge {
		t.Fatalf("expected both adjustments to apply")
	}
}

func TestSeedDefaults_NoOpWhenActiveConfigExists(t *testing.T) {
	repo := &stubConfigRepo{}
	svc := NewDeliveryConfigService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), validConfigInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(repo.configs) != 1 {
		t.Fatalf("expected seeding to skip, got %d configurations", len(repo.configs))
	}
}
