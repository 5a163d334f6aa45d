package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// Rate sources, reported on quotes for operational visibility.
const (
	RateSourceConfig  = "config"  // country-specific delivery configuration
	RateSourceGeneral = "general" // GENERAL fallback configuration
	RateSourceTable   = "table"   // static regional tariff table
)

// ShippingQuote is the result of a shipping cost computation.
type ShippingQuote struct {
	Cost              decimal.Decimal
	Region            domain.Region
	EstimatedDelivery time.Time
	RateSource        string
	BulkDiscount      bool
	RemoteSurcharge   bool
	MinimumApplied    bool
}

// ShippingService is the shipping cost engine.
type ShippingService interface {
	// Cost computes the shipping price for a package. An unresolvable country
	// falls back to rest-of-world rates, never an error.
	Cost(ctx context.Context, weightKg decimal.Decimal, country, city string, level domain.ServiceLevel) (decimal.Decimal, error)
	// EstimatedDeliveryDate returns today plus the applicable delivery days.
	EstimatedDeliveryDate(ctx context.Context, country string, level domain.ServiceLevel) (time.Time, error)
	// Quote computes cost and estimated delivery in one pass, with detail on
	// which adjustments applied.
	Quote(ctx context.Context, weightKg decimal.Decimal, country, city string, level domain.ServiceLevel) (*ShippingQuote, error)
}

// CreateDeliveryConfigInput carries the fields for a new delivery configuration.
type CreateDeliveryConfigInput struct {
	Country                string
	ServiceLevel           domain.ServiceLevel
	BaseFare               decimal.Decimal
	FarePerKg              decimal.Decimal
	MinDeliveryDays        int
	MaxDeliveryDays        int
	ExpectedDeliveryDays   int
	MinimumBilling         decimal.Decimal
	BulkDiscountPercent    decimal.Decimal
	RemoteSurchargePercent decimal.Decimal
	Description            string
	Notes                  string
	ModifiedBy             string
}

// UpdateDeliveryConfigInput carries the editable fields of an existing
// configuration. The (country, service level) pair is immutable.
type UpdateDeliveryConfigInput struct {
	BaseFare               decimal.Decimal
	FarePerKg              decimal.Decimal
	MinDeliveryDays        int
	MaxDeliveryDays        int
	ExpectedDeliveryDays   int
	MinimumBilling         decimal.Decimal
	BulkDiscountPercent    decimal.Decimal
	RemoteSurchargePercent decimal.Decimal
	Description            string
	Notes                  string
	ModifiedBy             string
}

// DeliveryConfigService defines administration of delivery configurations.
type DeliveryConfigService interface {
	Create(ctx context.Context, input CreateDeliveryConfigInput) (*domain.DeliveryConfig, error)
	List(ctx context.Context) ([]*domain.DeliveryConfig, error)
	Update(ctx context.Context, id string, input UpdateDeliveryConfigInput) (*domain.DeliveryConfig, error)
	Deactivate(ctx context.Context, id string) error

	// SeedDefaults installs the Senegal baseline configurations for every
	// service level. It is a no-op when any active configuration already exists.
	SeedDefaults(ctx context.Context) error
}
