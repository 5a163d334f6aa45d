package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceLevel is the shipping speed class.
type ServiceLevel string

const (
	LevelExpress  ServiceLevel = "express"
	LevelStandard ServiceLevel = "standard"
	LevelEconomy  ServiceLevel = "economy"
)

// CountryGeneral is the fallback key for delivery configurations that apply
// to any country without a specific configuration of its own.
const CountryGeneral = "GENERAL"

var ErrConfigNotFound = errors.New("delivery configuration not found")
var ErrDuplicateConfig = errors.New("an active delivery configuration already exists for this country and service level")
var ErrInvalidDeliveryDays = errors.New("max delivery days must be greater than or equal to min delivery days")

// DeliveryConfig is an admin-editable override of the static tariff table for
// one (country, service level) pair. At most one active configuration may
// exist per pair.
type DeliveryConfig struct {
	ID                      string          `json:"id" bson:"_id,omitempty"`
	Country                 string          `json:"country"` // ISO alpha-2 code or CountryGeneral
	ServiceLevel            ServiceLevel    `json:"service_level"`
	BaseFare                decimal.Decimal `json:"base_fare"`
	FarePerKg               decimal.Decimal `json:"fare_per_kg"`
	MinDeliveryDays         int             `json:"min_delivery_days"`
	MaxDeliveryDays         int             `json:"max_delivery_days"`
	ExpectedDeliveryDays    int             `json:"expected_delivery_days"`
	MinimumBilling          decimal.Decimal `json:"minimum_billing"`
	BulkDiscountPercent     decimal.Decimal `json:"bulk_discount_percent"`
	RemoteSurchargePercent  decimal.Decimal `json:"remote_surcharge_percent"`
	Active                  bool            `json:"active"`
	Description             string          `json:"description,omitempty"`
	Notes                   string          `json:"notes,omitempty"`
	ModifiedBy              string          `json:"modified_by,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}
