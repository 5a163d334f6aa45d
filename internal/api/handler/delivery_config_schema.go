package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

type createDeliveryConfigRequest struct {
	Country                string  `json:"country"                  validate:"required"`
	ServiceLevel           string  `json:"service_level"            validate:"required,oneof=express standard economy"`
	BaseFare               float64 `json:"base_fare"                validate:"gte=0"`
	FarePerKg              float64 `json:"fare_per_kg"              validate:"required,gt=0"`
	MinDeliveryDays        int     `json:"min_delivery_days"        validate:"required,gt=0"`
	MaxDeliveryDays        int     `json:"max_delivery_days"        validate:"required,gt=0"`
	ExpectedDeliveryDays   int     `json:"expected_delivery_days"   validate:"required,gt=0"`
	MinimumBilling         float64 `json:"minimum_billing"          validate:"gte=0"`
	BulkDiscountPercent    float64 `json:"bulk_discount_percent"    validate:"gte=0,lte=100"`
	RemoteSurchargePercent float64 `json:"remote_surcharge_percent" validate:"gte=0,lte=100"`
	Description            string  `json:"description"`
	Notes                  string  `json:"notes"`
}

type updateDeliveryConfigRequest struct {
	BaseFare               float64 `json:"base_fare"                validate:"gte=0"`
	FarePerKg              float64 `json:"fare_per_kg"              validate:"required,gt=0"`
	MinDeliveryDays        int     `json:"min_delivery_days"        validate:"required,gt=0"`
	MaxDeliveryDays        int     `json:"max_delivery_days"        validate:"required,gt=0"`
	ExpectedDeliveryDays   int     `json:"expected_delivery_days"   validate:"required,gt=0"`
	MinimumBilling         float64 `json:"minimum_billing"          validate:"gte=0"`
	BulkDiscountPercent    float64 `json:"bulk_discount_percent"    validate:"gte=0,lte=100"`
	RemoteSurchargePercent float64 `json:"remote_surcharge_percent" validate:"gte=0,lte=100"`
	Description            string  `json:"description"`
	Notes                  string  `json:"notes"`
}

type deliveryConfigResponse struct {
	ID                     string          `json:"id"`
	Country                string          `json:"country"`
	ServiceLevel           string          `json:"service_level"`
	BaseFare               decimal.Decimal `json:"base_fare"`
	FarePerKg              decimal.Decimal `json:"fare_per_kg"`
	MinDeliveryDays        int             `json:"min_delivery_days"`
	MaxDeliveryDays        int             `json:"max_delivery_days"`
	ExpectedDeliveryDays   int             `json:"expected_delivery_days"`
	MinimumBilling         decimal.Decimal `json:"minimum_billing"`
	BulkDiscountPercent    decimal.Decimal `json:"bulk_discount_percent"`
	RemoteSurchargePercent decimal.Decimal `json:"remote_surcharge_percent"`
	Active                 bool            `json:"active"`
	Description            string          `json:"description,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
	ModifiedBy             string          `json:"modified_by,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func toDeliveryConfigResponse(cfg *domain.DeliveryConfig) deliveryConfigResponse {
	return deliveryConfigResponse{
		ID:                     cfg.ID,
		Country:                cfg.Country,
		ServiceLevel:           string(cfg.ServiceLevel),
		BaseFare:               cfg.BaseFare,
		FarePerKg:              cfg.FarePerKg,
		MinDeliveryDays:        cfg.MinDeliveryDays,
		MaxDeliveryDays:        cfg.MaxDeliveryDays,
		ExpectedDeliveryDays:   cfg.ExpectedDeliveryDays,
		MinimumBilling:         cfg.MinimumBilling,
		BulkDiscountPercent:    cfg.BulkDiscountPercent,
		RemoteSurchargePercent: cfg.RemoteSurchargePercent,
		Active:                 cfg.Active,
		Description:            cfg.Description,
		Notes:                  cfg.Notes,
		ModifiedBy:             cfg.ModifiedBy,
		CreatedAt:              cfg.CreatedAt,
		UpdatedAt:              cfg.UpdatedAt,
	}
}

func toCreateConfigInput(req createDeliveryConfigRequest, modifiedBy string) ports.CreateDeliveryConfigInput {
	return ports.CreateDeliveryConfigInput{
		Country:                req.Country,
		ServiceLevel:           domain.ServiceLevel(req.ServiceLevel),
		BaseFare:               decimal.NewFromFloat(req.BaseFare),
		FarePerKg:              decimal.NewFromFloat(req.FarePerKg),
		MinDeliveryDays:        req.MinDeliveryDays,
		MaxDeliveryDays:        req.MaxDeliveryDays,
		ExpectedDeliveryDays:   req.ExpectedDeliveryDays,
		MinimumBilling:         decimal.NewFromFloat(req.MinimumBilling),
		BulkDiscountPercent:    decimal.NewFromFloat(req.BulkDiscountPercent),
		RemoteSurchargePercent: decimal.NewFromFloat(req.RemoteSurchargePercent),
		Description:            req.Description,
		Notes:                  req.Notes,
		ModifiedBy:             modifiedBy,
	}
}

func toUpdateConfigInput(req updateDeliveryConfigRequest, modifiedBy string) ports.UpdateDeliveryConfigInput {
	return ports.UpdateDeliveryConfigInput{
		BaseFare:               decimal.NewFromFloat(req.BaseFare),
		FarePerKg:              decimal.NewFromFloat(req.FarePerKg),
		MinDeliveryDays:        req.MinDeliveryDays,
		MaxDeliveryDays:        req.MaxDeliveryDays,
		ExpectedDeliveryDays:   req.ExpectedDeliveryDays,
		MinimumBilling:         decimal.NewFromFloat(req.MinimumBilling),
		BulkDiscountPercent:    decimal.NewFromFloat(req.BulkDiscountPercent),
		RemoteSurchargePercent: decimal.NewFromFloat(req.RemoteSurchargePercent),
		Description:            req.Description,
		Notes:                  req.Notes,
		ModifiedBy:             modifiedBy,
	}
}
