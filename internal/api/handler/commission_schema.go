package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

type breakdownResponse struct {
	BasePrice            decimal.Decimal `json:"base_price"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	CommissionAmount     decimal.Decimal `json:"commission_amount"`
	FinalPrice           decimal.Decimal `json:"final_price"`
	TierDescription      string          `json:"tier_description"`
	IsCustomCommission   bool            `json:"is_custom_commission"`
	SellerName           string          `json:"seller_name,omitempty"`
}

func toBreakdownResponse(b *domain.PriceBreakdown) breakdownResponse {
	return breakdownResponse{
		BasePrice:            b.BasePrice,
		CommissionPercentage: b.CommissionPercentage,
		CommissionAmount:     b.CommissionAmount,
		FinalPrice:           b.FinalPrice,
		TierDescription:      b.TierDescription,
		IsCustomCommission:   b.IsCustomCommission,
		SellerName:           b.SellerName,
	}
}

type createTierRequest struct {
	MinThreshold float64  `json:"min_threshold" validate:"gte=0"`
	MaxThreshold *float64 `json:"max_threshold"` // null = unbounded
	Percentage   float64  `json:"percentage"    validate:"required,gt=0,lte=100"`
	Description  string   `json:"description"`
	DisplayOrder int      `json:"display_order" validate:"gte=0"`
}

type tierResponse struct {
	ID           string           `json:"id"`
	MinThreshold decimal.Decimal  `json:"min_threshold"`
	MaxThreshold *decimal.Decimal `json:"max_threshold,omitempty"`
	Percentage   decimal.Decimal  `json:"percentage"`
	Description  string           `json:"description"`
	DisplayOrder int              `json:"display_order"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func toTierResponse(t *domain.CommissionTier) tierResponse {
	return tierResponse{
		ID:           t.ID,
		MinThreshold: t.MinThreshold,
		MaxThreshold: t.MaxThreshold,
		Percentage:   t.Percentage,
		Description:  t.Description,
		DisplayOrder: t.DisplayOrder,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
