package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

type quoteItemRequest struct {
	SellerID  string  `json:"seller_id"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	WeightKg  float64 `json:"weight_kg"  validate:"gte=0"`
}

type quoteRequest struct {
	Items        []quoteItemRequest `json:"items"         validate:"required,min=1,dive"`
	Country      string             `json:"country"       validate:"required"`
	City         string             `json:"city"`
	ServiceLevel string             `json:"service_level" validate:"required,oneof=express standard economy"`
}

type quoteLineResponse struct {
	Breakdown breakdownResponse `json:"breakdown"`
	Quantity  int               `json:"quantity"`
	LineTotal decimal.Decimal   `json:"line_total"`
}

type quoteResponse struct {
	Lines             []quoteLineResponse `json:"lines"`
	ItemsTotal        decimal.Decimal     `json:"items_total"`
	ShippingCost      decimal.Decimal     `json:"shipping_cost"`
	Total             decimal.Decimal     `json:"total"`
	TotalWeightKg     decimal.Decimal     `json:"total_weight_kg"`
	EstimatedDelivery time.Time           `json:"estimated_delivery"`
	Region            string              `json:"region"`
}

func toQuoteResponse(r *ports.QuoteResult) quoteResponse {
	lines := make([]quoteLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, quoteLineResponse{
			Breakdown: toBreakdownResponse(&l.Breakdown),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}
	return quoteResponse{
		Lines:             lines,
		ItemsTotal:        r.ItemsTotal,
		ShippingCost:      r.ShippingCost,
		Total:             r.Total,
		TotalWeightKg:     r.TotalWeightKg,
		EstimatedDelivery: r.EstimatedDelivery.UTC(),
		Region:            string(r.Region),
	}
}
