package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

// QuoteService composes the commission and shipping engines into a cart-level
// price quote. It holds no state and persists nothing.
type QuoteService struct {
	commission ports.CommissionService
	shipping   ports.ShippingService
	logger     zerolog.Logger
}

func NewQuoteService(commission ports.CommissionService, shipping ports.ShippingService, logger zerolog.Logger) *QuoteService {
	return &QuoteService{commission: commission, shipping: shipping, logger: logger}
}

// Quote prices every cart line through the commission engine, computes the
// shipment weight and shipping cost, and sums the results.
func (s *QuoteService) Quote(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
	result := &ports.QuoteResult{
		ItemsTotal:    decimal.Zero,
		TotalWeightKg: decimal.Zero,
	}

	for _, item := range input.Items {
		breakdown, err := s.commission.ComputeBreakdown(ctx, ports.BreakdownInput{
			BasePrice: item.UnitPrice,
			SellerID:  item.SellerID,
		})
		if err != nil {
			return nil, err
		}

		qty := decimal.NewFromInt(int64(item.Quantity))
		lineTotal := breakdown.FinalPrice.Mul(qty)

		weight := item.WeightKg
		if weight.IsZero() {
			weight = defaultLineWeightKg
		}

		result.Lines = append(result.Lines, ports.QuoteLine{
			Breakdown: *breakdown,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		result.ItemsTotal = result.ItemsTotal.Add(lineTotal)
		result.TotalWeightKg = result.TotalWeightKg.Add(weight.Mul(qty))
	}

	shipping, err := s.shipping.Quote(ctx, result.TotalWeightKg, input.Country, input.City, input.ServiceLevel)
	if err != nil {
		return nil, err
	}

	result.ShippingCost = shipping.Cost
	result.EstimatedDelivery = shipping.EstimatedDelivery
	result.Region = shipping.Region
	result.ShippingSource = shipping.RateSource
	result.Total = result.ItemsTotal.Add(shipping.Cost)

	s.logger.Debug().
		Int("lines", len(result.Lines)).
		Str("total", result.Total.String()).
		Str("region", string(result.Region)).
		Msg("quote computed")
	return result, nil
}
