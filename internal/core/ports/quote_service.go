package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// QuoteItemInput is one cart line to be priced.
type QuoteItemInput struct {
	SellerID  string
	UnitPrice decimal.Decimal
	Quantity  int
	WeightKg  decimal.Decimal // unit weight; zero = not captured
}

// QuoteInput carries everything needed to price a cart: line items plus the
// shipment destination and service level.
type QuoteInput struct {
	Items        []QuoteItemInput
	Country      string
	City         string
	ServiceLevel domain.ServiceLevel
}

// QuoteLine is the priced view of one cart line.
type QuoteLine struct {
	Breakdown domain.PriceBreakdown
	Quantity  int
	LineTotal decimal.Decimal // Breakdown.FinalPrice * Quantity
}

// QuoteResult is the full priced cart: per-line breakdowns, the shipping
// quote, and the grand total. Nothing is persisted.
type QuoteResult struct {
	Lines             []QuoteLine
	ItemsTotal        decimal.Decimal
	ShippingCost      decimal.Decimal
	Total             decimal.Decimal
	TotalWeightKg     decimal.Decimal
	EstimatedDelivery time.Time
	Region            domain.Region
	ShippingSource    string // which rate source priced the shipping leg
}

// QuoteService composes the commission and shipping engines into a single
// cart-level price quote.
type QuoteService interface {
	Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error)
}
