package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrSellerNotFound = errors.New("seller not found")

// Seller is the subset of the seller record the pricing core reads.
// CustomCommissionRate, when present and positive, replaces tiered lookup
// entirely for that seller's transactions.
type Seller struct {
	ID                   string           `json:"id" bson:"_id,omitempty"`
	ShopName             string           `json:"shop_name"`
	Email                string           `json:"email"`
	CustomCommissionRate *decimal.Decimal `json:"custom_commission_rate,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
}

// HasCustomRate reports whether the seller negotiated a positive override rate.
func (s Seller) HasCustomRate() bool {
	return s.CustomCommissionRate != nil && s.CustomCommissionRate.IsPositive()
}
