package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrTierNotFound = errors.New("commission tier not found")
var ErrDuplicateTier = errors.New("commission tier already exists")
var ErrInvalidPercentage = errors.New("percentage must be greater than 0 and at most 100")
var ErrInvalidThresholds = errors.New("max threshold must be greater than or equal to min threshold")

// CommissionTier is one price bracket with its commission percentage.
// MaxThreshold == nil means the bracket is unbounded above.
type CommissionTier struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	MinThreshold decimal.Decimal  `json:"min_threshold"`
	MaxThreshold *decimal.Decimal `json:"max_threshold,omitempty"`
	Percentage   decimal.Decimal  `json:"percentage"`
	Description  string           `json:"description"`
	DisplayOrder int              `json:"display_order"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Contains reports whether price falls inside the tier's [min, max] bracket.
// A nil MaxThreshold is treated as +infinity.
func (t CommissionTier) Contains(price decimal.Decimal) bool {
	if price.LessThan(t.MinThreshold) {
		return false
	}
	if t.MaxThreshold == nil {
		return true
	}
	return price.LessThanOrEqual(*t.MaxThreshold)
}

// SameBracket reports whether other covers exactly the same [min, max] pair.
// The duplicate check is exact-match only; overlapping-but-different brackets
// are allowed (matching the historical behaviour of the tier admin).
func (t CommissionTier) SameBracket(other CommissionTier) bool {
	if !t.MinThreshold.Equal(other.MinThreshold) {
		return false
	}
	if (t.MaxThreshold == nil) != (other.MaxThreshold == nil) {
		return false
	}
	if t.MaxThreshold == nil {
		return true
	}
	return t.MaxThreshold.Equal(*other.MaxThreshold)
}

// PriceBreakdown is the result of a commission computation. It is never
// persisted; a fresh value is built for every call.
type PriceBreakdown struct {
	BasePrice            decimal.Decimal `json:"base_price"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	CommissionAmount     decimal.Decimal `json:"commission_amount"`
	FinalPrice           decimal.Decimal `json:"final_price"`
	TierDescription      string          `json:"tier_description"`
	IsCustomCommission   bool            `json:"is_custom_commission"`
	SellerName           string          `json:"seller_name,omitempty"`
}
