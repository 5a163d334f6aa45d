package service

import (
	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// Static business rules for the shipping engine. These apply whenever no
// delivery configuration (specific or GENERAL) is active for the destination.

const bulkDiscountThresholdKg = 5

var (
	staticBulkDiscountPercent    = decimal.NewFromInt(10)
	staticRemoteSurchargePercent = decimal.NewFromInt(15)
	minimumBillingSenegal        = decimal.NewFromInt(1000)
	minimumBillingInternational  = decimal.NewFromInt(5000)

	// defaultLineWeightKg is assumed for order lines whose product has no
	// recorded weight.
	defaultLineWeightKg = decimal.NewFromFloat(0.5)
)

// staticRates holds the per-kilogram tariff (FCFA) for each region bucket and
// service level. A level absent from a bucket falls back to standard within
// the same bucket.
var staticRates = map[domain.Region]map[domain.ServiceLevel]decimal.Decimal{
	domain.RegionSenegal: {
		domain.LevelExpress:  decimal.NewFromInt(3500),
		domain.LevelStandard: decimal.NewFromInt(2000),
		domain.LevelEconomy:  decimal.NewFromInt(1500),
	},
	domain.RegionFrance: {
		domain.LevelExpress:  decimal.NewFromInt(9000),
		domain.LevelStandard: decimal.NewFromInt(6500),
		domain.LevelEconomy:  decimal.NewFromInt(5000),
	},
	domain.RegionUSA: {
		domain.LevelExpress:  decimal.NewFromInt(12000),
		domain.LevelStandard: decimal.NewFromInt(8500),
		domain.LevelEconomy:  decimal.NewFromInt(7000),
	},
	domain.RegionCanada: {
		domain.LevelExpress:  decimal.NewFromInt(12000),
		domain.LevelStandard: decimal.NewFromInt(8500),
		domain.LevelEconomy:  decimal.NewFromInt(7000),
	},
	domain.RegionAfrica: {
		domain.LevelExpress:  decimal.NewFromInt(6000),
		domain.LevelStandard: decimal.NewFromInt(4500),
		domain.LevelEconomy:  decimal.NewFromInt(3500),
	},
	domain.RegionEurope: {
		domain.LevelExpress:  decimal.NewFromInt(9500),
		domain.LevelStandard: decimal.NewFromInt(7000),
		domain.LevelEconomy:  decimal.NewFromInt(5500),
	},
	// Rest of world ships express or standard only; economy requests fall
	// back to the standard rate.
	domain.RegionWorld: {
		domain.LevelExpress:  decimal.NewFromInt(13000),
		domain.LevelStandard: decimal.NewFromInt(9500),
	},
}

// ratePerKg resolves the per-kilogram rate for a region and service level,
// falling back to standard when the requested level is absent.
func ratePerKg(region domain.Region, level domain.ServiceLevel) decimal.Decimal {
	bucket, ok := staticRates[region]
	if !ok {
		bucket = staticRates[domain.RegionWorld]
	}
	if rate, ok := bucket[level]; ok {
		return rate
	}
	return bucket[domain.LevelStandard]
}

// deliveryDayBuckets groups regions for delivery time estimation.
type deliveryDayBucket int

const (
	daysSenegal deliveryDayBucket = iota
	daysAfrica
	daysInternational
)

var staticDeliveryDays = map[deliveryDayBucket]map[domain.ServiceLevel]int{
	daysSenegal:       {domain.LevelExpress: 1, domain.LevelStandard: 3, domain.LevelEconomy: 5},
	daysAfrica:        {domain.LevelExpress: 5, domain.LevelStandard: 10, domain.LevelEconomy: 15},
	daysInternational: {domain.LevelExpress: 7, domain.LevelStandard: 14, domain.LevelEconomy: 21},
}

// deliveryDays returns the static delivery estimate in days for a region and
// service level.
func deliveryDays(region domain.Region, level domain.ServiceLevel) int {
	var bucket deliveryDayBucket
	switch region {
	case domain.RegionSenegal:
		bucket = daysSenegal
	case domain.RegionAfrica:
		bucket = daysAfrica
	default:
		bucket = daysInternational
	}
	days, ok := staticDeliveryDays[bucket][level]
	if !ok {
		days = staticDeliveryDays[bucket][domain.LevelStandard]
	}
	return days
}
