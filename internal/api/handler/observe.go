package handler

import (
	"github.com/terangamarket/marketplace-api/internal/api/metrics"
	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// observeCommission records a commission computation on the Prometheus
// counters. A zero percentage outside the custom-rate path means no bracket
// matched and the engine fell back to zero commission.
func observeCommission(b *domain.PriceBreakdown) {
	switch {
	case b.IsCustomCommission:
		metrics.CommissionComputedTotal.WithLabelValues("custom").Inc()
	case b.CommissionPercentage.IsZero():
		metrics.CommissionFallbackTotal.WithLabelValues("tier_gap").Inc()
	default:
		metrics.CommissionComputedTotal.WithLabelValues("tier").Inc()
	}
}
