// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace pricing API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// via promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Commission engine ─────────────────────────────────────────────────────────

// CommissionComputedTotal counts successful commission computations.
// Label:
//   - source: "tier" (bracket lookup) or "custom" (negotiated seller rate)
var CommissionComputedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commission_computed_total",
		Help:      "Total number of commission computations, by rate source.",
	},
	[]string{"source"},
)

// CommissionFallbackTotal counts computations that degraded to zero commission.
// Label:
//   - reason: "tier_gap" (no bracket matched the price)
var CommissionFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commission_fallback_total",
		Help:      "Total number of commission computations that fell back to zero commission.",
	},
	[]string{"reason"},
)

// ── Shipping engine ───────────────────────────────────────────────────────────

// ShippingQuotesTotal counts shipping cost computations.
// Labels:
//   - region: resolved tariff bucket (e.g. "SN", "AFRICA", "WORLD")
//   - rate_source: "config", "general" or "table"
var ShippingQuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipping_quotes_total",
		Help:      "Total number of shipping cost computations, by region and rate source.",
	},
	[]string{"region", "rate_source"},
)

// ── Shipments ─────────────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - service_level: "express", "standard" or "economy"
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by service level.",
	},
	[]string{"service_level"},
)

// ── Carrier events ────────────────────────────────────────────────────────────

// EventsProcessedTotal counts carrier events that completed processing.
// Labels:
//   - status: the new shipment status applied by the event
//   - source: the event source reported by the carrier
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of carrier tracking events successfully processed.",
	},
	[]string{"status", "source"},
)

// EventsErrorsTotal counts carrier events that failed processing.
// Label:
//   - reason: short failure description (e.g. "invalid_transition", "shipment_not_found")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of carrier tracking events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures how long a single event takes to process.
// Label:
//   - status: the resulting shipment status, or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)
