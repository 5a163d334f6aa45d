package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusPreparing ShipmentStatus = "preparing"
	StatusShipped   ShipmentStatus = "shipped"
	StatusDelivered ShipmentStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions. There is no
// cancelled state at the shipment level; order cancellation is handled upstream.
var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusPreparing: {StatusShipped},
	StatusShipped:   {StatusDelivered},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrShipmentNotFound = errors.New("shipment not found")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Destination is the delivery address of a shipment.
type Destination struct {
	Country string `json:"country" bson:"country"` // ISO alpha-2 or a known country name
	City    string `json:"city" bson:"city"`
	Address string `json:"address" bson:"address"`
}

// ShipmentLine is one order line carried by a shipment. WeightKg is the unit
// weight of the product; zero means the weight was never captured on the product.
type ShipmentLine struct {
	ProductID string          `json:"product_id" bson:"product_id"`
	Quantity  int             `json:"quantity" bson:"quantity"`
	WeightKg  decimal.Decimal `json:"weight_kg" bson:"weight_kg"`
}

// StatusHistoryEntry records a single status transition on a shipment.
type StatusHistoryEntry struct {
	Status    ShipmentStatus `json:"status" bson:"status"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
	Notes     string         `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Shipment is the core aggregate root linking an order to its physical delivery.
type Shipment struct {
	ID               string               `json:"id" bson:"_id,omitempty"`
	TrackingNumber   string               `json:"tracking_number"`
	OrderID          string               `json:"order_id"`
	ClientID         string               `json:"client_id"`
	SellerID         string               `json:"seller_id"`
	Destination      Destination          `json:"destination"`
	Lines            []ShipmentLine       `json:"lines"`
	TotalWeightKg    decimal.Decimal      `json:"total_weight_kg"`
	Cost             decimal.Decimal      `json:"cost"`
	ServiceLevel     ServiceLevel         `json:"service_level"`
	Carrier          string               `json:"carrier"`
	Status           ShipmentStatus       `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	PromisedDelivery time.Time            `json:"promised_delivery"`
	ShippedAt        *time.Time           `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time           `json:"delivered_at,omitempty"`
	StatusHistory    []StatusHistoryEntry `json:"status_history"`
}

// IsLate reports whether the promised delivery date has passed without the
// shipment being delivered. Lateness is a read-only property, not a state.
func (s Shipment) IsLate(now time.Time) bool {
	return s.Status != StatusDelivered && s.PromisedDelivery.Before(now)
}
