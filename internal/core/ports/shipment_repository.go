package ports

import (
	"context"
	"time"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
// ClientID and SellerID scoping is always enforced by the service layer.
type ListShipmentsFilter struct {
	ClientID     string // non-empty = scoped to client
	SellerID     string // non-empty = scoped to seller
	Status       string // optional: filter by shipment status
	ServiceLevel string // optional: filter by service level
	DateFrom     time.Time
	DateTo       time.Time
	Page         int // 1-based
	Limit        int // capped at 100 by the service
}

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	// FindByTrackingNumber retrieves a shipment. Non-empty clientID or
	// sellerID narrows the query for access scoping.
	FindByTrackingNumber(ctx context.Context, trackingNumber, clientID, sellerID string) (*domain.Shipment, error)
	// UpdateStatus applies a status transition, appends the history entry and
	// stamps shipped/delivered dates as appropriate.
	UpdateStatus(ctx context.Context, trackingNumber string, s *domain.Shipment) error
	// List returns a page of shipments matching filter and the total count.
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, int64, error)
	// ListLate returns undelivered shipments whose promised delivery date is
	// before now.
	ListLate(ctx context.Context, now time.Time) ([]*domain.Shipment, error)
}
