package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
)

// ShipmentLineInput is one order line to ship. WeightKg of zero falls back to
// the default per-item weight.
type ShipmentLineInput struct {
	ProductID string
	Quantity  int
	WeightKg  decimal.Decimal
}

// CreateShipmentInput carries all data needed to create a shipment for an order.
type CreateShipmentInput struct {
	OrderID      string
	ClientID     string
	SellerID     string
	Country      string
	City         string
	Address      string
	Lines        []ShipmentLineInput
	ServiceLevel domain.ServiceLevel
	Carrier      string
}

// ShipmentResult is returned by the service after creating a shipment.
type ShipmentResult struct {
	TrackingNumber   string
	Status           string
	TotalWeightKg    decimal.Decimal
	Cost             decimal.Decimal
	CreatedAt        time.Time
	PromisedDelivery time.Time
}

// GetShipmentInput carries the parameters needed to retrieve a single shipment.
// Role plus ClientID/SellerID enforce scoping: clients and sellers only see
// their own shipments.
type GetShipmentInput struct {
	TrackingNumber string
	Role           string
	ClientID       string
	SellerID       string
}

// UpdateStatusInput carries an explicit caller-driven status transition.
type UpdateStatusInput struct {
	TrackingNumber string
	NextStatus     domain.ShipmentStatus
	Notes          string
}

// ListShipmentsInput carries all parameters for the list endpoint.
type ListShipmentsInput struct {
	Role         string
	ClientID     string
	SellerID     string
	Status       string
	ServiceLevel string
	DateFrom     time.Time
	DateTo       time.Time
	Page         int
	Limit        int
}

// ListShipmentsResult is returned by ListShipments.
type ListShipmentsResult struct {
	Items      []*domain.Shipment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ShipmentService defines use-case operations for shipments.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*ShipmentResult, error)
	GetShipment(ctx context.Context, input GetShipmentInput) (*domain.Shipment, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Shipment, error)
	ListShipments(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
	// ListLate returns undelivered shipments past their promised date.
	ListLate(ctx context.Context) ([]*domain.Shipment, error)
}
