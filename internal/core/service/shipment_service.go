package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

// ShipmentService manages the delivery side of an order: weight computation,
// cost and promised-date via the shipping engine, tracking numbers, and the
// status state machine.
type ShipmentService struct {
	repo     ports.ShipmentRepository
	shipping ports.ShippingService
	logger   zerolog.Logger
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewShipmentService(repo ports.ShipmentRepository, shipping ports.ShippingService, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, shipping: shipping, logger: logger, now: time.Now}
}

// CreateShipment builds a shipment for an order: total weight is the sum of
// line weights times quantities (0.5 kg per item when no weight is recorded),
// cost and promised delivery date come from the shipping engine.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*ports.ShipmentResult, error) {
	totalWeight := decimal.Zero
	lines := make([]domain.ShipmentLine, 0, len(input.Lines))
	for _, l := range input.Lines {
		weight := l.WeightKg
		if weight.IsZero() {
			weight = defaultLineWeightKg
		}
		totalWeight = totalWeight.Add(weight.Mul(decimal.NewFromInt(int64(l.Quantity))))
		lines = append(lines, domain.ShipmentLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			WeightKg:  weight,
		})
	}

	quote, err := s.shipping.Quote(ctx, totalWeight, input.Country, input.City, input.ServiceLevel)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	shipment := &domain.Shipment{
		TrackingNumber: generateTrackingNumber(now),
		OrderID:        input.OrderID,
		ClientID:       input.ClientID,
		SellerID:       input.SellerID,
		Destination: domain.Destination{
			Country: domain.NormalizeCountry(input.Country),
			City:    input.City,
			Address: input.Address,
		},
		Lines:            lines,
		TotalWeightKg:    totalWeight,
		Cost:             quote.Cost,
		ServiceLevel:     input.ServiceLevel,
		Carrier:          input.Carrier,
		Status:           domain.StatusPreparing,
		CreatedAt:        now,
		PromisedDelivery: quote.EstimatedDelivery,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusPreparing, Timestamp: now},
		},
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Str("order_id", input.OrderID).Msg("failed to create shipment")
		return nil, err
	}

	s.logger.Info().
		Str("tracking_number", shipment.TrackingNumber).
		Str("order_id", input.OrderID).
		Str("cost", shipment.Cost.String()).
		Msg("shipment created")

	return &ports.ShipmentResult{
		TrackingNumber:   shipment.TrackingNumber,
		Status:           string(shipment.Status),
		TotalWeightKg:    shipment.TotalWeightKg,
		Cost:             shipment.Cost,
		CreatedAt:        shipment.CreatedAt,
		PromisedDelivery: shipment.PromisedDelivery,
	}, nil
}

// GetShipment retrieves a shipment, scoped to the caller: clients and sellers
// only see their own shipments, admins see everything.
func (s *ShipmentService) GetShipment(ctx context.Context, input ports.GetShipmentInput) (*domain.Shipment, error) {
	clientID, sellerID := scopeFor(input.Role, input.ClientID, input.SellerID)
	return s.repo.FindByTrackingNumber(ctx, input.TrackingNumber, clientID, sellerID)
}

// UpdateStatus applies an explicit caller-driven transition. Shipping stamps
// ShippedAt; delivering stamps DeliveredAt. Invalid transitions are rejected.
func (s *ShipmentService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByTrackingNumber(ctx, input.TrackingNumber, "", "")
	if err != nil {
		return nil, err
	}

	if !shipment.Status.CanTransitionTo(input.NextStatus) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, shipment.Status, input.NextStatus)
	}

	now := s.now().UTC()
	shipment.Status = input.NextStatus
	switch input.NextStatus {
	case domain.StatusShipped:
		shipment.ShippedAt = &now
	case domain.StatusDelivered:
		shipment.DeliveredAt = &now
	}
	shipment.StatusHistory = append(shipment.StatusHistory, domain.StatusHistoryEntry{
		Status:    input.NextStatus,
		Timestamp: now,
		Notes:     input.Notes,
	})

	if err := s.repo.UpdateStatus(ctx, input.TrackingNumber, shipment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("tracking_number", input.TrackingNumber).
		Str("status", string(input.NextStatus)).
		Msg("shipment status updated")
	return shipment, nil
}

// ListShipments returns a page of shipments visible to the caller.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	clientID, sellerID := scopeFor(input.Role, input.ClientID, input.SellerID)
	items, total, err := s.repo.List(ctx, ports.ListShipmentsFilter{
		ClientID:     clientID,
		SellerID:     sellerID,
		Status:       input.Status,
		ServiceLevel: input.ServiceLevel,
		DateFrom:     input.DateFrom,
		DateTo:       input.DateTo,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// ListLate returns undelivered shipments past their promised delivery date.
// Lateness is detected by comparison, never by a state transition.
func (s *ShipmentService) ListLate(ctx context.Context) ([]*domain.Shipment, error) {
	return s.repo.ListLate(ctx, s.now().UTC())
}

// scopeFor narrows queries by ownership: admins see everything, sellers their
// own shipments, clients their own orders.
func scopeFor(role, clientID, sellerID string) (string, string) {
	switch role {
	case domain.RoleAdmin:
		return "", ""
	case domain.RoleSeller:
		return "", sellerID
	default:
		return clientID, ""
	}
}

// generateTrackingNumber returns a tracking number composed of a timestamp and
// a random suffix, e.g. TM-20260831142233-7F3A.
func generateTrackingNumber(now time.Time) string {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		binary.BigEndian.PutUint16(b, uint16(now.UnixNano()))
	}
	return fmt.Sprintf("TM-%s-%04X", now.Format("20060102150405"), b)
}
