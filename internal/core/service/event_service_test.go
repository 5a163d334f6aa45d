package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubShipmentService struct {
	updateCalls []ports.UpdateStatusInput
	updateErr   error
}

func (s *stubShipmentService) CreateShipment(context.Context, ports.CreateShipmentInput) (*ports.ShipmentResult, error) {
	return nil, nil
}

func (s *stubShipmentService) GetShipment(context.Context, ports.GetShipmentInput) (*domain.Shipment, error) {
	return nil, nil
}

func (s *stubShipmentService) UpdateStatus(_ context.Context, input ports.UpdateStatusInput) (*domain.Shipment, error) {
	s.updateCalls = append(s.updateCalls, input)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &domain.Shipment{TrackingNumber: input.TrackingNumber, Status: input.NextStatus}, nil
}

func (s *stubShipmentService) ListShipments(context.Context, ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	return nil, nil
}

func (s *stubShipmentService) ListLate(context.Context) ([]*domain.Shipment, error) {
	return nil, nil
}

type stubDedup struct {
	seen     map[string]bool
	checkErr error
	marked   []string
}

func dedupKey(trackingNumber, status string, ts time.Time) string {
	return trackingNumber + "|" + status + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, trackingNumber, status string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[dedupKey(trackingNumber, status, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, trackingNumber, status string, ts time.Time) error {
	key := dedupKey(trackingNumber, status, ts)
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	d.seen[key] = true
	d.marked = append(d.marked, key)
	return nil
}

func carrierEvent(status string) ports.CarrierEventInput {
	return ports.CarrierEventInput{
		TrackingNumber: "TM-20260310120000-0A1B",
		Status:         status,
		Timestamp:      time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC),
		Source:         "yobuma",
	}
}

// ---------------------------------------------------------------------------
// Process
// ---------------------------------------------------------------------------

func TestProcessEvent_AppliesStatusUpdate(t *testing.T) {
	shipments := &stubShipmentService{}
	dedup := &stubDedup{}
	svc := NewEventService(shipments, dedup, discardLogger)

	if err := svc.Process(context.Background(), carrierEvent("shipped")); err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(shipments.updateCalls) != 1 {
		t.Fatalf("expected 1 status update, got %d", len(shipments.updateCalls))
	}
	call := shipments.updateCalls[0]
	if call.NextStatus != domain.StatusShipped {
		t.Fatalf("expected shipped, got %s", call.NextStatus)
	}
	if call.Notes != "carrier event from yobuma" {
		t.Fatalf("unexpected notes %q", call.Notes)
	}
	if len(dedup.marked) != 1 {
		t.Fatalf("expected event to be marked, got %d", len(dedup.marked))
	}
}

func TestProcessEvent_KeepsExplicitNotes(t *testing.T) {
	shipments := &stubShipmentService{}
	svc := NewEventService(shipments, &stubDedup{}, discardLogger)

	event := carrierEvent("delivered")
	event.Notes = "left at reception"
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("process: %v", err)
	}
	if shipments.updateCalls[0].Notes != "left at reception" {
		t.Fatalf("explicit notes overwritten: %q", shipments.updateCalls[0].Notes)
	}
}

func TestProcessEvent_RejectsUnsupportedStatus(t *testing.T) {
	shipments := &stubShipmentService{}
	svc := NewEventService(shipments, &stubDedup{}, discardLogger)

	for _, status := range []string{"preparing", "lost", ""} {
		if err := svc.Process(context.Background(), carrierEvent(status)); err == nil {
			t.Fatalf("expected error for status %q", status)
		}
	}
	if len(shipments.updateCalls) != 0 {
		t.Fatalf("no update should have been attempted")
	}
}

func TestProcessEvent_SkipsDuplicates(t *testing.T) {
	shipments := &stubShipmentService{}
	dedup := &stubDedup{}
	svc := NewEventService(shipments, dedup, discardLogger)

	event := carrierEvent("shipped")
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("first process: %v", err)
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("duplicate process: %v", err)
	}
	if len(shipments.updateCalls) != 1 {
		t.Fatalf("duplicate event reached the state machine")
	}

	// Same tracking number at a different timestamp is a distinct event.
	event.Timestamp = event.Timestamp.Add(time.Hour)
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("later event: %v", err)
	}
	if len(shipments.updateCalls) != 2 {
		t.Fatalf("distinct event was dropped")
	}
}

func TestProcessEvent_DedupFailureDoesNotBlock(t *testing.T) {
	shipments := &stubShipmentService{}
	dedup := &stubDedup{checkErr: errors.New("redis down")}
	svc := NewEventService(shipments, dedup, discardLogger)

	if err := svc.Process(context.Background(), carrierEvent("shipped")); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(shipments.updateCalls) != 1 {
		t.Fatalf("event dropped on dedup failure")
	}
}

func TestProcessEvent_UpdateErrorPropagates(t *testing.T) {
	shipments := &stubShipmentService{updateErr: domain.ErrInvalidTransition}
	svc := NewEventService(shipments, &stubDedup{}, discardLogger)

	err := svc.Process(context.Background(), carrierEvent("delivered"))
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
