package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/ports"
)

type eventService struct {
	shipments ports.ShipmentService
	dedup     ports.DedupChecker
	log       zerolog.Logger
}

// NewEventService returns an EventService that applies carrier tracking events
// through the same status state machine as explicit status updates.
func NewEventService(shipments ports.ShipmentService, dedup ports.DedupChecker, log zerolog.Logger) ports.EventService {
	return &eventService{shipments: shipments, dedup: dedup, log: log}
}

// Process validates, deduplicates, and applies a single carrier event.
func (s *eventService) Process(ctx context.Context, in ports.CarrierEventInput) error {
	newStatus := domain.ShipmentStatus(in.Status)
	if newStatus != domain.StatusShipped && newStatus != domain.StatusDelivered {
		return fmt.Errorf("process event: unsupported status %q", in.Status)
	}

	// Idempotency check; silently skip duplicates. A failed check is logged
	// and processing continues; the state machine rejects true replays anyway.
	isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingNumber, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking", in.TrackingNumber).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("tracking", in.TrackingNumber).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}

	// Mark before writing so a retry after a partial failure is still skipped.
	if markErr := s.dedup.Mark(ctx, in.TrackingNumber, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking", in.TrackingNumber).Msg("failed to set dedup key")
	}

	notes := in.Notes
	if notes == "" && in.Source != "" {
		notes = "carrier event from " + in.Source
	}
	if _, err := s.shipments.UpdateStatus(ctx, ports.UpdateStatusInput{
		TrackingNumber: in.TrackingNumber,
		NextStatus:     newStatus,
		Notes:          notes,
	}); err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	s.log.Info().
		Str("tracking", in.TrackingNumber).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("carrier event processed")
	return nil
}
