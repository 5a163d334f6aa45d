package ports

import (
	"context"
	"time"
)

// CarrierEventInput is a status update received from a carrier integration.
type CarrierEventInput struct {
	TrackingNumber string
	Status         string
	Timestamp      time.Time
	Source         string
	Notes          string
}

// EventService processes carrier tracking events, applying the same status
// state machine as explicit status updates.
type EventService interface {
	Process(ctx context.Context, event CarrierEventInput) error
}

// DedupChecker detects carrier events that were already processed.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingNumber, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingNumber, status string, ts time.Time) error
}
