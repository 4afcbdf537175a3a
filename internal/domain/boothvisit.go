package domain

import (
	"context"
	"time"
)

// BoothVisit records a QR check-in of a registered attendee at a booth.
// swagger:model BoothVisit
type BoothVisit struct {
	ID         string    `json:"id"`
	BoothID    string    `json:"booth_id"`
	ExpoID     string    `json:"expo_id"`
	AttendeeID string    `json:"attendee_id"`
	VisitedAt  time.Time `json:"visited_at"`
}

// BoothVisitRepository defines storage operations for booth visits.
type BoothVisitRepository interface {
	Create(ctx context.Context, visit *BoothVisit) error
	GetByBoothAndAttendee(ctx context.Context, boothID, attendeeID string) (*BoothVisit, error)
	ListByBooth(ctx context.Context, boothID string) ([]*BoothVisit, error)
}

// BoothVisitService records booth check-ins scanned from exhibitor passes.
type BoothVisitService interface {
	// RecordVisit validates that the booth belongs to the expo, that the
	// attendee holds an active expo registration, and that no visit exists
	// yet for the (booth, attendee) pair.
	RecordVisit(ctx context.Context, expoID, boothID, attendeeID string) (*BoothVisit, error)
}
