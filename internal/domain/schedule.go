package domain

import (
	"context"
	"time"
)

// Schedule is a timetable entry inside an expo (keynote, demo slot, social).
// Distinct from Session: schedule entries carry no registration or capacity.
// swagger:model Schedule
type Schedule struct {
	ID          string    `json:"id"`
	ExpoID      string    `json:"expo_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	EventName   string    `json:"event_name"`
	Description string    `json:"description"`
	Speaker     string    `json:"speaker,omitempty"`
	Topic       string    `json:"topic,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	EventImage  string    `json:"event_image,omitempty"`
	Interests   []string  `json:"interests"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScheduleRepository defines the interface for schedule storage
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *Schedule) error
	GetByID(ctx context.Context, id string) (*Schedule, error)
	ListByExpo(ctx context.Context, expoID string, includeInactive bool) ([]*Schedule, error)
	// List returns all schedule entries ordered by date then start time.
	List(ctx context.Context, includeInactive bool) ([]*Schedule, error)
	Update(ctx context.Context, schedule *Schedule) error
	Delete(ctx context.Context, id string) error
}

// ScheduleInput carries the admin-supplied fields for a schedule entry.
// ID is set on bulk upserts when an existing entry should be updated.
type ScheduleInput struct {
	ID          string   `json:"id,omitempty"`
	Date        string   `json:"date"`
	EventName   string   `json:"event_name"`
	Description string   `json:"description"`
	Speaker     string   `json:"speaker"`
	Topic       string   `json:"topic"`
	Location    string   `json:"location"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	EventImage  string   `json:"event_image"`
	Interests   []string `json:"interests"`
}

// ScheduleService manages the expo timetable.
type ScheduleService interface {
	Create(ctx context.Context, expoID string, input ScheduleInput) (*Schedule, error)
	ListByExpo(ctx context.Context, expoID string, includeInactive bool) ([]*Schedule, error)
	List(ctx context.Context, includeInactive bool) ([]*Schedule, error)
	// BulkUpsert updates entries that carry an ID and creates the rest,
	// all scoped to one expo.
	BulkUpsert(ctx context.Context, expoID string, inputs []ScheduleInput) error
	ToggleStatus(ctx context.Context, id string) (*Schedule, error)
	Delete(ctx context.Context, id string) error
}
