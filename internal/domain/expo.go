package domain

import (
	"context"
	"time"
)

// Expo represents a multi-day exposition event.
// swagger:model Expo
type Expo struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Theme          string    `json:"theme"`
	Location       string    `json:"location"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	IsPaid         bool      `json:"is_paid"`
	Price          float64   `json:"price"`
	EntranceInfo   string    `json:"entrance_info"`
	MapImage       string    `json:"map_image"`
	ThumbnailImage string    `json:"thumbnail_image"`
	Interests      []string  `json:"interests"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ExpoRepository defines the interface for expo storage
type ExpoRepository interface {
	Create(ctx context.Context, expo *Expo) error
	GetByID(ctx context.Context, id string) (*Expo, error)
	List(ctx context.Context, includeInactive bool) ([]*Expo, error)
	// ListStartingBetween returns expos whose start date falls within
	// [from, to]. Used by the reminder sweep.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]*Expo, error)
	Update(ctx context.Context, expo *Expo) error
	Delete(ctx context.Context, id string) error
}

// BoothGroup describes a block of identically sized booths created together
// with an expo. Booths are named Prefix + 1..Count.
type BoothGroup struct {
	Prefix string  `json:"prefix"`
	Count  int     `json:"count"`
	Size   string  `json:"size"`
	Price  float64 `json:"price"`
}

// CreateExpoInput carries the admin-supplied fields for a new expo, plus the
// booth groups and timetable entries created alongside it.
type CreateExpoInput struct {
	Title          string
	Description    string
	Theme          string
	Location       string
	StartDate      time.Time
	EndDate        time.Time
	IsPaid         bool
	Price          float64
	EntranceInfo   string
	MapImage       string
	ThumbnailImage string
	Interests      []string
	BoothGroups    []BoothGroup
	Schedules      []ScheduleInput
}

// UpdateExpoInput carries the mutable expo fields for an admin update.
type UpdateExpoInput struct {
	Title          string
	Description    string
	Theme          string
	Location       string
	StartDate      time.Time
	EndDate        time.Time
	IsPaid         bool
	Price          float64
	EntranceInfo   string
	MapImage       string
	ThumbnailImage string
	Interests      []string
}

// ExpoService manages the expo lifecycle. Creation bulk-creates the booth
// inventory from the input's booth groups and seeds the timetable.
type ExpoService interface {
	Create(ctx context.Context, input CreateExpoInput) (*Expo, error)
	// Get hides inactive expos unless includeInactive is set.
	Get(ctx context.Context, id string, includeInactive bool) (*Expo, error)
	List(ctx context.Context, includeInactive bool) ([]*Expo, error)
	Update(ctx context.Context, id string, input UpdateExpoInput) (*Expo, error)
	ToggleStatus(ctx context.Context, id string) (*Expo, error)
	Delete(ctx context.Context, id string) error
}
