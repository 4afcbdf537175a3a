package domain

import (
	"context"
	"time"
)

// Session types.
const (
	SessionTypeSession  = "Session"
	SessionTypeWorkshop = "Workshop"
)

// SessionSpeaker is a speaker entry on a session.
type SessionSpeaker struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

// Session represents a talk or workshop, optionally linked to a parent expo.
// Capacity 0 means unlimited.
// swagger:model Session
type Session struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Topic       string           `json:"topic"`
	Speakers    []SessionSpeaker `json:"speakers"`
	Date        string           `json:"date"` // YYYY-MM-DD
	StartTime   string           `json:"start_time"`
	EndTime     string           `json:"end_time"`
	Location    string           `json:"location"`
	IsPaid      bool             `json:"is_paid"`
	Price       float64          `json:"price"`
	Capacity    int              `json:"capacity"`
	BannerImage string           `json:"banner_image"`
	ExpoID      string           `json:"expo_id,omitempty"` // empty when standalone
	Interests   []string         `json:"interests"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	// List returns all sessions, newest first.
	List(ctx context.Context, includeInactive bool) ([]*Session, error)
	ListByExpoID(ctx context.Context, expoID string) ([]*Session, error)
	// ListByDate returns sessions scheduled on the given YYYY-MM-DD date.
	ListByDate(ctx context.Context, date string) ([]*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// SessionInput carries the admin-supplied fields for creating or updating a
// session. An empty ExpoID makes the session standalone.
type SessionInput struct {
	Title       string
	Description string
	Type        string
	Topic       string
	Speakers    []SessionSpeaker
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	IsPaid      bool
	Price       float64
	Capacity    int
	BannerImage string
	ExpoID      string
	Interests   []string
}

// SessionService manages the session lifecycle.
type SessionService interface {
	Create(ctx context.Context, input SessionInput) (*Session, error)
	// Get hides inactive sessions unless includeInactive is set.
	Get(ctx context.Context, id string, includeInactive bool) (*Session, error)
	// List filters to one expo when expoID is non-empty.
	List(ctx context.Context, expoID string, includeInactive bool) ([]*Session, error)
	Update(ctx context.Context, id string, input SessionInput) (*Session, error)
	ToggleStatus(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
