package domain

import (
	"context"
	"time"
)

// Registration lifecycle statuses.
const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusCancelled  = "cancelled"
)

// ContactInfo is the contact snapshot captured at registration time. It is
// stored on the registration row and is independent of the attendee profile.
type ContactInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// ExpoRegistration is an attendee's registration for an expo. Serial is the
// human-presented ticket number, unique at the store level.
// swagger:model ExpoRegistration
type ExpoRegistration struct {
	ID         string    `json:"id"`
	ExpoID     string    `json:"expo_id"`
	AttendeeID string    `json:"attendee_id"`
	Serial     string    `json:"serial"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionRegistration is an attendee's registration for a session. It is
// structurally identical to ExpoRegistration but kept as its own type and
// table, mirroring the separate lifecycles (session registrations may be
// hard-deleted by an admin).
// swagger:model SessionRegistration
type SessionRegistration struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	AttendeeID string    `json:"attendee_id"`
	Serial     string    `json:"serial"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExpoRegistrationRepository defines storage operations for expo registrations.
type ExpoRegistrationRepository interface {
	Create(ctx context.Context, reg *ExpoRegistration) error
	GetByID(ctx context.Context, id string) (*ExpoRegistration, error)
	GetByExpoAndAttendee(ctx context.Context, expoID, attendeeID string) (*ExpoRegistration, error)
	ListByExpo(ctx context.Context, expoID string) ([]*ExpoRegistration, error)
	ListByExpoAndStatus(ctx context.Context, expoID, status string) ([]*ExpoRegistration, error)
	ListByAttendee(ctx context.Context, attendeeID string) ([]*ExpoRegistration, error)
	Update(ctx context.Context, reg *ExpoRegistration) error
}

// SessionRegistrationRepository defines storage operations for session registrations.
type SessionRegistrationRepository interface {
	Create(ctx context.Context, reg *SessionRegistration) error
	GetByID(ctx context.Context, id string) (*SessionRegistration, error)
	GetBySessionAndAttendee(ctx context.Context, sessionID, attendeeID string) (*SessionRegistration, error)
	CountBySessionAndStatus(ctx context.Context, sessionID, status string) (int, error)
	ListByAttendee(ctx context.Context, attendeeID string) ([]*SessionRegistration, error)
	Update(ctx context.Context, reg *SessionRegistration) error
	Delete(ctx context.Context, id string) error
}

// RegistrationUpdate carries the mutable fields of a registration. Status
// transitions drive cancellation and pass-resend emails.
type RegistrationUpdate struct {
	FullName string
	Phone    string
	City     string
	Status   string
}

// RegistrationService orchestrates the registration workflow: precondition
// checks, row creation, best-effort pass issuance, and optional upsell
// registration into the other event kind. Pass and upsell failures never
// fail the primary registration.
type RegistrationService interface {
	RegisterForExpo(ctx context.Context, expoID, attendeeID string, contact ContactInfo, additionalSessionIDs []string) (*ExpoRegistration, error)
	RegisterForSession(ctx context.Context, sessionID, attendeeID string, contact ContactInfo, additionalExpoID string) (*SessionRegistration, error)
	RegisterAttendeeByAdmin(ctx context.Context, expoID, email string, contact ContactInfo) (*ExpoRegistration, error)

	CheckExpoRegistration(ctx context.Context, expoID, attendeeID string) (bool, error)
	CheckSessionRegistration(ctx context.Context, sessionID, attendeeID string) (bool, error)

	UpdateExpoRegistration(ctx context.Context, registrationID string, update RegistrationUpdate) (*ExpoRegistration, error)
	DeleteSessionRegistration(ctx context.Context, registrationID string) error

	ListExpoRegistrations(ctx context.Context, expoID string) ([]*ExpoRegistration, error)
	ListMyExpoRegistrations(ctx context.Context, attendeeID string) ([]*ExpoRegistration, error)
	ListMySessionRegistrations(ctx context.Context, attendeeID string) ([]*SessionRegistration, error)
}
