package domain

import (
	"context"
	"time"
)

// ExpoBookmark marks an expo as saved by an attendee. The (attendee, expo)
// pair is unique at the store level.
// swagger:model ExpoBookmark
type ExpoBookmark struct {
	ID         string    `json:"id"`
	ExpoID     string    `json:"expo_id"`
	AttendeeID string    `json:"attendee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionBookmark marks a session as saved by an attendee. Unlike expo
// bookmarks there is no storage constraint; the toggle relies on an
// existence check.
// swagger:model SessionBookmark
type SessionBookmark struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	AttendeeID string    `json:"attendee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExpoBookmarkRepository defines storage operations for expo bookmarks.
type ExpoBookmarkRepository interface {
	Create(ctx context.Context, bm *ExpoBookmark) error
	GetByExpoAndAttendee(ctx context.Context, expoID, attendeeID string) (*ExpoBookmark, error)
	ListByAttendee(ctx context.Context, attendeeID string) ([]*ExpoBookmark, error)
	ListByExpo(ctx context.Context, expoID string) ([]*ExpoBookmark, error)
	Delete(ctx context.Context, id string) error
}

// SessionBookmarkRepository defines storage operations for session bookmarks.
type SessionBookmarkRepository interface {
	Create(ctx context.Context, bm *SessionBookmark) error
	GetBySessionAndAttendee(ctx context.Context, sessionID, attendeeID string) (*SessionBookmark, error)
	ListByAttendee(ctx context.Context, attendeeID string) ([]*SessionBookmark, error)
	ListBySession(ctx context.Context, sessionID string) ([]*SessionBookmark, error)
	Delete(ctx context.Context, id string) error
}

// BookmarkService toggles and lists bookmarks for both event kinds.
type BookmarkService interface {
	// ToggleExpoBookmark returns true when the bookmark now exists, false
	// when it was removed.
	ToggleExpoBookmark(ctx context.Context, expoID, attendeeID string) (bool, error)
	ToggleSessionBookmark(ctx context.Context, sessionID, attendeeID string) (bool, error)
	ListExpoBookmarks(ctx context.Context, attendeeID string) ([]*ExpoBookmark, error)
	ListSessionBookmarks(ctx context.Context, attendeeID string) ([]*SessionBookmark, error)
}
