package domain

import (
	"context"
	"time"
)

// Notification is a persisted in-app notice for a user.
// swagger:model Notification
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationRepository defines storage operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkAllRead(ctx context.Context, recipientID string) error
}

// NotificationService exposes the in-app notification feed.
type NotificationService interface {
	GetFeed(ctx context.Context, recipientID string) ([]*Notification, int, error)
	MarkAllRead(ctx context.Context, recipientID string) error
}
