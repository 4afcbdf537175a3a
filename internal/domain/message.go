package domain

import (
	"context"
	"time"
)

// Message types.
const (
	MessageTypeChat        = "chat"
	MessageTypeAppointment = "appointment"
)

// Message statuses.
const (
	MessageStatusPending  = "pending"
	MessageStatusAccepted = "accepted"
	MessageStatusRejected = "rejected"
	MessageStatusRead     = "read"
)

// Message is a direct inquiry or appointment request between two users.
// AppointmentDate is set only for appointment messages.
// swagger:model Message
type Message struct {
	ID              string     `json:"id"`
	SenderID        string     `json:"sender_id"`
	ReceiverID      string     `json:"receiver_id"`
	Type            string     `json:"type"`
	Content         string     `json:"content"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// MessageRepository defines the interface for message storage
type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	// ListByParticipant returns messages sent or received by the user,
	// newest first.
	ListByParticipant(ctx context.Context, userID string) ([]*Message, error)
	// ListByParticipantRole returns messages where either side holds the
	// given role. Backs the shared admin inbox.
	ListByParticipantRole(ctx context.Context, role string) ([]*Message, error)
}

// SendMessageRequest carries the sender-supplied message fields.
type SendMessageRequest struct {
	ReceiverID      string
	Type            string
	Content         string
	AppointmentDate *time.Time
}

// MessageService handles role-to-role messaging with in-app and email
// notification of the receiver.
type MessageService interface {
	Send(ctx context.Context, senderID string, req SendMessageRequest) (*Message, error)
	// ListMine returns the user's conversation history. Admins share one
	// inbox: they see every message involving any admin.
	ListMine(ctx context.Context, userID string) ([]*Message, error)
}
