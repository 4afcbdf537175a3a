package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nexpo/internal/domain"
)

// messagePreviewLen caps the notification body excerpt.
const messagePreviewLen = 50

type messageService struct {
	messageRepo      domain.MessageRepository
	userRepo         domain.UserRepository
	notificationRepo domain.NotificationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewMessageService creates a MessageService with the given dependencies.
func NewMessageService(
	messageRepo domain.MessageRepository,
	userRepo domain.UserRepository,
	notificationRepo domain.NotificationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.MessageService {
	return &messageService{
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

// Send stores the message, then notifies the receiver in-app and by email.
// Messages to any admin land in the shared admin inbox, so the in-app notice
// goes to every admin. Notification and email failures never fail the send.
func (s *messageService) Send(ctx context.Context, senderID string, req domain.SendMessageRequest) (*domain.Message, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	msgType := req.Type
	if msgType == "" {
		msgType = domain.MessageTypeChat
	}
	if msgType != domain.MessageTypeChat && msgType != domain.MessageTypeAppointment {
		return nil, fmt.Errorf("%w: unknown message type %q", domain.ErrInvalidInput, req.Type)
	}
	if msgType == domain.MessageTypeAppointment && req.AppointmentDate == nil {
		return nil, fmt.Errorf("%w: appointment date is required", domain.ErrInvalidInput)
	}

	receiver, err := s.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get receiver: %w", err)
	}
	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}

	message := &domain.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Type:       msgType,
		Content:    req.Content,
		Status:     domain.MessageStatusPending,
		CreatedAt:  time.Now(),
	}
	if msgType == domain.MessageTypeAppointment {
		message.AppointmentDate = req.AppointmentDate
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.notifyReceiver(ctx, sender, receiver, message)
	return message, nil
}

func (s *messageService) notifyReceiver(ctx context.Context, sender, receiver *domain.User, message *domain.Message) {
	recipients := []*domain.User{receiver}
	if receiver.Role == domain.RoleAdmin {
		admins, err := s.userRepo.ListByRole(ctx, domain.RoleAdmin)
		if err != nil {
			s.logger.Warn("admin inbox broadcast listing failed",
				slog.String("message_id", message.ID),
				slog.String("error", err.Error()))
		} else {
			recipients = admins
		}
	}

	preview := message.Content
	if len(preview) > messagePreviewLen {
		preview = preview[:messagePreviewLen] + "..."
	}
	for _, r := range recipients {
		n := &domain.Notification{
			ID:          uuid.NewString(),
			RecipientID: r.ID,
			Title:       "New Message from " + sender.Name,
			Body:        preview,
			CreatedAt:   time.Now(),
		}
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.Warn("message notification failed",
				slog.String("recipient_id", r.ID),
				slog.String("error", err.Error()))
		}
	}

	if receiver.Email == "" {
		return
	}
	data := &domain.MessageEmailData{
		Email:         receiver.Email,
		RecipientName: receiver.Name,
		SenderName:    sender.Name,
		MessageType:   message.Type,
		Content:       message.Content,
	}
	if message.AppointmentDate != nil {
		data.AppointmentDate = message.AppointmentDate.Format("Jan 2, 2006 3:04 PM")
	}
	if err := s.emailService.SendMessageNotification(ctx, data); err != nil {
		s.logger.Warn("message email failed",
			slog.String("message_id", message.ID),
			slog.String("error", err.Error()))
	}
}

func (s *messageService) ListMine(ctx context.Context, userID string) ([]*domain.Message, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.Role == domain.RoleAdmin {
		messages, err := s.messageRepo.ListByParticipantRole(ctx, domain.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("list admin messages: %w", err)
		}
		return messages, nil
	}
	messages, err := s.messageRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
