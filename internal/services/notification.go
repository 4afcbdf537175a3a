package services

import (
	"context"
	"fmt"

	"nexpo/internal/domain"
)

const notificationFeedLimit = 20

type notificationService struct {
	repo domain.NotificationRepository
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(repo domain.NotificationRepository) domain.NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) GetFeed(ctx context.Context, recipientID string) ([]*domain.Notification, int, error) {
	notifications, err := s.repo.ListByRecipient(ctx, recipientID, notificationFeedLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, 0, fmt.Errorf("count unread: %w", err)
	}
	return notifications, unread, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	if err := s.repo.MarkAllRead(ctx, recipientID); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}
