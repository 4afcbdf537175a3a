package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpo/internal/domain"
)

func TestNotificationFeed(t *testing.T) {
	repo := &fakeNotificationRepo{}
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(context.Background(), &domain.Notification{
			ID:          fmt.Sprintf("n-%d", i),
			RecipientID: "att-1",
			Title:       fmt.Sprintf("Notice %d", i),
			CreatedAt:   time.Now(),
		}))
	}
	require.NoError(t, repo.Create(context.Background(), &domain.Notification{
		ID:          "n-other",
		RecipientID: "att-2",
		IsRead:      true,
	}))

	svc := NewNotificationService(repo)

	feed, unread, err := svc.GetFeed(context.Background(), "att-1")
	require.NoError(t, err)
	assert.Len(t, feed, 3)
	assert.Equal(t, 3, unread)

	require.NoError(t, svc.MarkAllRead(context.Background(), "att-1"))

	_, unread, err = svc.GetFeed(context.Background(), "att-1")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationFeedLimit(t *testing.T) {
	assert.Equal(t, 20, notificationFeedLimit, "feed returns the latest 20")

	repo := &fakeNotificationRepo{}
	for i := 0; i < notificationFeedLimit+10; i++ {
		require.NoError(t, repo.Create(context.Background(), &domain.Notification{
			ID:          fmt.Sprintf("n-%d", i),
			RecipientID: "att-1",
		}))
	}
	svc := NewNotificationService(repo)

	feed, _, err := svc.GetFeed(context.Background(), "att-1")
	require.NoError(t, err)
	assert.Len(t, feed, notificationFeedLimit)
}
