package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpo/internal/domain"
)

func messagingUsers() *fakeUserRepo {
	return newFakeUserRepo(
		attendee("att-1"),
		&domain.User{ID: "exh-1", Name: "Eve Exhibitor", Email: "exh-1@example.com",
			Role: domain.RoleExhibitor, IsActive: true},
		&domain.User{ID: "adm-1", Name: "Ada Admin", Email: "adm-1@example.com",
			Role: domain.RoleAdmin, IsActive: true},
		&domain.User{ID: "adm-2", Name: "Bo Admin", Email: "adm-2@example.com",
			Role: domain.RoleAdmin, IsActive: true},
	)
}

func TestSendMessage(t *testing.T) {
	t.Run("stores the message and notifies the receiver", func(t *testing.T) {
		users := messagingUsers()
		msgRepo := &fakeMessageRepo{users: users}
		notifRepo := &fakeNotificationRepo{}
		emails := &fakeEmailService{}
		svc := NewMessageService(msgRepo, users, notifRepo, emails, testLogger())

		msg, err := svc.Send(context.Background(), "att-1", domain.SendMessageRequest{
			ReceiverID: "exh-1",
			Content:    "Do you ship to Karachi?",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.MessageTypeChat, msg.Type, "type defaults to chat")
		assert.Equal(t, domain.MessageStatusPending, msg.Status)
		assert.Nil(t, msg.AppointmentDate)

		require.Len(t, notifRepo.notifications, 1)
		assert.Equal(t, "exh-1", notifRepo.notifications[0].RecipientID)
		assert.Equal(t, "New Message from Dana Attendee", notifRepo.notifications[0].Title)

		sent := emails.byKind("message_notification")
		require.Len(t, sent, 1)
		assert.Equal(t, "exh-1@example.com", sent[0].to)
	})

	t.Run("message to an admin notifies every admin once", func(t *testing.T) {
		users := messagingUsers()
		msgRepo := &fakeMessageRepo{users: users}
		notifRepo := &fakeNotificationRepo{}
		svc := NewMessageService(msgRepo, users, notifRepo, &fakeEmailService{}, testLogger())

		_, err := svc.Send(context.Background(), "exh-1", domain.SendMessageRequest{
			ReceiverID: "adm-1",
			Content:    "Please approve my booth change.",
		})
		require.NoError(t, err)

		require.Len(t, notifRepo.notifications, 2)
		recipients := map[string]bool{}
		for _, n := range notifRepo.notifications {
			recipients[n.RecipientID] = true
		}
		assert.True(t, recipients["adm-1"])
		assert.True(t, recipients["adm-2"])
	})

	t.Run("long content is excerpted in the notification", func(t *testing.T) {
		users := messagingUsers()
		notifRepo := &fakeNotificationRepo{}
		svc := NewMessageService(&fakeMessageRepo{users: users}, users, notifRepo,
			&fakeEmailService{}, testLogger())

		long := strings.Repeat("details ", 20)
		_, err := svc.Send(context.Background(), "att-1", domain.SendMessageRequest{
			ReceiverID: "exh-1",
			Content:    long,
		})
		require.NoError(t, err)

		require.Len(t, notifRepo.notifications, 1)
		body := notifRepo.notifications[0].Body
		assert.True(t, strings.HasSuffix(body, "..."))
		assert.Len(t, body, messagePreviewLen+3)
	})

	t.Run("appointment requires a date", func(t *testing.T) {
		users := messagingUsers()
		svc := NewMessageService(&fakeMessageRepo{users: users}, users,
			&fakeNotificationRepo{}, &fakeEmailService{}, testLogger())

		_, err := svc.Send(context.Background(), "att-1", domain.SendMessageRequest{
			ReceiverID: "exh-1",
			Type:       domain.MessageTypeAppointment,
			Content:    "Can we meet?",
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		when := time.Date(2026, 9, 11, 14, 0, 0, 0, time.UTC)
		msg, err := svc.Send(context.Background(), "att-1", domain.SendMessageRequest{
			ReceiverID:      "exh-1",
			Type:            domain.MessageTypeAppointment,
			Content:         "Can we meet?",
			AppointmentDate: &when,
		})
		require.NoError(t, err)
		require.NotNil(t, msg.AppointmentDate)
		assert.True(t, msg.AppointmentDate.Equal(when))
	})

	t.Run("unknown receiver", func(t *testing.T) {
		users := messagingUsers()
		svc := NewMessageService(&fakeMessageRepo{users: users}, users,
			&fakeNotificationRepo{}, &fakeEmailService{}, testLogger())

		_, err := svc.Send(context.Background(), "att-1", domain.SendMessageRequest{
			ReceiverID: "ghost",
			Content:    "Hello?",
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("email failure does not fail the send", func(t *testing.T) {
		users := messagingUsers()
		msgRepo := &fakeMessageRepo{users: users}
		emails := &fakeEmailService{failFor: "exh-1@example.com"}
		svc := NewMessageService(msgRepo, users, &fakeNotificationRepo{}, emails, testLogger())

		msg, err := svc.Send(context.Background(), "att-1", domain.SendMessageRequest{
			ReceiverID: "exh-1",
			Content:    "Do you ship to Karachi?",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
	})
}

func TestListMyMessages(t *testing.T) {
	users := messagingUsers()
	msgRepo := &fakeMessageRepo{users: users}
	svc := NewMessageService(msgRepo, users, &fakeNotificationRepo{}, &fakeEmailService{}, testLogger())

	_, err := svc.Send(context.Background(), "att-1", domain.SendMessageRequest{
		ReceiverID: "exh-1", Content: "attendee to exhibitor"})
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), "exh-1", domain.SendMessageRequest{
		ReceiverID: "adm-1", Content: "exhibitor to admin"})
	require.NoError(t, err)

	t.Run("regular users see only their own threads", func(t *testing.T) {
		messages, err := svc.ListMine(context.Background(), "att-1")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "attendee to exhibitor", messages[0].Content)
	})

	t.Run("admins share one inbox", func(t *testing.T) {
		for _, adminID := range []string{"adm-1", "adm-2"} {
			messages, err := svc.ListMine(context.Background(), adminID)
			require.NoError(t, err)
			require.Len(t, messages, 1)
			assert.Equal(t, "exhibitor to admin", messages[0].Content)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.ListMine(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
