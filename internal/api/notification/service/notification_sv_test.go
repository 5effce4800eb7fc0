package notificationService

import (
	"SpendWise/internal/api/notification"
	notificationRepository "SpendWise/internal/api/notification/repository"
	"SpendWise/internal/entity"
	"SpendWise/pkg/utils"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type notificationStore struct {
	notifications []entity.Notification
}

func (s *notificationStore) CreateNotification(_ context.Context, n entity.Notification) error {
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *notificationStore) GetNotificationsByUserID(_ context.Context, userID string) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *notificationStore) MarkRead(_ context.Context, userID string, id string) error {
	for i, n := range s.notifications {
		if n.UserID == userID && n.ID == id {
			s.notifications[i].IsRead = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (s *notificationStore) MarkAllRead(_ context.Context, userID string) error {
	for i, n := range s.notifications {
		if n.UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
	return nil
}

func (s *notificationStore) DeleteNotification(_ context.Context, userID string, id string) error {
	for i, n := range s.notifications {
		if n.UserID == userID && n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (s *notificationStore) ClearAll(_ context.Context, userID string) error {
	var kept []entity.Notification
	for _, n := range s.notifications {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
	return nil
}

type fakeNotificationRepo struct {
	store *notificationStore
}

func (f *fakeNotificationRepo) NewClient(bool) (notificationRepository.Client, error) {
	return notificationRepository.Client{
		Notifications: f.store,
		Commit:        func() error { return nil },
		Rollback:      func() error { return nil },
	}, nil
}

func newTestService() (INotificationService, *notificationStore) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := &notificationStore{}
	svc := NewNotificationService(logger, &fakeNotificationRepo{store: store}, utils.New())
	return svc, store
}

func TestCreateNotificationTrimsMessage(t *testing.T) {
	svc, store := newTestService()

	created, err := svc.CreateNotification(context.Background(), notification.CreateNotificationRequest{
		UserID:  "user-1",
		Message: "  Budget set for Food  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Budget set for Food", created.Message)
	assert.False(t, created.IsRead)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, store.notifications, 1)
}

func TestCreateNotificationRejectsEmptyMessage(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.CreateNotification(context.Background(), notification.CreateNotificationRequest{
		UserID:  "user-1",
		Message: "   ",
	})
	assert.ErrorIs(t, err, notification.ErrEmptyMessage)
	assert.Empty(t, store.notifications)
}

func TestCreateNotificationRejectsLongMessage(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateNotification(context.Background(), notification.CreateNotificationRequest{
		UserID:  "user-1",
		Message: strings.Repeat("a", entity.MaxNotificationMessageLength+1),
	})
	assert.ErrorIs(t, err, notification.ErrMessageTooLong)
}

func TestNotifyCreatesNotification(t *testing.T) {
	svc, store := newTestService()

	require.NoError(t, svc.Notify(context.Background(), "user-1", "New expense added: Food - 25.00"))
	require.Len(t, store.notifications, 1)
	assert.Equal(t, "user-1", store.notifications[0].UserID)
}

func TestMarkReadNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.MarkRead(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
}

func TestMarkAllReadAndClearAll(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, "user-1", "first"))
	require.NoError(t, svc.Notify(ctx, "user-1", "second"))
	require.NoError(t, svc.Notify(ctx, "user-2", "other"))

	require.NoError(t, svc.MarkAllRead(ctx, "user-1"))
	for _, n := range store.notifications {
		if n.UserID == "user-1" {
			assert.True(t, n.IsRead)
		} else {
			assert.False(t, n.IsRead)
		}
	}

	require.NoError(t, svc.ClearAll(ctx, "user-1"))
	remaining, err := svc.GetNotifications(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	others, err := svc.GetNotifications(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
