package notificationService

import (
	"SpendWise/internal/api/notification"
	"SpendWise/internal/entity"
	contextPkg "SpendWise/pkg/context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Notify records an in-app notification for the user. Callers that emit
// notifications as a side effect of another operation treat failures here
// as non-fatal.
func (s *notificationService) Notify(ctx context.Context, userID string, message string) error {
	_, err := s.CreateNotification(ctx, notification.CreateNotificationRequest{
		UserID:  userID,
		Message: message,
	})
	return err
}

func (s *notificationService) CreateNotification(ctx context.Context, req notification.CreateNotificationRequest) (entity.Notification, error) {
	requestID := contextPkg.GetRequestID(ctx)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return entity.Notification{}, notification.ErrEmptyMessage
	}
	if len(message) > entity.MaxNotificationMessageLength {
		return entity.Notification{}, notification.ErrMessageTooLong
	}

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Notification{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Notification{}, err
	}

	newNotification := entity.Notification{
		ID:        ULID,
		UserID:    req.UserID,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Notifications.CreateNotification(ctx, newNotification); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create notification")
		return entity.Notification{}, err
	}

	return newNotification, nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]entity.Notification, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	notifications, err := repo.Notifications.GetNotificationsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get notifications")
		return nil, err
	}

	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Notifications.MarkRead(ctx, userID, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"notification_id": id,
			"error":           err.Error(),
		}).Warn("Failed to mark notification as read")
		return err
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Notifications.MarkAllRead(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to mark all notifications as read")
		return err
	}

	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Notifications.DeleteNotification(ctx, userID, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"notification_id": id,
			"error":           err.Error(),
		}).Warn("Failed to delete notification")
		return err
	}

	return nil
}

func (s *notificationService) ClearAll(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.notificationRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Notifications.ClearAll(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear notifications")
		return err
	}

	return nil
}
