package notificationService

import (
	"SpendWise/internal/api/notification"
	notificationRepository "SpendWise/internal/api/notification/repository"
	"SpendWise/internal/entity"
	"SpendWise/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type INotificationService interface {
	Notify(ctx context.Context, userID string, message string) error
	CreateNotification(ctx context.Context, req notification.CreateNotificationRequest) (entity.Notification, error)
	GetNotifications(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, userID string, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID string, id string) error
	ClearAll(ctx context.Context, userID string) error
}

type notificationService struct {
	log                    *logrus.Logger
	notificationRepository notificationRepository.Repository
	utils                  utils.IUtils
}

func NewNotificationService(log *logrus.Logger, nr notificationRepository.Repository, utils utils.IUtils) INotificationService {
	return &notificationService{
		log:                    log,
		notificationRepository: nr,
		utils:                  utils,
	}
}
