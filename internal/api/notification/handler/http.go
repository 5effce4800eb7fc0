package notificationHandler

import (
	notificationService "SpendWise/internal/api/notification/service"
	"SpendWise/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type NotificationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	notificationService notificationService.INotificationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	notificationService notificationService.INotificationService,
) *NotificationHandler {
	return &NotificationHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) Start(srv fiber.Router) {
	notifications := srv.Group("/notifications")

	notifications.Post("/", h.middleware.NewTokenMiddleware, h.CreateNotification)
	notifications.Get("/", h.middleware.NewTokenMiddleware, h.GetNotifications)
	notifications.Patch("/read-all", h.middleware.NewTokenMiddleware, h.MarkAllRead)
	notifications.Patch("/:id/read", h.middleware.NewTokenMiddleware, h.MarkRead)
	notifications.Delete("/clear-all", h.middleware.NewTokenMiddleware, h.ClearAll)
	notifications.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteNotification)
}
