package notification

type CreateNotificationRequest struct {
	UserID  string `json:"-"`
	Message string `json:"message" validate:"required,max=300"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"created_at"`
}
