package notification

import (
	"SpendWise/pkg/response"
	"net/http"
)

var (
	ErrNotificationNotFound = response.NewError(http.StatusNotFound, "notification not found")
	ErrEmptyMessage         = response.NewError(http.StatusBadRequest, "notification message is required")
	ErrMessageTooLong       = response.NewError(http.StatusBadRequest, "message cannot exceed 300 characters")
)
