package expense

import (
	"SpendWise/pkg/response"
	"net/http"
)

var (
	ErrInvalidCategory    = response.NewError(http.StatusBadRequest, "invalid expense category")
	ErrInvalidAmount      = response.NewError(http.StatusBadRequest, "amount must be a non-negative number")
	ErrDescriptionTooLong = response.NewError(http.StatusBadRequest, "description cannot exceed 200 characters")
	ErrInvalidDate        = response.NewError(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	ErrCreateExpense      = response.NewError(http.StatusInternalServerError, "failed to record expense")
)
