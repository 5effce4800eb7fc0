package budget

import (
	"SpendWise/pkg/response"
	"net/http"
)

var (
	ErrBudgetAlreadyExists = response.NewError(http.StatusBadRequest, "budget for this category and month already exists")
	ErrBudgetNotFound      = response.NewError(http.StatusNotFound, "budget not found")
	ErrInvalidCategory     = response.NewError(http.StatusBadRequest, "invalid category")
	ErrInvalidLimit        = response.NewError(http.StatusBadRequest, "budget limit must be a non-negative number")
	ErrNoBudgets           = response.NewError(http.StatusNotFound, "no budgets found")
)
