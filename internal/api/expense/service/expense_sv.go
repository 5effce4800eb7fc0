package expenseService

import (
	"SpendWise/internal/api/expense"
	"SpendWise/internal/entity"
	contextPkg "SpendWise/pkg/context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	warningThresholdPercent  = 80
	exceededThresholdPercent = 100
)

func (s *expenseService) RecordExpense(ctx context.Context, req expense.RecordExpenseRequest) (expense.RecordExpenseResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       req.Date,
			}).Warn("Invalid expense date")
			return expense.RecordExpenseResult{}, expense.ErrInvalidDate
		}
		date = parsed
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return expense.RecordExpenseResult{}, err
	}

	newExpense := entity.Expense{
		ID:          ULID,
		UserID:      req.UserID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := newExpense.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
			"amount":     req.Amount,
		}).Warn("Invalid expense payload")
		return expense.RecordExpenseResult{}, err
	}

	expenseRepo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return expense.RecordExpenseResult{}, err
	}

	if err := expenseRepo.Expenses.CreateExpense(ctx, newExpense); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return expense.RecordExpenseResult{}, expense.ErrCreateExpense
	}

	// The expense is persisted at this point. Budget bookkeeping and
	// notifications below are side effects and never fail the request.
	result := expense.RecordExpenseResult{
		Expense: expense.ExpenseResponse{
			ID:          newExpense.ID,
			Category:    newExpense.Category,
			Amount:      newExpense.Amount,
			Description: newExpense.Description,
			Date:        newExpense.Date.Format("2006-01-02"),
			CreatedAt:   newExpense.CreatedAt.Format(time.RFC3339),
		},
		Message: "Expense added successfully",
	}

	s.applyToBudget(ctx, req, newExpense, &result)

	message := fmt.Sprintf("New expense added: %s - %.2f", newExpense.Category, newExpense.Amount)
	if err := s.notifier.Notify(ctx, req.UserID, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create expense notification")
	}

	return result, nil
}

// applyToBudget charges the expense against the matching budget for its
// month and emits threshold notifications. It mutates result.Message when
// the budget limit is exceeded.
func (s *expenseService) applyToBudget(ctx context.Context, req expense.RecordExpenseRequest, newExpense entity.Expense, result *expense.RecordExpenseResult) {
	requestID := contextPkg.GetRequestID(ctx)

	budgetRepo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	month := s.utils.MonthLabel(newExpense.Date)
	matched, found, err := budgetRepo.Budgets.GetBudgetByCategoryMonth(ctx, req.UserID, newExpense.Category, month)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to look up budget for expense")
		return
	}

	if !found {
		message := fmt.Sprintf("No budget set for '%s'. Consider creating one.", newExpense.Category)
		if err := s.notifier.Notify(ctx, req.UserID, message); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to create no-budget notification")
		}
		return
	}

	spent, limit, err := budgetRepo.Budgets.AddSpent(ctx, req.UserID, matched.ID, newExpense.Amount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"budget_id":  matched.ID,
			"error":      err.Error(),
		}).Error("Failed to increment budget spent")
		return
	}

	if limit <= 0 {
		return
	}

	percent := spent / limit * 100
	switch {
	case percent >= exceededThresholdPercent:
		overage := spent - limit
		message := fmt.Sprintf("Budget limit exceeded by %.2f for %s!", overage, matched.Category)
		result.Message = message
		if err := s.notifier.Notify(ctx, req.UserID, message); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to create budget-exceeded notification")
		}
		if req.UserEmail != "" {
			if err := s.mailer.SendBudgetAlert(req.UserEmail, matched.Category, spent, limit); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Failed to send budget alert email")
			}
		}
	case percent >= warningThresholdPercent:
		message := fmt.Sprintf("Warning: You have used %.0f%% of your '%s' budget.", percent, matched.Category)
		if err := s.notifier.Notify(ctx, req.UserID, message); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to create budget-warning notification")
		}
	}
}

func (s *expenseService) GetExpenses(ctx context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.expenseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	expenses, err := repo.Expenses.GetExpensesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get expenses")
		return nil, err
	}

	return expenses, nil
}
