package budgetService

import (
	"SpendWise/internal/api/budget"
	"SpendWise/internal/entity"
	contextPkg "SpendWise/pkg/context"
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Budget{}, err
	}

	if !entity.IsValidCategory(req.Category) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Invalid budget category")
		return entity.Budget{}, budget.ErrInvalidCategory
	}

	if req.Limit < 0 {
		return entity.Budget{}, budget.ErrInvalidLimit
	}

	month := req.Month
	if month == "" {
		month = s.utils.MonthLabel(time.Now())
	}

	_, found, err := repo.Budgets.GetBudgetByCategoryMonth(ctx, req.UserID, req.Category, month)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check for existing budget")
		return entity.Budget{}, err
	}
	if found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
			"month":      month,
		}).Warn("Budget already exists for category and month")
		return entity.Budget{}, budget.ErrBudgetAlreadyExists
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Budget{}, err
	}

	newBudget := entity.Budget{
		ID:          ULID,
		UserID:      req.UserID,
		Category:    req.Category,
		LimitAmount: req.Limit,
		Spent:       0,
		Month:       month,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Budgets.CreateBudget(ctx, newBudget); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create budget")
		return entity.Budget{}, err
	}

	// Best effort, the budget is already persisted.
	message := fmt.Sprintf("New budget added for '%s' (%s): %.2f", newBudget.Category, newBudget.Month, newBudget.LimitAmount)
	if err := s.notifier.Notify(ctx, req.UserID, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create budget-set notification")
	}

	return newBudget, nil
}

func (s *budgetService) GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	budgets, err := repo.Budgets.GetBudgetsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get budgets")
		return nil, err
	}

	return budgets, nil
}

func (s *budgetService) GetBudgetSummary(ctx context.Context, userID string) ([]budget.BudgetSummaryRow, error) {
	budgets, err := s.GetBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(budgets) == 0 {
		return nil, budget.ErrNoBudgets
	}

	summary := make([]budget.BudgetSummaryRow, 0, len(budgets))
	for _, b := range budgets {
		summary = append(summary, budget.BudgetSummaryRow{
			Category:    b.Category,
			Limit:       b.LimitAmount,
			Spent:       b.Spent,
			Remaining:   b.Remaining(),
			PercentUsed: b.PercentUsed(),
			Month:       b.Month,
		})
	}

	return summary, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID string, id string, req budget.UpdateBudgetRequest) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Budget{}, err
	}

	existing, err := repo.Budgets.GetBudgetByID(ctx, userID, id)
	if err != nil {
		return entity.Budget{}, err
	}

	// Partial update, omitted fields keep their stored values.
	if req.Category != "" {
		if !entity.IsValidCategory(req.Category) {
			return entity.Budget{}, budget.ErrInvalidCategory
		}
		existing.Category = req.Category
	}
	if req.Limit != nil {
		if *req.Limit < 0 {
			return entity.Budget{}, budget.ErrInvalidLimit
		}
		existing.LimitAmount = *req.Limit
	}
	if req.Month != "" {
		existing.Month = req.Month
	}

	if err := repo.Budgets.UpdateBudget(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update budget")
		return entity.Budget{}, err
	}

	return existing, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	deleted, err := repo.Budgets.GetBudgetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := repo.Budgets.DeleteBudget(ctx, userID, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete budget")
		return err
	}

	message := fmt.Sprintf("Budget for %s (%s) deleted.", deleted.Category, deleted.Month)
	if err := s.notifier.Notify(ctx, userID, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create budget-deleted notification")
	}

	return nil
}

func (s *budgetService) BuildCSVReport(ctx context.Context, userID string) ([]byte, error) {
	budgets, err := s.GetBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(budgets) == 0 {
		return nil, budget.ErrNoBudgets
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Category", "Limit", "Spent", "Month"}); err != nil {
		return nil, err
	}

	for _, b := range budgets {
		record := []string{
			b.Category,
			strconv.FormatFloat(b.LimitAmount, 'f', -1, 64),
			strconv.FormatFloat(b.Spent, 'f', -1, 64),
			b.Month,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
