package budgetService

import (
	"SpendWise/internal/api/budget"
	budgetRepository "SpendWise/internal/api/budget/repository"
	"SpendWise/internal/api/notification"
	"SpendWise/internal/entity"
	"SpendWise/pkg/utils"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type budgetStore struct {
	budgets []entity.Budget
}

func (s *budgetStore) CreateBudget(_ context.Context, b entity.Budget) error {
	s.budgets = append(s.budgets, b)
	return nil
}

func (s *budgetStore) GetBudgetsByUserID(_ context.Context, userID string) ([]entity.Budget, error) {
	var out []entity.Budget
	for _, b := range s.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *budgetStore) GetBudgetByID(_ context.Context, userID string, id string) (entity.Budget, error) {
	for _, b := range s.budgets {
		if b.UserID == userID && b.ID == id {
			return b, nil
		}
	}
	return entity.Budget{}, budget.ErrBudgetNotFound
}

func (s *budgetStore) GetBudgetByCategoryMonth(_ context.Context, userID string, category string, month string) (entity.Budget, bool, error) {
	for _, b := range s.budgets {
		if b.UserID == userID && b.Category == category && b.Month == month {
			return b, true, nil
		}
	}
	return entity.Budget{}, false, nil
}

func (s *budgetStore) UpdateBudget(_ context.Context, updated entity.Budget) error {
	for i, b := range s.budgets {
		if b.UserID == updated.UserID && b.ID == updated.ID {
			s.budgets[i] = updated
			return nil
		}
	}
	return budget.ErrBudgetNotFound
}

func (s *budgetStore) DeleteBudget(_ context.Context, userID string, id string) error {
	for i, b := range s.budgets {
		if b.UserID == userID && b.ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return nil
		}
	}
	return budget.ErrBudgetNotFound
}

func (s *budgetStore) AddSpent(_ context.Context, userID string, id string, amount float64) (float64, float64, error) {
	for i, b := range s.budgets {
		if b.UserID == userID && b.ID == id {
			s.budgets[i].Spent += amount
			return s.budgets[i].Spent, s.budgets[i].LimitAmount, nil
		}
	}
	return 0, 0, budget.ErrBudgetNotFound
}

type fakeBudgetRepo struct {
	store *budgetStore
}

func (f *fakeBudgetRepo) NewClient(bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{
		Budgets:  f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(_ context.Context, _ string, message string) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *recordingNotifier) CreateNotification(context.Context, notification.CreateNotificationRequest) (entity.Notification, error) {
	return entity.Notification{}, nil
}

func (r *recordingNotifier) GetNotifications(context.Context, string) ([]entity.Notification, error) {
	return nil, nil
}

func (r *recordingNotifier) MarkRead(context.Context, string, string) error      { return nil }
func (r *recordingNotifier) MarkAllRead(context.Context, string) error           { return nil }
func (r *recordingNotifier) DeleteNotification(context.Context, string, string) error {
	return nil
}
func (r *recordingNotifier) ClearAll(context.Context, string) error { return nil }

func newTestBudgetService() (IBudgetService, *budgetStore, *recordingNotifier) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := &budgetStore{}
	notifier := &recordingNotifier{}
	svc := NewBudgetService(logger, &fakeBudgetRepo{store: store}, notifier, utils.New())
	return svc, store, notifier
}

func TestCreateBudgetDefaultsToCurrentMonth(t *testing.T) {
	svc, store, notifier := newTestBudgetService()

	created, err := svc.CreateBudget(context.Background(), budget.CreateBudgetRequest{
		UserID:   "user-1",
		Category: "Food",
		Limit:    1000,
	})
	require.NoError(t, err)

	assert.Equal(t, utils.New().MonthLabel(time.Now()), created.Month)
	assert.Equal(t, 0.0, created.Spent)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, store.budgets, 1)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "New budget added for 'Food'")
}

func TestCreateBudgetRejectsDuplicate(t *testing.T) {
	svc, _, _ := newTestBudgetService()
	ctx := context.Background()

	_, err := svc.CreateBudget(ctx, budget.CreateBudgetRequest{
		UserID:   "user-1",
		Category: "Food",
		Limit:    1000,
		Month:    "2025-03",
	})
	require.NoError(t, err)

	_, err = svc.CreateBudget(ctx, budget.CreateBudgetRequest{
		UserID:   "user-1",
		Category: "Food",
		Limit:    500,
		Month:    "2025-03",
	})
	assert.ErrorIs(t, err, budget.ErrBudgetAlreadyExists)
}

func TestCreateBudgetAllowsSameCategoryDifferentMonth(t *testing.T) {
	svc, store, _ := newTestBudgetService()
	ctx := context.Background()

	_, err := svc.CreateBudget(ctx, budget.CreateBudgetRequest{
		UserID: "user-1", Category: "Food", Limit: 1000, Month: "2025-03",
	})
	require.NoError(t, err)

	_, err = svc.CreateBudget(ctx, budget.CreateBudgetRequest{
		UserID: "user-1", Category: "Food", Limit: 1000, Month: "2025-04",
	})
	require.NoError(t, err)
	assert.Len(t, store.budgets, 2)
}

func TestCreateBudgetValidation(t *testing.T) {
	svc, _, _ := newTestBudgetService()
	ctx := context.Background()

	_, err := svc.CreateBudget(ctx, budget.CreateBudgetRequest{
		UserID: "user-1", Category: "Groceries", Limit: 100,
	})
	assert.ErrorIs(t, err, budget.ErrInvalidCategory)

	_, err = svc.CreateBudget(ctx, budget.CreateBudgetRequest{
		UserID: "user-1", Category: "Food", Limit: -5,
	})
	assert.ErrorIs(t, err, budget.ErrInvalidLimit)
}

func TestGetBudgetSummary(t *testing.T) {
	svc, store, _ := newTestBudgetService()

	store.budgets = []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 1000, Spent: 850, Month: "2025-03"},
		{ID: "b2", UserID: "user-1", Category: "Travel", LimitAmount: 1000, Spent: 1050, Month: "2025-03"},
	}

	summary, err := svc.GetBudgetSummary(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, 85, summary[0].PercentUsed)
	assert.Equal(t, 150.0, summary[0].Remaining)

	// Overspent budgets clamp at 100% and never report negative remaining.
	assert.Equal(t, 100, summary[1].PercentUsed)
	assert.Equal(t, 0.0, summary[1].Remaining)
}

func TestGetBudgetSummaryEmpty(t *testing.T) {
	svc, _, _ := newTestBudgetService()

	_, err := svc.GetBudgetSummary(context.Background(), "user-1")
	assert.ErrorIs(t, err, budget.ErrNoBudgets)
}

func TestUpdateBudgetPartial(t *testing.T) {
	svc, store, _ := newTestBudgetService()

	store.budgets = []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 1000, Spent: 200, Month: "2025-03"},
	}

	newLimit := 1500.0
	updated, err := svc.UpdateBudget(context.Background(), "user-1", "b1", budget.UpdateBudgetRequest{
		Limit: &newLimit,
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, updated.LimitAmount)
	assert.Equal(t, "Food", updated.Category)
	assert.Equal(t, "2025-03", updated.Month)
	assert.Equal(t, 200.0, updated.Spent)
}

func TestUpdateBudgetNotFound(t *testing.T) {
	svc, _, _ := newTestBudgetService()

	_, err := svc.UpdateBudget(context.Background(), "user-1", "missing", budget.UpdateBudgetRequest{})
	assert.ErrorIs(t, err, budget.ErrBudgetNotFound)
}

func TestDeleteBudgetEmitsNotification(t *testing.T) {
	svc, store, notifier := newTestBudgetService()

	store.budgets = []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 1000, Month: "2025-03"},
	}

	require.NoError(t, svc.DeleteBudget(context.Background(), "user-1", "b1"))
	assert.Empty(t, store.budgets)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Budget for Food (2025-03) deleted.", notifier.messages[0])
}

func TestBuildCSVReport(t *testing.T) {
	svc, store, _ := newTestBudgetService()

	store.budgets = []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 1000, Spent: 250.5, Month: "2025-03"},
	}

	report, err := svc.BuildCSVReport(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Category,Limit,Spent,Month\nFood,1000,250.5,2025-03\n", string(report))
}

func TestBuildCSVReportEmpty(t *testing.T) {
	svc, _, _ := newTestBudgetService()

	_, err := svc.BuildCSVReport(context.Background(), "user-1")
	assert.ErrorIs(t, err, budget.ErrNoBudgets)
}
