package reportService

import (
	"SpendWise/internal/api/budget"
	budgetRepository "SpendWise/internal/api/budget/repository"
	"SpendWise/internal/api/report"
	reportRepository "SpendWise/internal/api/report/repository"
	"SpendWise/internal/entity"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type reportStore struct {
	categoryTotals      []reportRepository.CategoryTotalRow
	monthlyTotals       []reportRepository.MonthlyTotalRow
	categoryMonthTotals []reportRepository.CategoryMonthTotalRow
}

func (s *reportStore) GetCategoryTotals(context.Context, string) ([]reportRepository.CategoryTotalRow, error) {
	return s.categoryTotals, nil
}

func (s *reportStore) GetMonthlyTotals(context.Context, string) ([]reportRepository.MonthlyTotalRow, error) {
	return s.monthlyTotals, nil
}

func (s *reportStore) GetCategoryMonthTotals(context.Context, string) ([]reportRepository.CategoryMonthTotalRow, error) {
	return s.categoryMonthTotals, nil
}

type fakeReportRepo struct {
	store *reportStore
}

func (f *fakeReportRepo) NewClient() reportRepository.Client {
	return reportRepository.Client{Reports: f.store}
}

type budgetStore struct {
	budgets []entity.Budget
}

func (s *budgetStore) CreateBudget(_ context.Context, b entity.Budget) error {
	s.budgets = append(s.budgets, b)
	return nil
}

func (s *budgetStore) GetBudgetsByUserID(_ context.Context, userID string) ([]entity.Budget, error) {
	return s.budgets, nil
}

func (s *budgetStore) GetBudgetByID(context.Context, string, string) (entity.Budget, error) {
	return entity.Budget{}, budget.ErrBudgetNotFound
}

func (s *budgetStore) GetBudgetByCategoryMonth(context.Context, string, string, string) (entity.Budget, bool, error) {
	return entity.Budget{}, false, nil
}

func (s *budgetStore) UpdateBudget(context.Context, entity.Budget) error { return nil }

func (s *budgetStore) DeleteBudget(context.Context, string, string) error { return nil }

func (s *budgetStore) AddSpent(context.Context, string, string, float64) (float64, float64, error) {
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

func newReportFixture() (IReportService, *reportStore, *budgetStore) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	reports := &reportStore{}
	budgets := &budgetStore{}
	svc := NewReportService(logger, &fakeReportRepo{store: reports}, &fakeBudgetRepo{store: budgets})
	return svc, reports, budgets
}

func TestGetCategorySummary(t *testing.T) {
	svc, reports, _ := newReportFixture()
	reports.categoryTotals = []reportRepository.CategoryTotalRow{
		{Category: "Food", Total: 320},
		{Category: "Bills", Total: 120},
	}

	summary, err := svc.GetCategorySummary(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, report.CategoryTotal{Category: "Food", Total: 320}, summary[0])
}

func TestGetMonthlySummaryFormatsMonths(t *testing.T) {
	svc, reports, _ := newReportFixture()
	reports.monthlyTotals = []reportRepository.MonthlyTotalRow{
		{Year: 2025, Month: 1, Total: 500},
		{Year: 2025, Month: 3, Total: 750},
	}

	summary, err := svc.GetMonthlySummary(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "January 2025", summary[0].Month)
	assert.Equal(t, "March 2025", summary[1].Month)
}

func TestGetBudgetStatusLifetimeScope(t *testing.T) {
	svc, reports, budgets := newReportFixture()

	budgets.budgets = []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 1000, Month: "2025-03"},
		{ID: "b2", UserID: "user-1", Category: "Travel", LimitAmount: 500, Month: "2025-03"},
	}
	reports.categoryTotals = []reportRepository.CategoryTotalRow{
		{Category: "Food", Total: 850},
	}

	status, err := svc.GetBudgetStatus(context.Background(), "user-1", report.ScopeLifetime)
	require.NoError(t, err)
	require.Len(t, status, 2)

	assert.Equal(t, 850.0, status[0].Spent)
	assert.Equal(t, 150.0, status[0].Remaining)
	assert.Equal(t, 85, status[0].PercentUsed)

	// No expenses in that category at all.
	assert.Equal(t, 0.0, status[1].Spent)
	assert.Equal(t, 500.0, status[1].Remaining)
}

func TestGetBudgetStatusMonthScope(t *testing.T) {
	svc, reports, budgets := newReportFixture()

	budgets.budgets = []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 1000, Month: "2025-03"},
	}
	reports.categoryMonthTotals = []reportRepository.CategoryMonthTotalRow{
		{Category: "Food", Month: "2025-03", Total: 400},
		{Category: "Food", Month: "2025-02", Total: 999},
	}

	status, err := svc.GetBudgetStatus(context.Background(), "user-1", report.ScopeMonth)
	require.NoError(t, err)
	require.Len(t, status, 1)

	// Only the budget's own month counts under month scope.
	assert.Equal(t, 400.0, status[0].Spent)
	assert.Equal(t, 600.0, status[0].Remaining)
}

func TestGetCombinedReport(t *testing.T) {
	svc, reports, budgets := newReportFixture()

	budgets.budgets = []entity.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", LimitAmount: 1000, Month: "2025-03"},
		{ID: "b2", UserID: "user-1", Category: "Bills", LimitAmount: 500, Month: "2025-03"},
	}
	reports.categoryTotals = []reportRepository.CategoryTotalRow{
		{Category: "Food", Total: 600},
		{Category: "Bills", Total: 100},
	}

	combined, err := svc.GetCombinedReport(context.Background(), "user-1", report.ScopeLifetime)
	require.NoError(t, err)

	assert.Equal(t, 1500.0, combined.TotalBudget)
	assert.Equal(t, 700.0, combined.TotalSpent)
	assert.Equal(t, 800.0, combined.Remaining)
	assert.Len(t, combined.Data, 2)
}

func TestIsValidScope(t *testing.T) {
	assert.True(t, report.IsValidScope("lifetime"))
	assert.True(t, report.IsValidScope("month"))
	assert.False(t, report.IsValidScope("weekly"))
	assert.False(t, report.IsValidScope(""))
}
