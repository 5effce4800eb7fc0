package expenseService

import (
	"SpendWise/internal/api/budget"
	budgetRepository "SpendWise/internal/api/budget/repository"
	"SpendWise/internal/api/expense"
	expenseRepository "SpendWise/internal/api/expense/repository"
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

type expenseStore struct {
	expenses []entity.Expense
}

func (s *expenseStore) CreateExpense(_ context.Context, e entity.Expense) error {
	s.expenses = append(s.expenses, e)
	return nil
}

func (s *expenseStore) GetExpensesByUserID(_ context.Context, userID string) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, e := range s.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeExpenseRepo struct {
	store *expenseStore
}

func (f *fakeExpenseRepo) NewClient(bool) (expenseRepository.Client, error) {
	return expenseRepository.Client{
		Expenses: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
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
		if b.ID == updated.ID {
			s.budgets[i] = updated
			return nil
		}
	}
	return budget.ErrBudgetNotFound
}

func (s *budgetStore) DeleteBudget(_ context.Context, userID string, id string) error {
	return nil
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

func (r *recordingNotifier) MarkRead(context.Context, string, string) error { return nil }
func (r *recordingNotifier) MarkAllRead(context.Context, string) error      { return nil }
func (r *recordingNotifier) DeleteNotification(context.Context, string, string) error {
	return nil
}
func (r *recordingNotifier) ClearAll(context.Context, string) error { return nil }

type recordingMailer struct {
	alerts int
}

func (m *recordingMailer) SendBudgetAlert(string, string, float64, float64) error {
	m.alerts++
	return nil
}

type expenseFixture struct {
	svc      IExpenseService
	expenses *expenseStore
	budgets  *budgetStore
	notifier *recordingNotifier
	mailer   *recordingMailer
}

func newExpenseFixture() *expenseFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	expenses := &expenseStore{}
	budgets := &budgetStore{}
	notifier := &recordingNotifier{}
	mailer := &recordingMailer{}

	svc := NewExpenseService(logger,
		&fakeExpenseRepo{store: expenses},
		&fakeBudgetRepo{store: budgets},
		notifier, mailer, utils.New())

	return &expenseFixture{svc: svc, expenses: expenses, budgets: budgets, notifier: notifier, mailer: mailer}
}

func currentMonthBudget(id string, limit float64, spent float64) entity.Budget {
	return entity.Budget{
		ID:          id,
		UserID:      "user-1",
		Category:    "Food",
		LimitAmount: limit,
		Spent:       spent,
		Month:       utils.New().MonthLabel(time.Now()),
	}
}

func TestRecordExpenseWithoutBudget(t *testing.T) {
	f := newExpenseFixture()

	result, err := f.svc.RecordExpense(context.Background(), expense.RecordExpenseRequest{
		UserID:   "user-1",
		Category: "Food",
		Amount:   25,
	})
	require.NoError(t, err)

	assert.Equal(t, "Expense added successfully", result.Message)
	assert.Len(t, f.expenses.expenses, 1)

	// One advisory that no budget covers the category, plus the generic
	// expense notification.
	require.Len(t, f.notifier.messages, 2)
	assert.Contains(t, f.notifier.messages[0], "No budget set for 'Food'")
	assert.Contains(t, f.notifier.messages[1], "New expense added: Food - 25.00")
	assert.Zero(t, f.mailer.alerts)
}

func TestRecordExpenseCrossesWarningThreshold(t *testing.T) {
	f := newExpenseFixture()
	f.budgets.budgets = []entity.Budget{currentMonthBudget("b1", 1000, 750)}

	result, err := f.svc.RecordExpense(context.Background(), expense.RecordExpenseRequest{
		UserID:   "user-1",
		Category: "Food",
		Amount:   100,
	})
	require.NoError(t, err)

	assert.Equal(t, "Expense added successfully", result.Message)
	assert.Equal(t, 850.0, f.budgets.budgets[0].Spent)

	require.Len(t, f.notifier.messages, 2)
	assert.Contains(t, f.notifier.messages[0], "used 85% of your 'Food' budget")
	assert.Zero(t, f.mailer.alerts)
}

func TestRecordExpenseExceedsBudget(t *testing.T) {
	f := newExpenseFixture()
	f.budgets.budgets = []entity.Budget{currentMonthBudget("b1", 1000, 900)}

	result, err := f.svc.RecordExpense(context.Background(), expense.RecordExpenseRequest{
		UserID:    "user-1",
		UserEmail: "user@example.com",
		Category:  "Food",
		Amount:    150,
	})
	require.NoError(t, err)

	// The exceeded message replaces the default success message.
	assert.Equal(t, "Budget limit exceeded by 50.00 for Food!", result.Message)
	assert.Equal(t, 1050.0, f.budgets.budgets[0].Spent)
	assert.Equal(t, 1, f.mailer.alerts)

	require.Len(t, f.notifier.messages, 2)
	assert.Equal(t, "Budget limit exceeded by 50.00 for Food!", f.notifier.messages[0])
}

func TestRecordExpenseExactlyAtLimit(t *testing.T) {
	f := newExpenseFixture()
	f.budgets.budgets = []entity.Budget{currentMonthBudget("b1", 1000, 900)}

	result, err := f.svc.RecordExpense(context.Background(), expense.RecordExpenseRequest{
		UserID:   "user-1",
		Category: "Food",
		Amount:   100,
	})
	require.NoError(t, err)

	// Reaching 100% counts as exceeded with zero overage.
	assert.Equal(t, "Budget limit exceeded by 0.00 for Food!", result.Message)
}

func TestRecordExpenseInvalidInput(t *testing.T) {
	f := newExpenseFixture()
	ctx := context.Background()

	_, err := f.svc.RecordExpense(ctx, expense.RecordExpenseRequest{
		UserID: "user-1", Category: "Groceries", Amount: 10,
	})
	assert.ErrorIs(t, err, expense.ErrInvalidCategory)

	_, err = f.svc.RecordExpense(ctx, expense.RecordExpenseRequest{
		UserID: "user-1", Category: "Food", Amount: -1,
	})
	assert.ErrorIs(t, err, expense.ErrInvalidAmount)

	_, err = f.svc.RecordExpense(ctx, expense.RecordExpenseRequest{
		UserID: "user-1", Category: "Food", Amount: 10, Date: "03/07/2025",
	})
	assert.ErrorIs(t, err, expense.ErrInvalidDate)

	assert.Empty(t, f.expenses.expenses)
	assert.Empty(t, f.notifier.messages)
}

func TestRecordExpenseParsesDate(t *testing.T) {
	f := newExpenseFixture()

	result, err := f.svc.RecordExpense(context.Background(), expense.RecordExpenseRequest{
		UserID:   "user-1",
		Category: "Food",
		Amount:   10,
		Date:     "2025-03-07",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-07", result.Expense.Date)
	assert.Equal(t, "2025-03-07", f.expenses.expenses[0].Date.Format("2006-01-02"))
}

func TestRecordExpenseMatchesBudgetByExpenseMonth(t *testing.T) {
	f := newExpenseFixture()

	// Budget exists for March only; a dated March expense must charge it
	// even when recorded later.
	b := currentMonthBudget("b1", 1000, 0)
	b.Month = "2025-03"
	f.budgets.budgets = []entity.Budget{b}

	_, err := f.svc.RecordExpense(context.Background(), expense.RecordExpenseRequest{
		UserID:   "user-1",
		Category: "Food",
		Amount:   200,
		Date:     "2025-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, f.budgets.budgets[0].Spent)
}

func TestGetExpenses(t *testing.T) {
	f := newExpenseFixture()
	f.expenses.expenses = []entity.Expense{
		{ID: "e1", UserID: "user-1", Category: "Food", Amount: 10},
		{ID: "e2", UserID: "user-2", Category: "Bills", Amount: 20},
	}

	expenses, err := f.svc.GetExpenses(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "e1", expenses[0].ID)
}
