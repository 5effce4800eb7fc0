package budgetRepository

import (
	"SpendWise/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Budgets:  &budgetRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Budgets interface {
		CreateBudget(ctx context.Context, budget entity.Budget) error
		GetBudgetsByUserID(ctx context.Context, userID string) ([]entity.Budget, error)
		GetBudgetByID(ctx context.Context, userID string, id string) (entity.Budget, error)
		// GetBudgetByCategoryMonth reports found=false when no budget is
		// set; that is not an error condition.
		GetBudgetByCategoryMonth(ctx context.Context, userID string, category string, month string) (entity.Budget, bool, error)
		UpdateBudget(ctx context.Context, budget entity.Budget) error
		DeleteBudget(ctx context.Context, userID string, id string) error
		// AddSpent increments spent atomically in the store and returns
		// the resulting spent and limit values.
		AddSpent(ctx context.Context, userID string, id string, amount float64) (spent float64, limit float64, err error)
	}

	Commit   func() error
	Rollback func() error
}

type budgetRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
