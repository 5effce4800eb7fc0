package reportRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
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
	NewClient() Client
}

func (r *repository) NewClient() Client {
	return Client{
		Reports: &reportRepository{q: r.DB, log: r.log},
	}
}

// CategoryTotalRow is a per-category expense aggregate.
type CategoryTotalRow struct {
	Category string  `db:"category"`
	Total    float64 `db:"total"`
}

// MonthlyTotalRow is a per-calendar-month expense aggregate.
type MonthlyTotalRow struct {
	Year  int     `db:"year"`
	Month int     `db:"month"`
	Total float64 `db:"total"`
}

// CategoryMonthTotalRow is a per-category aggregate keyed by the canonical
// month label, used for month-scoped budget-status reports.
type CategoryMonthTotalRow struct {
	Category string  `db:"category"`
	Month    string  `db:"month"`
	Total    float64 `db:"total"`
}

type Client struct {
	Reports interface {
		GetCategoryTotals(ctx context.Context, userID string) ([]CategoryTotalRow, error)
		GetMonthlyTotals(ctx context.Context, userID string) ([]MonthlyTotalRow, error)
		GetCategoryMonthTotals(ctx context.Context, userID string) ([]CategoryMonthTotalRow, error)
	}
}

type reportRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
