package notificationRepository

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
		Notifications: &notificationRepository{q: sqlExecutor, log: r.log},
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Notifications interface {
		CreateNotification(ctx context.Context, notification entity.Notification) error
		GetNotificationsByUserID(ctx context.Context, userID string) ([]entity.Notification, error)
		MarkRead(ctx context.Context, userID string, id string) error
		MarkAllRead(ctx context.Context, userID string) error
		DeleteNotification(ctx context.Context, userID string, id string) error
		ClearAll(ctx context.Context, userID string) error
	}

	Commit   func() error
	Rollback func() error
}

type notificationRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
