package expenseRepository

import (
	"SpendWise/internal/entity"
	contextPkg "SpendWise/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ExpenseDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Category    sql.NullString  `db:"category"`
	Amount      sql.NullFloat64 `db:"amount"`
	Description sql.NullString  `db:"description"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *expenseRepository) CreateExpense(ctx context.Context, expense entity.Expense) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          expense.ID,
		"user_id":     expense.UserID,
		"category":    expense.Category,
		"amount":      expense.Amount,
		"description": expense.Description,
		"date":        expense.Date,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateExpense named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")
		return err
	}

	return nil
}

func (r *expenseRepository) GetExpensesByUserID(ctx context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var expenses []ExpenseDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetExpensesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &expenses, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetExpensesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, r.makeExpense(e))
	}

	return result, nil
}

func (r *expenseRepository) makeExpense(e ExpenseDB) entity.Expense {
	return entity.Expense{
		ID:          e.ID.String,
		UserID:      e.UserID.String,
		Category:    e.Category.String,
		Amount:      e.Amount.Float64,
		Description: e.Description.String,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
