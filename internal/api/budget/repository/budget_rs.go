package budgetRepository

import (
	"SpendWise/internal/api/budget"
	"SpendWise/internal/entity"
	contextPkg "SpendWise/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BudgetDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Category    sql.NullString  `db:"category"`
	LimitAmount sql.NullFloat64 `db:"limit_amount"`
	Spent       sql.NullFloat64 `db:"spent"`
	Month       sql.NullString  `db:"month"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *budgetRepository) CreateBudget(ctx context.Context, budgetEntity entity.Budget) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           budgetEntity.ID,
		"user_id":      budgetEntity.UserID,
		"category":     budgetEntity.Category,
		"limit_amount": budgetEntity.LimitAmount,
		"spent":        budgetEntity.Spent,
		"month":        budgetEntity.Month,
		"created_at":   time.Now(),
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBudget named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")
		return err
	}

	return nil
}

func (r *budgetRepository) GetBudgetsByUserID(ctx context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var budgets []BudgetDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBudgetsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &budgets, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, r.makeBudget(b))
	}

	return result, nil
}

func (r *budgetRepository) GetBudgetByID(ctx context.Context, userID string, id string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var budgetRow BudgetDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBudgetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByID named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&budgetRow); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetBudgetByID no rows found")
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByID execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(budgetRow), nil
}

func (r *budgetRepository) GetBudgetByCategoryMonth(ctx context.Context, userID string, category string, month string) (entity.Budget, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var budgetRow BudgetDB

	argsKV := map[string]interface{}{
		"user_id":  userID,
		"category": category,
		"month":    month,
	}

	query, args, err := sqlx.Named(queryGetBudgetByCategoryMonth, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByCategoryMonth named query preparation err")
		return entity.Budget{}, false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&budgetRow); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Budget{}, false, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBudgetByCategoryMonth execution err")
		return entity.Budget{}, false, err
	}

	return r.makeBudget(budgetRow), true, nil
}

func (r *budgetRepository) UpdateBudget(ctx context.Context, budgetEntity entity.Budget) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           budgetEntity.ID,
		"user_id":      budgetEntity.UserID,
		"category":     budgetEntity.Category,
		"limit_amount": budgetEntity.LimitAmount,
		"month":        budgetEntity.Month,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateBudget no rows affected")
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) DeleteBudget(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteBudget no rows affected")
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) AddSpent(ctx context.Context, userID string, id string, amount float64) (float64, float64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"user_id":    userID,
		"amount":     amount,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryAddSpent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddSpent named query preparation err")
		return 0, 0, err
	}

	query = r.q.Rebind(query)

	var row struct {
		Spent       float64 `db:"spent"`
		LimitAmount float64 `db:"limit_amount"`
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("AddSpent no rows found")
			return 0, 0, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddSpent execution err")
		return 0, 0, err
	}

	return row.Spent, row.LimitAmount, nil
}

func (r *budgetRepository) makeBudget(b BudgetDB) entity.Budget {
	return entity.Budget{
		ID:          b.ID.String,
		UserID:      b.UserID.String,
		Category:    b.Category.String,
		LimitAmount: b.LimitAmount.Float64,
		Spent:       b.Spent.Float64,
		Month:       b.Month.String,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
