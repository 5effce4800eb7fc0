package reportRepository

import (
	contextPkg "SpendWise/pkg/context"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *reportRepository) GetCategoryTotals(ctx context.Context, userID string) ([]CategoryTotalRow, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CategoryTotalRow

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryCategoryTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryTotals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryTotals execution err")
		return nil, err
	}

	return rows, nil
}

func (r *reportRepository) GetMonthlyTotals(ctx context.Context, userID string) ([]MonthlyTotalRow, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []MonthlyTotalRow

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryMonthlyTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMonthlyTotals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMonthlyTotals execution err")
		return nil, err
	}

	return rows, nil
}

func (r *reportRepository) GetCategoryMonthTotals(ctx context.Context, userID string) ([]CategoryMonthTotalRow, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CategoryMonthTotalRow

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryCategoryMonthTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryMonthTotals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryMonthTotals execution err")
		return nil, err
	}

	return rows, nil
}
