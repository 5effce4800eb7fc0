package reportService

import (
	"SpendWise/internal/api/report"
	"SpendWise/internal/entity"
	contextPkg "SpendWise/pkg/context"
	"SpendWise/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *reportService) GetCategorySummary(ctx context.Context, userID string) ([]report.CategoryTotal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	rows, err := s.reportRepository.NewClient().Reports.GetCategoryTotals(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get category totals")
		return nil, err
	}

	totals := make([]report.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, report.CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
		})
	}

	return totals, nil
}

func (s *reportService) GetMonthlySummary(ctx context.Context, userID string) ([]report.MonthlyTotal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	rows, err := s.reportRepository.NewClient().Reports.GetMonthlyTotals(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get monthly totals")
		return nil, err
	}

	totals := make([]report.MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, report.MonthlyTotal{
			Month: utils.DisplayMonth(row.Year, row.Month),
			Total: row.Total,
		})
	}

	return totals, nil
}

func (s *reportService) GetBudgetStatus(ctx context.Context, userID string, scope report.SpendScope) ([]report.BudgetStatusRow, error) {
	requestID := contextPkg.GetRequestID(ctx)

	budgetRepo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	budgets, err := budgetRepo.Budgets.GetBudgetsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get budgets")
		return nil, err
	}

	spentFor, err := s.spentLookup(ctx, userID, scope)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to aggregate expenses for budget status")
		return nil, err
	}

	status := make([]report.BudgetStatusRow, 0, len(budgets))
	for _, b := range budgets {
		// Reuse the budget arithmetic so clamping matches summaries.
		derived := entity.Budget{LimitAmount: b.LimitAmount, Spent: spentFor(b)}
		status = append(status, report.BudgetStatusRow{
			Category:    b.Category,
			Budget:      b.LimitAmount,
			Spent:       derived.Spent,
			Remaining:   derived.Remaining(),
			PercentUsed: derived.PercentUsed(),
		})
	}

	return status, nil
}

// spentLookup returns a function mapping a budget to the expense total it
// is charged with under the given scope.
func (s *reportService) spentLookup(ctx context.Context, userID string, scope report.SpendScope) (func(entity.Budget) float64, error) {
	reports := s.reportRepository.NewClient().Reports

	if scope == report.ScopeMonth {
		rows, err := reports.GetCategoryMonthTotals(ctx, userID)
		if err != nil {
			return nil, err
		}

		type key struct{ category, month string }
		totals := make(map[key]float64, len(rows))
		for _, row := range rows {
			totals[key{row.Category, row.Month}] = row.Total
		}

		return func(b entity.Budget) float64 {
			return totals[key{b.Category, b.Month}]
		}, nil
	}

	rows, err := reports.GetCategoryTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Category] = row.Total
	}

	return func(b entity.Budget) float64 {
		return totals[b.Category]
	}, nil
}

func (s *reportService) GetCombinedReport(ctx context.Context, userID string, scope report.SpendScope) (report.CombinedReport, error) {
	status, err := s.GetBudgetStatus(ctx, userID, scope)
	if err != nil {
		return report.CombinedReport{}, err
	}

	combined := report.CombinedReport{Data: status}
	for _, row := range status {
		combined.TotalBudget += row.Budget
		combined.TotalSpent += row.Spent
	}
	combined.Remaining = combined.TotalBudget - combined.TotalSpent
	if combined.Remaining < 0 {
		combined.Remaining = 0
	}

	return combined, nil
}
