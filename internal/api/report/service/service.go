package reportService

import (
	budgetRepository "SpendWise/internal/api/budget/repository"
	"SpendWise/internal/api/report"
	reportRepository "SpendWise/internal/api/report/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IReportService interface {
	GetCategorySummary(ctx context.Context, userID string) ([]report.CategoryTotal, error)
	GetMonthlySummary(ctx context.Context, userID string) ([]report.MonthlyTotal, error)
	GetBudgetStatus(ctx context.Context, userID string, scope report.SpendScope) ([]report.BudgetStatusRow, error)
	GetCombinedReport(ctx context.Context, userID string, scope report.SpendScope) (report.CombinedReport, error)
}

type reportService struct {
	log              *logrus.Logger
	reportRepository reportRepository.Repository
	budgetRepository budgetRepository.Repository
}

func NewReportService(log *logrus.Logger, rr reportRepository.Repository, br budgetRepository.Repository) IReportService {
	return &reportService{
		log:              log,
		reportRepository: rr,
		budgetRepository: br,
	}
}
