package reportHandler

import (
	reportService "SpendWise/internal/api/report/service"
	"SpendWise/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	reportService reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		reportService: reportService,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	reports := srv.Group("/reports")

	reports.Get("/category-summary", h.middleware.NewTokenMiddleware, h.GetCategorySummary)
	reports.Get("/monthly-summary", h.middleware.NewTokenMiddleware, h.GetMonthlySummary)
	reports.Get("/budget-status", h.middleware.NewTokenMiddleware, h.GetBudgetStatus)
	reports.Get("/", h.middleware.NewTokenMiddleware, h.GetCombinedReport)
}
