package budgetHandler

import (
	budgetService "SpendWise/internal/api/budget/service"
	"SpendWise/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budgets := srv.Group("/budgets")

	budgets.Post("/", h.middleware.NewTokenMiddleware, h.CreateBudget)
	budgets.Get("/", h.middleware.NewTokenMiddleware, h.GetBudgets)
	budgets.Get("/summary", h.middleware.NewTokenMiddleware, h.GetBudgetSummary)
	budgets.Get("/download-report", h.middleware.NewTokenMiddleware, h.ExportBudgetsCSV)
	budgets.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBudget)
	budgets.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBudget)
}
