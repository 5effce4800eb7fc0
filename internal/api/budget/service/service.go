package budgetService

import (
	"SpendWise/internal/api/budget"
	budgetRepository "SpendWise/internal/api/budget/repository"
	notificationService "SpendWise/internal/api/notification/service"
	"SpendWise/internal/entity"
	"SpendWise/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) (entity.Budget, error)
	GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error)
	GetBudgetSummary(ctx context.Context, userID string) ([]budget.BudgetSummaryRow, error)
	UpdateBudget(ctx context.Context, userID string, id string, req budget.UpdateBudgetRequest) (entity.Budget, error)
	DeleteBudget(ctx context.Context, userID string, id string) error
	BuildCSVReport(ctx context.Context, userID string) ([]byte, error)
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	notifier         notificationService.INotificationService
	utils            utils.IUtils
}

func NewBudgetService(
	log *logrus.Logger,
	br budgetRepository.Repository,
	notifier notificationService.INotificationService,
	utils utils.IUtils,
) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		notifier:         notifier,
		utils:            utils,
	}
}
