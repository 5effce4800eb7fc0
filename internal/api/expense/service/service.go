package expenseService

import (
	budgetRepository "SpendWise/internal/api/budget/repository"
	"SpendWise/internal/api/expense"
	expenseRepository "SpendWise/internal/api/expense/repository"
	notificationService "SpendWise/internal/api/notification/service"
	"SpendWise/internal/entity"
	"SpendWise/pkg/smtp"
	"SpendWise/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IExpenseService interface {
	RecordExpense(ctx context.Context, req expense.RecordExpenseRequest) (expense.RecordExpenseResult, error)
	GetExpenses(ctx context.Context, userID string) ([]entity.Expense, error)
}

type expenseService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
	budgetRepository  budgetRepository.Repository
	notifier          notificationService.INotificationService
	mailer            smtp.ItfSmtp
	utils             utils.IUtils
}

func NewExpenseService(log *logrus.Logger, er expenseRepository.Repository, br budgetRepository.Repository, notifier notificationService.INotificationService, mailer smtp.ItfSmtp, utils utils.IUtils) IExpenseService {
	return &expenseService{
		log:               log,
		expenseRepository: er,
		budgetRepository:  br,
		notifier:          notifier,
		mailer:            mailer,
		utils:             utils,
	}
}
