package entity

import (
	"SpendWise/internal/api/expense"
	"time"
)

const MaxExpenseDescriptionLength = 200

type Expense struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Category    string    `db:"category"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (e *Expense) Validate() error {
	if !IsValidCategory(e.Category) {
		return expense.ErrInvalidCategory
	}

	if e.Amount < 0 {
		return expense.ErrInvalidAmount
	}

	if len(e.Description) > MaxExpenseDescriptionLength {
		return expense.ErrDescriptionTooLong
	}

	return nil
}
