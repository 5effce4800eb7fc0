package expense

type RecordExpenseRequest struct {
	UserID      string  `json:"-"`
	UserEmail   string  `json:"-"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

// RecordExpenseResult carries the persisted expense plus the message shown
// to the user, which the exceeded-budget path overrides.
type RecordExpenseResult struct {
	Expense ExpenseResponse `json:"expense"`
	Message string          `json:"message"`
}
