package budget

type CreateBudgetRequest struct {
	UserID   string  `json:"-"`
	Category string  `json:"category" validate:"required"`
	Limit    float64 `json:"limit" validate:"gte=0"`
	Month    string  `json:"month"`
}

type UpdateBudgetRequest struct {
	Category string   `json:"category"`
	Limit    *float64 `json:"limit"`
	Month    string   `json:"month"`
}

type BudgetResponse struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Month     string  `json:"month"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type BudgetSummaryRow struct {
	Category    string  `json:"category"`
	Limit       float64 `json:"limit"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed int     `json:"percentUsed"`
	Month       string  `json:"month"`
}
