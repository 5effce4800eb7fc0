package report

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// SpendScope selects which expenses count against each budget in the
// budget-status report. Lifetime matches the historical behavior of
// summing a category across all time; month restricts sums to the
// budget's own month.
type SpendScope string

const (
	ScopeLifetime SpendScope = "lifetime"
	ScopeMonth    SpendScope = "month"
)

func IsValidScope(scope string) bool {
	switch SpendScope(scope) {
	case ScopeLifetime, ScopeMonth:
		return true
	default:
		return false
	}
}

type BudgetStatusRow struct {
	Category    string  `json:"category"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed int     `json:"percentUsed"`
}

type CombinedReport struct {
	Data        []BudgetStatusRow `json:"data"`
	TotalBudget float64           `json:"totalBudget"`
	TotalSpent  float64           `json:"totalSpent"`
	Remaining   float64           `json:"remaining"`
}
