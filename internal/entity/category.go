package entity

// Category is the single enumeration shared by budgets and expenses. A
// budget can only be set for a category an expense can record, and vice
// versa, so threshold matching never misses on label mismatches.
type Category string

const (
	CategoryFood     Category = "Food"
	CategoryTravel   Category = "Travel"
	CategoryShopping Category = "Shopping"
	CategoryBills    Category = "Bills"
	CategoryOthers   Category = "Others"
)

func IsValidCategory(category string) bool {
	switch Category(category) {
	case CategoryFood, CategoryTravel, CategoryShopping, CategoryBills, CategoryOthers:
		return true
	default:
		return false
	}
}

func Categories() []Category {
	return []Category{CategoryFood, CategoryTravel, CategoryShopping, CategoryBills, CategoryOthers}
}
