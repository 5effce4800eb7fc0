package entity

import (
	"SpendWise/internal/api/expense"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{Category: "Food", Amount: 25.5}
	assert.NoError(t, valid.Validate())

	badCategory := Expense{Category: "Groceries", Amount: 10}
	assert.ErrorIs(t, badCategory.Validate(), expense.ErrInvalidCategory)

	negative := Expense{Category: "Food", Amount: -1}
	assert.ErrorIs(t, negative.Validate(), expense.ErrInvalidAmount)

	longDescription := Expense{
		Category:    "Food",
		Amount:      10,
		Description: strings.Repeat("x", MaxExpenseDescriptionLength+1),
	}
	assert.ErrorIs(t, longDescription.Validate(), expense.ErrDescriptionTooLong)
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, IsValidCategory(string(category)))
	}

	assert.False(t, IsValidCategory("food"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Rent"))
}

func TestNotificationPreview(t *testing.T) {
	short := Notification{Message: "Budget set"}
	assert.Equal(t, "Budget set", short.Preview())

	long := Notification{Message: strings.Repeat("a", 80)}
	assert.Equal(t, strings.Repeat("a", 50)+"...", long.Preview())
}
