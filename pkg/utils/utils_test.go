package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthLabel(t *testing.T) {
	u := New()

	label := u.MonthLabel(time.Date(2025, time.March, 7, 13, 4, 0, 0, time.UTC))
	assert.Equal(t, "2025-03", label)

	label = u.MonthLabel(time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2025-12", label)
}

func TestDisplayMonth(t *testing.T) {
	assert.Equal(t, "January 2025", DisplayMonth(2025, 1))
	assert.Equal(t, "December 2024", DisplayMonth(2024, 12))
	assert.Equal(t, "Unknown 2025", DisplayMonth(2025, 13))
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone(""))
	assert.True(t, IsValidPhone("0812345678"))
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("081234567x"))
	assert.False(t, IsValidPhone("08123456789"))
}
