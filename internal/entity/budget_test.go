package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetRemaining(t *testing.T) {
	b := Budget{LimitAmount: 1000, Spent: 250}
	assert.Equal(t, 750.0, b.Remaining())

	overspent := Budget{LimitAmount: 1000, Spent: 1200}
	assert.Equal(t, 0.0, overspent.Remaining())
}

func TestBudgetPercentUsed(t *testing.T) {
	tests := []struct {
		name  string
		limit float64
		spent float64
		want  int
	}{
		{"zero limit", 0, 500, 0},
		{"unused", 1000, 0, 0},
		{"warning band", 1000, 850, 85},
		{"rounds", 1000, 854, 85},
		{"rounds up", 1000, 855, 86},
		{"exactly full", 1000, 1000, 100},
		{"clamped when overspent", 1000, 1050, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Budget{LimitAmount: tt.limit, Spent: tt.spent}
			assert.Equal(t, tt.want, b.PercentUsed())
		})
	}
}

func TestBudgetRawPercentUsed(t *testing.T) {
	b := Budget{LimitAmount: 1000, Spent: 1050}
	assert.InDelta(t, 105.0, b.RawPercentUsed(), 0.001)

	zero := Budget{LimitAmount: 0, Spent: 500}
	assert.Equal(t, 0.0, zero.RawPercentUsed())
}
