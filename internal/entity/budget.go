package entity

import (
	"math"
	"time"
)

type Budget struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Category    string    `db:"category"`
	LimitAmount float64   `db:"limit_amount"`
	Spent       float64   `db:"spent"`
	Month       string    `db:"month"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Remaining never reports a negative balance even when overspent.
func (b *Budget) Remaining() float64 {
	remaining := b.LimitAmount - b.Spent
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PercentUsed is the client-facing figure, rounded and clamped to [0,100].
// Threshold decisions must use RawPercentUsed instead.
func (b *Budget) PercentUsed() int {
	raw := b.RawPercentUsed()
	percent := int(math.Round(raw))
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// RawPercentUsed is unclamped and may exceed 100. A zero limit reports 0.
func (b *Budget) RawPercentUsed() float64 {
	if b.LimitAmount == 0 {
		return 0
	}
	return b.Spent / b.LimitAmount * 100
}
