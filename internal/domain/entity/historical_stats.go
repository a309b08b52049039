// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoricalStats is the singleton accumulator for all prior, already
// closed accounting periods. It is mutated only by the period-close
// procedure and read by the financial aggregator as a carry-forward base.
type HistoricalStats struct {
	ID                  uuid.UUID
	AccumulatedRevenue  decimal.Decimal
	AccumulatedExpenses decimal.Decimal
	AccumulatedProfit   decimal.Decimal
	LastPurgeDate       *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewHistoricalStats creates the zero-valued accumulator.
func NewHistoricalStats() *HistoricalStats {
	now := time.Now().UTC()

	return &HistoricalStats{
		ID:                  uuid.New(),
		AccumulatedRevenue:  decimal.Zero,
		AccumulatedExpenses: decimal.Zero,
		AccumulatedProfit:   decimal.Zero,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
