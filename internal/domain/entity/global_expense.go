// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlobalExpense is an agency-wide expense that is not attributable to any
// single vehicle. It contributes to aggregate expense totals but not to
// per-vehicle profitability.
type GlobalExpense struct {
	ID         uuid.UUID
	Label      string
	Amount     decimal.Decimal
	Date       time.Time
	CashDeskID *uuid.UUID
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGlobalExpense creates a new GlobalExpense entity.
func NewGlobalExpense(label string, amount decimal.Decimal, date time.Time, createdBy uuid.UUID) *GlobalExpense {
	now := time.Now().UTC()

	return &GlobalExpense{
		ID:        uuid.New(),
		Label:     label,
		Amount:    amount,
		Date:      date,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
