// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashDesk holds the running balance of one user. Exactly one desk exists
// per user, created alongside the user. Balances may go negative; there is
// no overdraft prevention.
type CashDesk struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCashDesk creates a new CashDesk with a zero balance.
func NewCashDesk(userID uuid.UUID) *CashDesk {
	now := time.Now().UTC()

	return &CashDesk{
		ID:        uuid.New(),
		UserID:    userID,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
