// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// CashDeskRepository defines the interface for cash desk persistence operations.
type CashDeskRepository interface {
	// Create creates a new cash desk.
	Create(ctx context.Context, desk *entity.CashDesk) error

	// FindByID retrieves a cash desk by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CashDesk, error)

	// FindByUser retrieves the cash desk owned by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CashDesk, error)

	// FindAll retrieves all cash desks.
	FindAll(ctx context.Context) ([]*entity.CashDesk, error)

	// AdjustBalance applies a signed delta to a desk's balance in a single
	// statement. Balances may go negative.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}
