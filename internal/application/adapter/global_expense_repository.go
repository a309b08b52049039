// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// GlobalExpenseRepository defines the interface for global expense persistence operations.
type GlobalExpenseRepository interface {
	// Create creates a new global expense.
	Create(ctx context.Context, expense *entity.GlobalExpense) error

	// FindByID retrieves a global expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GlobalExpense, error)

	// FindAll retrieves all global expenses, newest first.
	FindAll(ctx context.Context) ([]*entity.GlobalExpense, error)

	// Delete removes a global expense permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll purges every global expense. Used only by the period-close procedure.
	DeleteAll(ctx context.Context) error
}
