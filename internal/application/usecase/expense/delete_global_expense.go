// Package expense contains global (agency-wide) expense use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// DeleteGlobalExpenseInput represents the input for deleting a global expense.
type DeleteGlobalExpenseInput struct {
	ID uuid.UUID
}

// DeleteGlobalExpenseUseCase removes a global expense, crediting back the
// cash desk it originally debited.
type DeleteGlobalExpenseUseCase struct {
	expenseRepo  adapter.GlobalExpenseRepository
	cashDeskRepo adapter.CashDeskRepository
}

// NewDeleteGlobalExpenseUseCase creates a new DeleteGlobalExpenseUseCase instance.
func NewDeleteGlobalExpenseUseCase(expenseRepo adapter.GlobalExpenseRepository, cashDeskRepo adapter.CashDeskRepository) *DeleteGlobalExpenseUseCase {
	return &DeleteGlobalExpenseUseCase{
		expenseRepo:  expenseRepo,
		cashDeskRepo: cashDeskRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteGlobalExpenseUseCase) Execute(ctx context.Context, input DeleteGlobalExpenseInput) error {
	ge, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("global expense lookup failed: %w", domainerror.ErrGlobalExpenseNotFound)
	}

	if ge.CashDeskID != nil {
		if err := uc.cashDeskRepo.AdjustBalance(ctx, *ge.CashDeskID, ge.Amount); err != nil {
			return fmt.Errorf("failed to credit cash desk back: %w", err)
		}
	}

	if err := uc.expenseRepo.Delete(ctx, ge.ID); err != nil {
		return fmt.Errorf("failed to delete global expense: %w", err)
	}

	return nil
}
