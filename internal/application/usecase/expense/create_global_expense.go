// Package expense contains global (agency-wide) expense use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// CreateGlobalExpenseInput represents the input for creating a global expense.
type CreateGlobalExpenseInput struct {
	Label      string
	Amount     decimal.Decimal
	Date       time.Time
	CashDeskID *uuid.UUID
	AuthorID   uuid.UUID
}

// CreateGlobalExpenseOutput represents the output of the creation.
type CreateGlobalExpenseOutput struct {
	Expense *entity.GlobalExpense
}

// CreateGlobalExpenseUseCase records an agency-wide expense. A referenced
// cash desk is debited immediately.
type CreateGlobalExpenseUseCase struct {
	expenseRepo  adapter.GlobalExpenseRepository
	cashDeskRepo adapter.CashDeskRepository
}

// NewCreateGlobalExpenseUseCase creates a new CreateGlobalExpenseUseCase instance.
func NewCreateGlobalExpenseUseCase(expenseRepo adapter.GlobalExpenseRepository, cashDeskRepo adapter.CashDeskRepository) *CreateGlobalExpenseUseCase {
	return &CreateGlobalExpenseUseCase{
		expenseRepo:  expenseRepo,
		cashDeskRepo: cashDeskRepo,
	}
}

// Execute performs the creation.
func (uc *CreateGlobalExpenseUseCase) Execute(ctx context.Context, input CreateGlobalExpenseInput) (*CreateGlobalExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if input.Label == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			"expense label is required",
			nil,
		)
	}

	if input.CashDeskID != nil {
		if _, err := uc.cashDeskRepo.FindByID(ctx, *input.CashDeskID); err != nil {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryCashDeskNotFound,
				"cash desk not found",
				domainerror.ErrEntryCashDeskNotFound,
			)
		}
	}

	ge := entity.NewGlobalExpense(input.Label, input.Amount, input.Date, input.AuthorID)
	ge.CashDeskID = input.CashDeskID

	if err := uc.expenseRepo.Create(ctx, ge); err != nil {
		return nil, fmt.Errorf("failed to create global expense: %w", err)
	}

	if ge.CashDeskID != nil {
		if err := uc.cashDeskRepo.AdjustBalance(ctx, *ge.CashDeskID, ge.Amount.Neg()); err != nil {
			return nil, fmt.Errorf("failed to debit cash desk: %w", err)
		}
	}

	return &CreateGlobalExpenseOutput{Expense: ge}, nil
}
