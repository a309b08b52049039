// Package entry contains financial entry use cases.
package entry

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

// UpdateEntryInput represents the input for editing an entry. Nil fields
// are left unchanged.
type UpdateEntryInput struct {
	ID             uuid.UUID
	Amount         *decimal.Decimal
	Date           *time.Time
	Description    *string
	MileageAtEntry *int
	EditorRole     entity.UserRole
}

// UpdateEntryOutput represents the output of an entry edit.
type UpdateEntryOutput struct {
	Entry *entity.FinancialEntry
}

// UpdateEntryUseCase edits an entry. A non-admin edit always resets the
// status to PENDING (a rejected entry is thereby resubmitted); an admin
// edit of an approved entry re-saves it APPROVED, bypassing re-review.
// The cash desk is not readjusted on edit; only creation and deletion
// move balances.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{entryRepo: entryRepo}
}

// Execute performs the edit.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	fe, err := uc.entryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			err,
		)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeInvalidEntryAmount,
				"entry amount must be positive",
				domainerror.ErrInvalidEntryAmount,
			)
		}
		fe.Amount = *input.Amount
	}
	if input.Date != nil {
		fe.Date = *input.Date
	}
	if input.Description != nil {
		fe.Description = *input.Description
	}
	if input.MileageAtEntry != nil {
		fe.MileageAtEntry = input.MileageAtEntry
	}

	if input.EditorRole == entity.UserRoleAdmin {
		if fe.Status == entity.EntryStatusRejected {
			fe.Status = entity.EntryStatusPending
		}
		// An approved entry edited by an admin stays approved.
	} else {
		fe.Status = entity.EntryStatusPending
	}
	fe.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, fe); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: fe}, nil
}
