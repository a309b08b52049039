// Package entry contains financial entry use cases.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/application/usecase/cashdesk"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for deleting an entry.
type DeleteEntryInput struct {
	ID uuid.UUID
}

// DeleteEntryUseCase permanently removes an entry, reversing its original
// cash-desk adjustment first.
type DeleteEntryUseCase struct {
	entryRepo    adapter.EntryRepository
	cashDeskRepo adapter.CashDeskRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository, cashDeskRepo adapter.CashDeskRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo:    entryRepo,
		cashDeskRepo: cashDeskRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	fe, err := uc.entryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			err,
		)
	}

	if fe.CashDeskID != nil {
		delta := cashdesk.ReversalDelta(fe.Type, fe.Amount)
		if err := uc.cashDeskRepo.AdjustBalance(ctx, *fe.CashDeskID, delta); err != nil {
			return fmt.Errorf("failed to reverse cash desk adjustment: %w", err)
		}
	}

	if err := uc.entryRepo.Delete(ctx, fe.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil
}
