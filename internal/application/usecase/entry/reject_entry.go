// Package entry contains financial entry use cases.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// RejectEntryInput represents the input for rejecting an entry.
type RejectEntryInput struct {
	ID uuid.UUID
}

// RejectEntryOutput represents the output of a rejection.
type RejectEntryOutput struct {
	Entry *entity.FinancialEntry
}

// RejectEntryUseCase rejects a pending entry. Rejected entries are
// excluded from all aggregation but remain visible in the audit log; an
// edit resubmits them as pending.
type RejectEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewRejectEntryUseCase creates a new RejectEntryUseCase instance.
func NewRejectEntryUseCase(entryRepo adapter.EntryRepository) *RejectEntryUseCase {
	return &RejectEntryUseCase{entryRepo: entryRepo}
}

// Execute performs the rejection.
func (uc *RejectEntryUseCase) Execute(ctx context.Context, input RejectEntryInput) (*RejectEntryOutput, error) {
	fe, err := uc.entryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			err,
		)
	}

	if fe.Status != entity.EntryStatusPending {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotPending,
			"only pending entries can be rejected",
			domainerror.ErrEntryNotPending,
		)
	}

	fe.Status = entity.EntryStatusRejected
	fe.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, fe); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &RejectEntryOutput{Entry: fe}, nil
}
