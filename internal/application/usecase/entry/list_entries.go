// Package entry contains financial entry use cases.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// ListEntriesInput represents the filter for listing entries.
type ListEntriesInput struct {
	VehicleID *uuid.UUID
	Status    *entity.EntryStatus
	Type      *entity.EntryType
	StartDate *time.Time
	EndDate   *time.Time
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*entity.FinancialEntry
}

// ListEntriesUseCase lists entries matching a filter.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{entryRepo: entryRepo}
}

// Execute lists the entries.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{
		VehicleID: input.VehicleID,
		Status:    input.Status,
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{Entries: entries}, nil
}
