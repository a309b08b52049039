// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// EntryFilter defines filter options for listing financial entries.
type EntryFilter struct {
	VehicleID *uuid.UUID
	Status    *entity.EntryStatus
	Type      *entity.EntryType
	StartDate *time.Time
	EndDate   *time.Time
}

// EntryRepository defines the interface for financial entry persistence operations.
type EntryRepository interface {
	// Create creates a new financial entry.
	Create(ctx context.Context, entry *entity.FinancialEntry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialEntry, error)

	// FindAll retrieves all entries, newest first.
	FindAll(ctx context.Context) ([]*entity.FinancialEntry, error)

	// FindByFilter retrieves entries matching the filter, newest first.
	FindByFilter(ctx context.Context, filter EntryFilter) ([]*entity.FinancialEntry, error)

	// Update persists changes to an existing entry.
	Update(ctx context.Context, entry *entity.FinancialEntry) error

	// Delete removes an entry permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of entries.
	Count(ctx context.Context) (int64, error)

	// DeleteAll purges every entry. Used only by the period-close procedure.
	DeleteAll(ctx context.Context) error
}
