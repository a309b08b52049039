// Package report contains financial reporting use cases.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleet-manager/backend/internal/application/adapter"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// GetReportInput represents the input for building the KPI report.
type GetReportInput struct {
	// SkipCache forces a rebuild from the collections.
	SkipCache bool
}

// GetReportOutput represents the output of the KPI report.
type GetReportOutput struct {
	Snapshot *Snapshot
	Cached   bool
}

// GetReportUseCase derives the financial KPI snapshot from the current
// collections, consulting the cache first.
type GetReportUseCase struct {
	entryRepo    adapter.EntryRepository
	expenseRepo  adapter.GlobalExpenseRepository
	vehicleRepo  adapter.VehicleRepository
	cashDeskRepo adapter.CashDeskRepository
	statsRepo    adapter.HistoricalStatsRepository
	cache        Cache
	now          func() time.Time
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(
	entryRepo adapter.EntryRepository,
	expenseRepo adapter.GlobalExpenseRepository,
	vehicleRepo adapter.VehicleRepository,
	cashDeskRepo adapter.CashDeskRepository,
	statsRepo adapter.HistoricalStatsRepository,
	cache Cache,
) *GetReportUseCase {
	return &GetReportUseCase{
		entryRepo:    entryRepo,
		expenseRepo:  expenseRepo,
		vehicleRepo:  vehicleRepo,
		cashDeskRepo: cashDeskRepo,
		statsRepo:    statsRepo,
		cache:        cache,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case's clock. Used by tests.
func (uc *GetReportUseCase) WithClock(now func() time.Time) *GetReportUseCase {
	uc.now = now
	return uc
}

// Execute builds the KPI snapshot.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	if !input.SkipCache && uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			slog.Warn("Report cache read failed, rebuilding", "error", err)
		} else if cached != nil {
			return &GetReportOutput{Snapshot: cached, Cached: true}, nil
		}
	}

	in, err := uc.loadCollections(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := BuildSnapshot(*in)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, snapshot); err != nil {
			slog.Warn("Report cache write failed", "error", err)
		}
	}

	return &GetReportOutput{Snapshot: snapshot}, nil
}

// loadCollections fetches everything the aggregation reads.
func (uc *GetReportUseCase) loadCollections(ctx context.Context) (*SnapshotInput, error) {
	entries, err := uc.entryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load global expenses: %w", err)
	}

	vehicles, err := uc.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	desks, err := uc.cashDeskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash desks: %w", err)
	}

	stats, err := uc.statsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domainerror.ErrHistoricalStatsNotFound) {
			return nil, fmt.Errorf("failed to load historical stats: %w", err)
		}
		stats = nil // No closed period yet: zero carry-forward.
	}

	return &SnapshotInput{
		Entries:        entries,
		GlobalExpenses: expenses,
		Vehicles:       vehicles,
		CashDesks:      desks,
		Historical:     stats,
		Now:            uc.now(),
	}, nil
}
