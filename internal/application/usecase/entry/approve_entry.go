// Package entry contains financial entry use cases.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/application/usecase/maintenance"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// ApproveEntryInput represents the input for approving an entry.
type ApproveEntryInput struct {
	ID uuid.UUID
}

// ApproveEntryOutput represents the output of an approval.
type ApproveEntryOutput struct {
	Entry *entity.FinancialEntry
}

// ApproveEntryUseCase approves a pending entry. Approving a maintenance
// entry additionally advances the vehicle's maintenance config and
// auto-archives the matching alert.
type ApproveEntryUseCase struct {
	entryRepo        adapter.EntryRepository
	vehicleRepo      adapter.VehicleRepository
	notificationRepo adapter.NotificationRepository
}

// NewApproveEntryUseCase creates a new ApproveEntryUseCase instance.
func NewApproveEntryUseCase(
	entryRepo adapter.EntryRepository,
	vehicleRepo adapter.VehicleRepository,
	notificationRepo adapter.NotificationRepository,
) *ApproveEntryUseCase {
	return &ApproveEntryUseCase{
		entryRepo:        entryRepo,
		vehicleRepo:      vehicleRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute performs the approval.
func (uc *ApproveEntryUseCase) Execute(ctx context.Context, input ApproveEntryInput) (*ApproveEntryOutput, error) {
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
			"only pending entries can be approved",
			domainerror.ErrEntryNotPending,
		)
	}

	fe.Status = entity.EntryStatusApproved
	fe.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, fe); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	if fe.Type == entity.EntryTypeExpenseMaintenance && fe.VehicleID != nil {
		if err := advanceMaintenance(ctx, uc.vehicleRepo, uc.notificationRepo, fe); err != nil {
			return nil, err
		}
	}

	return &ApproveEntryOutput{Entry: fe}, nil
}

// advanceMaintenance applies the due-threshold advance for an approved
// maintenance entry and resolves the matching alert. It runs at approval
// time, or at creation time for admin entries which are born approved.
func advanceMaintenance(
	ctx context.Context,
	vehicleRepo adapter.VehicleRepository,
	notificationRepo adapter.NotificationRepository,
	fe *entity.FinancialEntry,
) error {
	vehicle, err := vehicleRepo.FindByID(ctx, *fe.VehicleID)
	if err != nil {
		return fmt.Errorf("failed to load vehicle for maintenance advance: %w", err)
	}

	cfg := vehicle.ConfigForType(fe.MaintenanceType)
	if cfg == nil {
		// The vehicle does not track this type; the approval stands on its own.
		slog.Warn("Approved maintenance entry has no matching config",
			"vehicle", vehicle.Name,
			"type", fe.MaintenanceType,
		)
		return nil
	}

	maintenance.AdvanceConfig(cfg, vehicle, fe.MileageAtEntry)

	if err := vehicleRepo.SaveConfig(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save maintenance config: %w", err)
	}

	notification, err := notificationRepo.FindActiveMaintenance(ctx, vehicle.ID, cfg.Type)
	if err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up maintenance notification: %w", err)
	}

	if err := notificationRepo.Archive(ctx, notification.ID, entity.SystemArchiver); err != nil {
		return fmt.Errorf("failed to archive maintenance notification: %w", err)
	}

	return nil
}
