// Package maintenance contains maintenance-due tracking use cases.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// PostponeMaintenanceInput represents the input for postponing a due threshold.
type PostponeMaintenanceInput struct {
	VehicleID       uuid.UUID
	MaintenanceType string
	ExtraKm         int
}

// PostponeMaintenanceOutput represents the output of the postponement.
type PostponeMaintenanceOutput struct {
	NextDueKm int
}

// PostponeMaintenanceUseCase pushes a config's next due threshold forward
// without recording a maintenance event. LastPerformedKm is untouched.
type PostponeMaintenanceUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewPostponeMaintenanceUseCase creates a new PostponeMaintenanceUseCase instance.
func NewPostponeMaintenanceUseCase(vehicleRepo adapter.VehicleRepository) *PostponeMaintenanceUseCase {
	return &PostponeMaintenanceUseCase{vehicleRepo: vehicleRepo}
}

// Execute performs the postponement.
func (uc *PostponeMaintenanceUseCase) Execute(ctx context.Context, input PostponeMaintenanceInput) (*PostponeMaintenanceOutput, error) {
	if input.ExtraKm <= 0 {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidMaintenanceInterval,
			"postponement distance must be positive",
			domainerror.ErrInvalidMaintenanceInterval,
		)
	}

	vehicle, err := uc.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			err,
		)
	}

	cfg := vehicle.ConfigForType(input.MaintenanceType)
	if cfg == nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeMaintenanceConfigNotFound,
			"no maintenance config for type "+input.MaintenanceType,
			domainerror.ErrMaintenanceConfigNotFound,
		)
	}

	cfg.NextDueKm += input.ExtraKm
	cfg.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.SaveConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save maintenance config: %w", err)
	}

	return &PostponeMaintenanceOutput{NextDueKm: cfg.NextDueKm}, nil
}
