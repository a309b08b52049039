// Package vehicle contains vehicle-related use cases.
package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/domain/valueobject"
)

// AddMaintenanceConfigInput represents the input for attaching a new
// maintenance interval to an existing vehicle.
type AddMaintenanceConfigInput struct {
	VehicleID  uuid.UUID
	Type       string
	IntervalKm int
	NextDueKm  int
}

// AddMaintenanceConfigOutput represents the output of the attachment.
type AddMaintenanceConfigOutput struct {
	Config  *entity.MaintenanceConfig
	Vehicle *entity.Vehicle
}

// AddMaintenanceConfigUseCase attaches a maintenance config to a vehicle
// and registers its type.
type AddMaintenanceConfigUseCase struct {
	vehicleRepo adapter.VehicleRepository
	registry    *valueobject.MaintenanceTypeRegistry
}

// NewAddMaintenanceConfigUseCase creates a new AddMaintenanceConfigUseCase instance.
func NewAddMaintenanceConfigUseCase(vehicleRepo adapter.VehicleRepository, registry *valueobject.MaintenanceTypeRegistry) *AddMaintenanceConfigUseCase {
	return &AddMaintenanceConfigUseCase{
		vehicleRepo: vehicleRepo,
		registry:    registry,
	}
}

// Execute attaches the config.
func (uc *AddMaintenanceConfigUseCase) Execute(ctx context.Context, input AddMaintenanceConfigInput) (*AddMaintenanceConfigOutput, error) {
	if input.IntervalKm <= 0 {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidMaintenanceInterval,
			"maintenance interval must be positive",
			domainerror.ErrInvalidMaintenanceInterval,
		)
	}

	v, err := uc.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			err,
		)
	}

	if v.ConfigForType(input.Type) != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeDuplicateMaintenanceConfig,
			"maintenance config already exists for type "+input.Type,
			domainerror.ErrDuplicateMaintenanceConfig,
		)
	}

	nextDue := input.NextDueKm
	if nextDue == 0 {
		nextDue = v.LastMileage + input.IntervalKm
	}
	cfg := entity.NewMaintenanceConfig(v.ID, input.Type, input.IntervalKm, nextDue, v.LastMileage)

	if err := uc.vehicleRepo.AddConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to add maintenance config: %w", err)
	}

	if uc.registry != nil {
		uc.registry.Register(input.Type)
	}

	return &AddMaintenanceConfigOutput{Config: cfg, Vehicle: v}, nil
}
