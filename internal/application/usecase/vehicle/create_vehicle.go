// Package vehicle contains vehicle-related use cases.
package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/domain/valueobject"
)

// MaintenanceConfigInput describes one maintenance interval to track on a
// new vehicle.
type MaintenanceConfigInput struct {
	Type       string
	IntervalKm int
	NextDueKm  int
}

// CreateVehicleInput represents the input for vehicle creation.
type CreateVehicleInput struct {
	Name             string
	Plate            string
	PurchasePrice    decimal.Decimal
	RegistrationDate time.Time
	LastMileage      int
	Photo            string
	Configs          []MaintenanceConfigInput
}

// CreateVehicleOutput represents the output of vehicle creation.
type CreateVehicleOutput struct {
	Vehicle *entity.Vehicle
}

// CreateVehicleUseCase handles vehicle creation. New maintenance types are
// registered in the runtime registry as a side effect, so ad hoc types
// become valid for later entries.
type CreateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
	registry    *valueobject.MaintenanceTypeRegistry
}

// NewCreateVehicleUseCase creates a new CreateVehicleUseCase instance.
func NewCreateVehicleUseCase(vehicleRepo adapter.VehicleRepository, registry *valueobject.MaintenanceTypeRegistry) *CreateVehicleUseCase {
	return &CreateVehicleUseCase{
		vehicleRepo: vehicleRepo,
		registry:    registry,
	}
}

// Execute performs the vehicle creation.
func (uc *CreateVehicleUseCase) Execute(ctx context.Context, input CreateVehicleInput) (*CreateVehicleOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeMissingVehicleFields,
			"vehicle name is required",
			nil,
		)
	}

	seen := make(map[string]bool, len(input.Configs))
	for _, cfg := range input.Configs {
		if cfg.IntervalKm <= 0 {
			return nil, domainerror.NewVehicleError(
				domainerror.ErrCodeInvalidMaintenanceInterval,
				"maintenance interval must be positive",
				domainerror.ErrInvalidMaintenanceInterval,
			)
		}
		if seen[cfg.Type] {
			return nil, domainerror.NewVehicleError(
				domainerror.ErrCodeDuplicateMaintenanceConfig,
				"duplicate maintenance config for type "+cfg.Type,
				domainerror.ErrDuplicateMaintenanceConfig,
			)
		}
		seen[cfg.Type] = true
	}

	v := entity.NewVehicle(
		input.Name,
		input.Plate,
		input.PurchasePrice,
		input.RegistrationDate,
		input.LastMileage,
		input.Photo,
	)

	for _, cfg := range input.Configs {
		nextDue := cfg.NextDueKm
		if nextDue == 0 {
			nextDue = input.LastMileage + cfg.IntervalKm
		}
		v.MaintenanceConfigs = append(v.MaintenanceConfigs,
			entity.NewMaintenanceConfig(v.ID, cfg.Type, cfg.IntervalKm, nextDue, input.LastMileage))

		if uc.registry != nil {
			uc.registry.Register(cfg.Type)
		}
	}

	if err := uc.vehicleRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return &CreateVehicleOutput{Vehicle: v}, nil
}
