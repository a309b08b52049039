// Package vehicle contains vehicle-related use cases.
package vehicle

import (
	"context"
	"fmt"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// ListVehiclesInput represents the input for listing vehicles.
type ListVehiclesInput struct {
	IncludeArchived bool
}

// ListVehiclesOutput represents the output of listing vehicles.
type ListVehiclesOutput struct {
	Vehicles []*entity.Vehicle
}

// ListVehiclesUseCase lists the fleet.
type ListVehiclesUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewListVehiclesUseCase creates a new ListVehiclesUseCase instance.
func NewListVehiclesUseCase(vehicleRepo adapter.VehicleRepository) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{vehicleRepo: vehicleRepo}
}

// Execute lists the vehicles.
func (uc *ListVehiclesUseCase) Execute(ctx context.Context, input ListVehiclesInput) (*ListVehiclesOutput, error) {
	vehicles, err := uc.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	if input.IncludeArchived {
		return &ListVehiclesOutput{Vehicles: vehicles}, nil
	}

	active := make([]*entity.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.Archived {
			active = append(active, v)
		}
	}
	return &ListVehiclesOutput{Vehicles: active}, nil
}
