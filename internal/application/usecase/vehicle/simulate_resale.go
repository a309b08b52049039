// Package vehicle contains vehicle-related use cases.
package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// SimulateResaleInput represents the input for recording a simulated
// resale price. A nil price clears the simulation.
type SimulateResaleInput struct {
	VehicleID uuid.UUID
	Price     *decimal.Decimal
}

// SimulateResaleOutput represents the output of the simulation update.
type SimulateResaleOutput struct {
	Vehicle *entity.Vehicle
}

// SimulateResaleUseCase records a what-if resale price on a vehicle. The
// simulation never enters the accounting aggregation.
type SimulateResaleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewSimulateResaleUseCase creates a new SimulateResaleUseCase instance.
func NewSimulateResaleUseCase(vehicleRepo adapter.VehicleRepository) *SimulateResaleUseCase {
	return &SimulateResaleUseCase{vehicleRepo: vehicleRepo}
}

// Execute records the simulated price.
func (uc *SimulateResaleUseCase) Execute(ctx context.Context, input SimulateResaleInput) (*SimulateResaleOutput, error) {
	v, err := uc.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			err,
		)
	}

	v.SimulatedResalePrice = input.Price
	v.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return &SimulateResaleOutput{Vehicle: v}, nil
}
