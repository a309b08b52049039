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

// ArchiveVehicleInput represents the input for selling/archiving a vehicle.
type ArchiveVehicleInput struct {
	VehicleID uuid.UUID
	SalePrice decimal.Decimal
	SaleDate  time.Time
}

// ArchiveVehicleOutput represents the output of an archival.
type ArchiveVehicleOutput struct {
	Vehicle *entity.Vehicle
}

// ArchiveVehicleUseCase records a sale and archives the vehicle. Archival
// is terminal for operational purposes; the record persists for reporting
// and the sale's gain/loss matures per the accounting grace period.
type ArchiveVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewArchiveVehicleUseCase creates a new ArchiveVehicleUseCase instance.
func NewArchiveVehicleUseCase(vehicleRepo adapter.VehicleRepository) *ArchiveVehicleUseCase {
	return &ArchiveVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute performs the archival.
func (uc *ArchiveVehicleUseCase) Execute(ctx context.Context, input ArchiveVehicleInput) (*ArchiveVehicleOutput, error) {
	v, err := uc.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFound,
			"vehicle not found",
			err,
		)
	}

	if v.Archived {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleAlreadyArchived,
			"vehicle is already archived",
			domainerror.ErrVehicleAlreadyArchived,
		)
	}

	salePrice := input.SalePrice
	saleDate := input.SaleDate
	v.Archived = true
	v.SalePrice = &salePrice
	v.SaleDate = &saleDate
	v.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to archive vehicle: %w", err)
	}

	return &ArchiveVehicleOutput{Vehicle: v}, nil
}
