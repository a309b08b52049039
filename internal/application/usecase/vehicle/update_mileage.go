// Package vehicle contains vehicle-related use cases.
package vehicle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/application/usecase/maintenance"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// UpdateMileageInput represents the input for an odometer update.
type UpdateMileageInput struct {
	VehicleID uuid.UUID
	Mileage   int
}

// UpdateMileageOutput represents the output of an odometer update.
type UpdateMileageOutput struct {
	Vehicle      *entity.Vehicle
	RaisedAlerts []*entity.Notification
}

// UpdateMileageUseCase raises a vehicle's odometer. The odometer is
// monotone: a lower reading is rejected at this boundary. Every update is
// followed by an alert evaluation pass.
type UpdateMileageUseCase struct {
	vehicleRepo adapter.VehicleRepository
	tracker     *maintenance.EvaluateAlertsUseCase
}

// NewUpdateMileageUseCase creates a new UpdateMileageUseCase instance.
func NewUpdateMileageUseCase(vehicleRepo adapter.VehicleRepository, tracker *maintenance.EvaluateAlertsUseCase) *UpdateMileageUseCase {
	return &UpdateMileageUseCase{
		vehicleRepo: vehicleRepo,
		tracker:     tracker,
	}
}

// Execute performs the odometer update.
func (uc *UpdateMileageUseCase) Execute(ctx context.Context, input UpdateMileageInput) (*UpdateMileageOutput, error) {
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
			domainerror.ErrCodeVehicleArchived,
			"cannot update an archived vehicle",
			domainerror.ErrVehicleArchived,
		)
	}

	if input.Mileage < v.LastMileage {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeMileageDecrease,
			fmt.Sprintf("mileage %d is below current reading %d", input.Mileage, v.LastMileage),
			domainerror.ErrMileageDecrease,
		)
	}

	v.LastMileage = input.Mileage
	v.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	output := &UpdateMileageOutput{Vehicle: v}
	if uc.tracker != nil {
		result, err := uc.tracker.Execute(ctx)
		if err != nil {
			slog.Warn("Alert evaluation after odometer update failed", "error", err)
		} else {
			output.RaisedAlerts = result.Created
		}
	}

	return output, nil
}
