// Package maintenance contains maintenance-due tracking use cases.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// EvaluateAlertsOutput represents the output of an alert evaluation pass.
type EvaluateAlertsOutput struct {
	Created []*entity.Notification
}

// EvaluateAlertsUseCase runs one alert evaluation pass over the fleet.
// The pass runs after every odometer-raising mutation and on demand; the
// (vehicleID, maintenanceType, nextDueKm) dedup key guarantees an
// unresolved threshold never produces duplicate notifications across
// repeated passes.
type EvaluateAlertsUseCase struct {
	vehicleRepo      adapter.VehicleRepository
	entryRepo        adapter.EntryRepository
	notificationRepo adapter.NotificationRepository
	alertSender      adapter.AlertSender // Optional, nil disables email alerts
}

// NewEvaluateAlertsUseCase creates a new EvaluateAlertsUseCase instance.
func NewEvaluateAlertsUseCase(
	vehicleRepo adapter.VehicleRepository,
	entryRepo adapter.EntryRepository,
	notificationRepo adapter.NotificationRepository,
	alertSender adapter.AlertSender,
) *EvaluateAlertsUseCase {
	return &EvaluateAlertsUseCase{
		vehicleRepo:      vehicleRepo,
		entryRepo:        entryRepo,
		notificationRepo: notificationRepo,
		alertSender:      alertSender,
	}
}

// Execute evaluates every non-archived vehicle's maintenance configs and
// the entry-count saturation warning.
func (uc *EvaluateAlertsUseCase) Execute(ctx context.Context) (*EvaluateAlertsOutput, error) {
	vehicles, err := uc.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	output := &EvaluateAlertsOutput{}

	for _, vehicle := range vehicles {
		if vehicle.Archived {
			continue
		}

		for _, cfg := range vehicle.MaintenanceConfigs {
			kmLeft := cfg.KmLeft(vehicle.LastMileage)
			if kmLeft > DueSoonThresholdKm {
				continue
			}

			exists, err := uc.notificationRepo.ExistsActiveMaintenance(ctx, vehicle.ID, cfg.Type, cfg.NextDueKm)
			if err != nil {
				return nil, fmt.Errorf("failed to check existing notification: %w", err)
			}
			if exists {
				continue
			}

			notification := entity.NewMaintenanceNotification(
				vehicle.ID,
				vehicle.Name,
				cfg.Type,
				cfg.NextDueKm,
				kmLeft,
				alertMessage(vehicle.Name, cfg.Type, kmLeft),
			)

			if err := uc.notificationRepo.Create(ctx, notification); err != nil {
				return nil, fmt.Errorf("failed to create notification: %w", err)
			}
			output.Created = append(output.Created, notification)

			if notification.IsCritical && uc.alertSender != nil {
				if err := uc.alertSender.SendMaintenanceAlert(ctx, notification); err != nil {
					slog.Warn("Failed to send maintenance alert email",
						"vehicle", vehicle.Name,
						"type", cfg.Type,
						"error", err,
					)
				}
			}
		}
	}

	if err := uc.checkSaturation(ctx, output); err != nil {
		return nil, err
	}

	return output, nil
}

// checkSaturation raises the idempotent vehicle-less saturation warning
// once the entry count exceeds capacity.
func (uc *EvaluateAlertsUseCase) checkSaturation(ctx context.Context, output *EvaluateAlertsOutput) error {
	count, err := uc.entryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}
	if count <= SaturationThreshold {
		return nil
	}

	exists, err := uc.notificationRepo.ExistsActiveSaturation(ctx)
	if err != nil {
		return fmt.Errorf("failed to check saturation warning: %w", err)
	}
	if exists {
		return nil
	}

	notification := entity.NewSaturationNotification(
		fmt.Sprintf("Database saturation: %d entries recorded, consider closing the period", count),
	)
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create saturation warning: %w", err)
	}
	output.Created = append(output.Created, notification)

	return nil
}

// alertMessage builds the user-facing alert text.
func alertMessage(vehicleName, maintenanceType string, kmLeft int) string {
	if kmLeft <= 0 {
		return fmt.Sprintf("%s: %s overdue by %d km", vehicleName, maintenanceType, -kmLeft)
	}
	return fmt.Sprintf("%s: %s due in %d km", vehicleName, maintenanceType, kmLeft)
}
