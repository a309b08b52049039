// Package maintenance contains maintenance-due tracking use cases.
package maintenance

import (
	"time"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

const (
	// DueSoonThresholdKm is the remaining distance at or below which a
	// maintenance alert is raised.
	DueSoonThresholdKm = 500

	// SaturationThreshold is the entry count above which the system-level
	// database saturation warning is raised.
	SaturationThreshold = 1000
)

// AdvanceConfig records a performed maintenance on a config: the last
// performed odometer becomes the entry's mileage when present, the
// vehicle's current odometer otherwise, and the next due threshold moves
// one interval past it.
func AdvanceConfig(cfg *entity.MaintenanceConfig, vehicle *entity.Vehicle, mileageAtEntry *int) {
	performedKm := vehicle.LastMileage
	if mileageAtEntry != nil {
		performedKm = *mileageAtEntry
	}

	cfg.LastPerformedKm = performedKm
	cfg.NextDueKm = performedKm + cfg.IntervalKm
	cfg.UpdatedAt = time.Now().UTC()
}
