// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehicle represents a fleet vehicle in the Fleet Manager system.
// Archived vehicles stay in the store for reporting; archival is terminal
// for operational purposes.
type Vehicle struct {
	ID                   uuid.UUID
	Name                 string
	Plate                string
	PurchasePrice        decimal.Decimal
	RegistrationDate     time.Time
	LastMileage          int // Monotonically non-decreasing, enforced at the update boundary
	Archived             bool
	SalePrice            *decimal.Decimal
	SaleDate             *time.Time
	SimulatedResalePrice *decimal.Decimal
	Photo                string // Opaque Base64 payload, never interpreted
	MaintenanceConfigs   []*MaintenanceConfig
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewVehicle creates a new Vehicle entity.
func NewVehicle(
	name string,
	plate string,
	purchasePrice decimal.Decimal,
	registrationDate time.Time,
	lastMileage int,
	photo string,
) *Vehicle {
	now := time.Now().UTC()

	return &Vehicle{
		ID:               uuid.New(),
		Name:             name,
		Plate:            plate,
		PurchasePrice:    purchasePrice,
		RegistrationDate: registrationDate,
		LastMileage:      lastMileage,
		Photo:            photo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsSold reports whether the vehicle has a recorded sale.
func (v *Vehicle) IsSold() bool {
	return v.Archived && v.SalePrice != nil && v.SaleDate != nil
}

// ConfigForType returns the vehicle's maintenance config for the given
// maintenance type, or nil when none exists.
func (v *Vehicle) ConfigForType(maintenanceType string) *MaintenanceConfig {
	for _, cfg := range v.MaintenanceConfigs {
		if cfg.Type == maintenanceType {
			return cfg
		}
	}
	return nil
}

// MaintenanceConfig tracks one maintenance interval for a vehicle.
// Invariant after each approval cycle: NextDueKm = LastPerformedKm + IntervalKm.
type MaintenanceConfig struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	Type            string // Free-form type key, validated against the runtime registry
	IntervalKm      int
	NextDueKm       int
	LastPerformedKm int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMaintenanceConfig creates a new MaintenanceConfig entity.
func NewMaintenanceConfig(vehicleID uuid.UUID, maintenanceType string, intervalKm, nextDueKm, lastPerformedKm int) *MaintenanceConfig {
	now := time.Now().UTC()

	return &MaintenanceConfig{
		ID:              uuid.New(),
		VehicleID:       vehicleID,
		Type:            maintenanceType,
		IntervalKm:      intervalKm,
		NextDueKm:       nextDueKm,
		LastPerformedKm: lastPerformedKm,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// KmLeft returns the remaining distance before the maintenance is due for
// the given odometer reading. Negative when overdue.
func (c *MaintenanceConfig) KmLeft(lastMileage int) int {
	return c.NextDueKm - lastMileage
}
