// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle persistence operations.
type VehicleRepository interface {
	// Create creates a new vehicle with its maintenance configs.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// FindByID retrieves a vehicle with its maintenance configs.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// FindAll retrieves all vehicles with their maintenance configs,
	// archived included.
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)

	// Update persists changes to a vehicle's own fields.
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// AddConfig attaches a new maintenance config to a vehicle.
	AddConfig(ctx context.Context, config *entity.MaintenanceConfig) error

	// SaveConfig persists changes to an existing maintenance config.
	SaveConfig(ctx context.Context, config *entity.MaintenanceConfig) error
}
