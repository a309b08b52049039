// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create creates a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindActive retrieves all non-archived notifications, newest first.
	FindActive(ctx context.Context) ([]*entity.Notification, error)

	// FindAll retrieves all notifications, archived included.
	FindAll(ctx context.Context) ([]*entity.Notification, error)

	// FindActiveMaintenance retrieves the first non-archived maintenance
	// notification for the given vehicle and maintenance type, or the
	// domain not-found error when none exists.
	FindActiveMaintenance(ctx context.Context, vehicleID uuid.UUID, maintenanceType string) (*entity.Notification, error)

	// ExistsActiveMaintenance reports whether a non-archived maintenance
	// notification exists for the exact (vehicleID, maintenanceType, dueKm)
	// key. This is the dedup barrier for the alert evaluation pass.
	ExistsActiveMaintenance(ctx context.Context, vehicleID uuid.UUID, maintenanceType string, dueKm int) (bool, error)

	// ExistsActiveSaturation reports whether a non-archived database
	// saturation warning exists.
	ExistsActiveSaturation(ctx context.Context) (bool, error)

	// Archive soft-deletes a notification, recording who archived it.
	Archive(ctx context.Context, id uuid.UUID, archivedBy string) error

	// DeleteAll purges every notification. Used only by the period-close procedure.
	DeleteAll(ctx context.Context) error
}
