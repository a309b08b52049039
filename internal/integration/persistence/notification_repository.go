package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.NotificationRepository {
	return &notificationRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create creates a new notification in the database.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "notifications")
	return nil
}

// FindByID retrieves a notification by its ID.
func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&notificationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNotificationNotFound
		}
		return nil, result.Error
	}
	return notificationModel.ToEntity(), nil
}

// FindActive retrieves all non-archived notifications, newest first.
func (r *notificationRepository) FindActive(ctx context.Context) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("archived = ?", false).
		Order("created_at DESC").
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// FindAll retrieves all notifications, archived included.
func (r *notificationRepository) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// FindActiveMaintenance retrieves the first non-archived maintenance
// notification for the given vehicle and maintenance type.
func (r *notificationRepository) FindActiveMaintenance(ctx context.Context, vehicleID uuid.UUID, maintenanceType string) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("kind = ?", string(entity.NotificationKindMaintenanceDue)).
		Where("vehicle_id = ?", vehicleID).
		Where("maintenance_type = ?", maintenanceType).
		Where("archived = ?", false).
		First(&notificationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNotificationNotFound
		}
		return nil, result.Error
	}
	return notificationModel.ToEntity(), nil
}

// ExistsActiveMaintenance reports whether a non-archived maintenance
// notification exists for the exact (vehicleID, maintenanceType, dueKm) key.
func (r *notificationRepository) ExistsActiveMaintenance(ctx context.Context, vehicleID uuid.UUID, maintenanceType string, dueKm int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("kind = ?", string(entity.NotificationKindMaintenanceDue)).
		Where("vehicle_id = ?", vehicleID).
		Where("maintenance_type = ?", maintenanceType).
		Where("due_km = ?", dueKm).
		Where("archived = ?", false).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ExistsActiveSaturation reports whether a non-archived database saturation
// warning exists.
func (r *notificationRepository) ExistsActiveSaturation(ctx context.Context) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("kind = ?", string(entity.NotificationKindSaturation)).
		Where("archived = ?", false).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Archive soft-deletes a notification, recording who archived it.
func (r *notificationRepository) Archive(ctx context.Context, id uuid.UUID, archivedBy string) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"archived":    true,
			"archived_by": archivedBy,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	r.publisher.PublishChange(ctx, "notifications")
	return nil
}

// DeleteAll purges every notification.
func (r *notificationRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.NotificationModel{})
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "notifications")
	return nil
}
