package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/persistence/model"
)

// vehicleRepository implements the adapter.VehicleRepository interface.
type vehicleRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.VehicleRepository {
	return &vehicleRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create creates a new vehicle with its maintenance configs.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleModel := model.VehicleFromEntity(vehicle)
	result := r.db.WithContext(ctx).Create(vehicleModel)
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "vehicles")
	return nil
}

// FindByID retrieves a vehicle with its maintenance configs.
func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleModel model.VehicleModel
	result := r.db.WithContext(ctx).
		Preload("Configs").
		Where("id = ?", id).
		First(&vehicleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVehicleNotFound
		}
		return nil, result.Error
	}
	return vehicleModel.ToEntity(), nil
}

// FindAll retrieves all vehicles with their maintenance configs.
func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicleModels []model.VehicleModel
	result := r.db.WithContext(ctx).
		Preload("Configs").
		Order("created_at DESC").
		Find(&vehicleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	vehicles := make([]*entity.Vehicle, len(vehicleModels))
	for i, vm := range vehicleModels {
		vehicles[i] = vm.ToEntity()
	}
	return vehicles, nil
}

// Update persists changes to a vehicle's own fields. Configs are managed
// through AddConfig and SaveConfig, not here.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleModel := model.VehicleFromEntity(vehicle)
	vehicleModel.Configs = nil
	result := r.db.WithContext(ctx).Save(vehicleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrVehicleNotFound
	}
	r.publisher.PublishChange(ctx, "vehicles")
	return nil
}

// AddConfig attaches a new maintenance config to a vehicle.
func (r *vehicleRepository) AddConfig(ctx context.Context, config *entity.MaintenanceConfig) error {
	configModel := model.MaintenanceConfigFromEntity(config)
	result := r.db.WithContext(ctx).Create(configModel)
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "vehicles")
	return nil
}

// SaveConfig persists changes to an existing maintenance config.
func (r *vehicleRepository) SaveConfig(ctx context.Context, config *entity.MaintenanceConfig) error {
	configModel := model.MaintenanceConfigFromEntity(config)
	result := r.db.WithContext(ctx).Save(configModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMaintenanceConfigNotFound
	}
	r.publisher.PublishChange(ctx, "vehicles")
	return nil
}
