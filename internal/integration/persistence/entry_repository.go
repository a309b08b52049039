// Package persistence implements repository interfaces for database operations.
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

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewEntryRepository creates a new financial entry repository instance.
func NewEntryRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.EntryRepository {
	return &entryRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create creates a new financial entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.FinancialEntry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "entries")
	return nil
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialEntry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindAll retrieves all entries, newest first.
func (r *entryRepository) FindAll(ctx context.Context) ([]*entity.FinancialEntry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.FinancialEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindByFilter retrieves entries matching the filter, newest first.
func (r *entryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter) ([]*entity.FinancialEntry, error) {
	query := r.db.WithContext(ctx).Model(&model.EntryModel{})

	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}

	var entryModels []model.EntryModel
	result := query.Order("date DESC, created_at DESC").Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.FinancialEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update persists changes to an existing entry.
func (r *entryRepository) Update(ctx context.Context, entry *entity.FinancialEntry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	r.publisher.PublishChange(ctx, "entries")
	return nil
}

// Delete removes an entry permanently.
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	r.publisher.PublishChange(ctx, "entries")
	return nil
}

// Count returns the total number of entries.
func (r *entryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.EntryModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// DeleteAll purges every entry.
func (r *entryRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.EntryModel{})
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "entries")
	return nil
}
