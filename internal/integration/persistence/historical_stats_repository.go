package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/persistence/model"
)

// historicalStatsRepository implements the adapter.HistoricalStatsRepository interface.
type historicalStatsRepository struct {
	db *gorm.DB
}

// NewHistoricalStatsRepository creates a new historical stats repository instance.
func NewHistoricalStatsRepository(db *gorm.DB) adapter.HistoricalStatsRepository {
	return &historicalStatsRepository{
		db: db,
	}
}

// Get retrieves the singleton accumulator row.
func (r *historicalStatsRepository) Get(ctx context.Context) (*entity.HistoricalStats, error) {
	var statsModel model.HistoricalStatsModel
	result := r.db.WithContext(ctx).First(&statsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHistoricalStatsNotFound
		}
		return nil, result.Error
	}
	return statsModel.ToEntity(), nil
}

// Save creates or replaces the singleton accumulator row.
func (r *historicalStatsRepository) Save(ctx context.Context, stats *entity.HistoricalStats) error {
	statsModel := model.HistoricalStatsFromEntity(stats)
	result := r.db.WithContext(ctx).Save(statsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
