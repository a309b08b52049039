package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/persistence/model"
)

// cashDeskRepository implements the adapter.CashDeskRepository interface.
type cashDeskRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewCashDeskRepository creates a new cash desk repository instance.
func NewCashDeskRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.CashDeskRepository {
	return &cashDeskRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create creates a new cash desk in the database.
func (r *cashDeskRepository) Create(ctx context.Context, desk *entity.CashDesk) error {
	deskModel := model.CashDeskFromEntity(desk)
	result := r.db.WithContext(ctx).Create(deskModel)
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "cash_desks")
	return nil
}

// FindByID retrieves a cash desk by its ID.
func (r *cashDeskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CashDesk, error) {
	var deskModel model.CashDeskModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&deskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCashDeskNotFound
		}
		return nil, result.Error
	}
	return deskModel.ToEntity(), nil
}

// FindByUser retrieves the cash desk owned by the given user.
func (r *cashDeskRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CashDesk, error) {
	var deskModel model.CashDeskModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&deskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCashDeskNotFound
		}
		return nil, result.Error
	}
	return deskModel.ToEntity(), nil
}

// FindAll retrieves all cash desks.
func (r *cashDeskRepository) FindAll(ctx context.Context) ([]*entity.CashDesk, error) {
	var deskModels []model.CashDeskModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&deskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	desks := make([]*entity.CashDesk, len(deskModels))
	for i, dm := range deskModels {
		desks[i] = dm.ToEntity()
	}
	return desks, nil
}

// AdjustBalance applies a signed delta to a desk's balance in a single
// statement, avoiding a read-modify-write race between concurrent entries.
func (r *cashDeskRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.CashDeskModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCashDeskNotFound
	}
	r.publisher.PublishChange(ctx, "cash_desks")
	return nil
}
