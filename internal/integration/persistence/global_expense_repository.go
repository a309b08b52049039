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

// globalExpenseRepository implements the adapter.GlobalExpenseRepository interface.
type globalExpenseRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewGlobalExpenseRepository creates a new global expense repository instance.
func NewGlobalExpenseRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.GlobalExpenseRepository {
	return &globalExpenseRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create creates a new global expense in the database.
func (r *globalExpenseRepository) Create(ctx context.Context, expense *entity.GlobalExpense) error {
	expenseModel := model.GlobalExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "global_expenses")
	return nil
}

// FindByID retrieves a global expense by its ID.
func (r *globalExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GlobalExpense, error) {
	var expenseModel model.GlobalExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGlobalExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves all global expenses, newest first.
func (r *globalExpenseRepository) FindAll(ctx context.Context) ([]*entity.GlobalExpense, error) {
	var expenseModels []model.GlobalExpenseModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.GlobalExpense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Delete removes a global expense permanently.
func (r *globalExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GlobalExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGlobalExpenseNotFound
	}
	r.publisher.PublishChange(ctx, "global_expenses")
	return nil
}

// DeleteAll purges every global expense.
func (r *globalExpenseRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.GlobalExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "global_expenses")
	return nil
}
