package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	"github.com/fleet-manager/backend/internal/integration/persistence/model"
)

// messageRepository implements the adapter.MessageRepository interface.
type messageRepository struct {
	db        *gorm.DB
	publisher adapter.ChangePublisher
}

// NewMessageRepository creates a new chat message repository instance.
func NewMessageRepository(db *gorm.DB, publisher adapter.ChangePublisher) adapter.MessageRepository {
	return &messageRepository{
		db:        db,
		publisher: publisher,
	}
}

// Create stores a new chat message.
func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageModel := model.MessageFromEntity(message)
	result := r.db.WithContext(ctx).Create(messageModel)
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "messages")
	return nil
}

// FindAll retrieves all messages, oldest first.
func (r *messageRepository) FindAll(ctx context.Context) ([]*entity.Message, error) {
	var messageModels []model.MessageModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&messageModels)
	if result.Error != nil {
		return nil, result.Error
	}

	messages := make([]*entity.Message, len(messageModels))
	for i, mm := range messageModels {
		messages[i] = mm.ToEntity()
	}
	return messages, nil
}

// DeleteAll purges every message.
func (r *messageRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.MessageModel{})
	if result.Error != nil {
		return result.Error
	}
	r.publisher.PublishChange(ctx, "messages")
	return nil
}
