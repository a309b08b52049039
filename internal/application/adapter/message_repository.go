// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// MessageRepository defines the interface for chat message persistence operations.
type MessageRepository interface {
	// Create stores a new chat message.
	Create(ctx context.Context, message *entity.Message) error

	// FindAll retrieves all messages, oldest first.
	FindAll(ctx context.Context) ([]*entity.Message, error)

	// DeleteAll purges every message. Used only by the period-close procedure.
	DeleteAll(ctx context.Context) error
}
