// Package message contains chat message use cases.
package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// SendMessageInput represents the input for sending a chat message.
type SendMessageInput struct {
	AuthorID   uuid.UUID
	AuthorName string
	Body       string
}

// SendMessageOutput represents the output of sending a message.
type SendMessageOutput struct {
	Message *entity.Message
}

// SendMessageUseCase stores a chat message.
type SendMessageUseCase struct {
	messageRepo adapter.MessageRepository
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(messageRepo adapter.MessageRepository) *SendMessageUseCase {
	return &SendMessageUseCase{messageRepo: messageRepo}
}

// Execute stores the message.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, fmt.Errorf("message body is required")
	}

	m := entity.NewMessage(input.AuthorID, input.AuthorName, body)
	if err := uc.messageRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	return &SendMessageOutput{Message: m}, nil
}

// ListMessagesOutput represents the output of listing chat messages.
type ListMessagesOutput struct {
	Messages []*entity.Message
}

// ListMessagesUseCase lists chat messages oldest first.
type ListMessagesUseCase struct {
	messageRepo adapter.MessageRepository
}

// NewListMessagesUseCase creates a new ListMessagesUseCase instance.
func NewListMessagesUseCase(messageRepo adapter.MessageRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{messageRepo: messageRepo}
}

// Execute lists the messages.
func (uc *ListMessagesUseCase) Execute(ctx context.Context) (*ListMessagesOutput, error) {
	messages, err := uc.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return &ListMessagesOutput{Messages: messages}, nil
}
