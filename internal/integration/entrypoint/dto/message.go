package dto

import (
	"time"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// SendMessageRequest represents the request body for posting a chat message.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// ChatMessageResponse represents a chat message in API responses.
type ChatMessageResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatMessageListResponse represents the response body for listing messages.
type ChatMessageListResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ToChatMessageResponse converts a domain Message to a DTO.
func ToChatMessageResponse(m *entity.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:         m.ID.String(),
		AuthorID:   m.AuthorID.String(),
		AuthorName: m.AuthorName,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}
