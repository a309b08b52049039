// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat line exchanged between staff members. Messages are
// purged by the period-close procedure.
type Message struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Body       string
	CreatedAt  time.Time
}

// NewMessage creates a new chat Message.
func NewMessage(authorID uuid.UUID, authorName, body string) *Message {
	return &Message{
		ID:         uuid.New(),
		AuthorID:   authorID,
		AuthorName: authorName,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}
}
