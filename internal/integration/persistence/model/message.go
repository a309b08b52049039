package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// MessageModel represents the messages table in the database.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName string    `gorm:"type:varchar(255);not null"`
	Body       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the MessageModel.
func (MessageModel) TableName() string {
	return "messages"
}

// ToEntity converts a MessageModel to a domain Message entity.
func (m *MessageModel) ToEntity() *entity.Message {
	return &entity.Message{
		ID:         m.ID,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}

// MessageFromEntity creates a MessageModel from a domain Message entity.
func MessageFromEntity(msg *entity.Message) *MessageModel {
	return &MessageModel{
		ID:         msg.ID,
		AuthorID:   msg.AuthorID,
		AuthorName: msg.AuthorName,
		Body:       msg.Body,
		CreatedAt:  msg.CreatedAt,
	}
}
