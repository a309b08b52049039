package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// GlobalExpenseModel represents the global_expenses table in the database.
type GlobalExpenseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Label      string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	CashDeskID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedBy  uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GlobalExpenseModel.
func (GlobalExpenseModel) TableName() string {
	return "global_expenses"
}

// ToEntity converts a GlobalExpenseModel to a domain GlobalExpense entity.
func (m *GlobalExpenseModel) ToEntity() *entity.GlobalExpense {
	return &entity.GlobalExpense{
		ID:         m.ID,
		Label:      m.Label,
		Amount:     m.Amount,
		Date:       m.Date,
		CashDeskID: m.CashDeskID,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// GlobalExpenseFromEntity creates a GlobalExpenseModel from a domain entity.
func GlobalExpenseFromEntity(g *entity.GlobalExpense) *GlobalExpenseModel {
	return &GlobalExpenseModel{
		ID:         g.ID,
		Label:      g.Label,
		Amount:     g.Amount,
		Date:       g.Date,
		CashDeskID: g.CashDeskID,
		CreatedBy:  g.CreatedBy,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
