package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// CashDeskModel represents the cash_desks table in the database.
type CashDeskModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CashDeskModel.
func (CashDeskModel) TableName() string {
	return "cash_desks"
}

// ToEntity converts a CashDeskModel to a domain CashDesk entity.
func (m *CashDeskModel) ToEntity() *entity.CashDesk {
	return &entity.CashDesk{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CashDeskFromEntity creates a CashDeskModel from a domain CashDesk entity.
func CashDeskFromEntity(d *entity.CashDesk) *CashDeskModel {
	return &CashDeskModel{
		ID:        d.ID,
		UserID:    d.UserID,
		Balance:   d.Balance,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
