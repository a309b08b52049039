package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// EntryModel represents the financial_entries table in the database.
type EntryModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type            string          `gorm:"type:varchar(32);not null;index"`
	Status          string          `gorm:"type:varchar(16);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Description     string          `gorm:"type:text"`
	AgentName       string          `gorm:"type:varchar(255)"`
	VehicleID       *uuid.UUID      `gorm:"type:uuid;index"`
	CashDeskID      *uuid.UUID      `gorm:"type:uuid;index"`
	MaintenanceType string          `gorm:"type:varchar(64)"`
	MileageAtEntry  *int
	ReceiptPhoto    string    `gorm:"type:text"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "financial_entries"
}

// ToEntity converts an EntryModel to a domain FinancialEntry entity.
func (m *EntryModel) ToEntity() *entity.FinancialEntry {
	return &entity.FinancialEntry{
		ID:              m.ID,
		Type:            entity.EntryType(m.Type),
		Status:          entity.EntryStatus(m.Status),
		Amount:          m.Amount,
		Date:            m.Date,
		Description:     m.Description,
		AgentName:       m.AgentName,
		VehicleID:       m.VehicleID,
		CashDeskID:      m.CashDeskID,
		MaintenanceType: m.MaintenanceType,
		MileageAtEntry:  m.MileageAtEntry,
		ReceiptPhoto:    m.ReceiptPhoto,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain FinancialEntry entity.
func EntryFromEntity(e *entity.FinancialEntry) *EntryModel {
	return &EntryModel{
		ID:              e.ID,
		Type:            string(e.Type),
		Status:          string(e.Status),
		Amount:          e.Amount,
		Date:            e.Date,
		Description:     e.Description,
		AgentName:       e.AgentName,
		VehicleID:       e.VehicleID,
		CashDeskID:      e.CashDeskID,
		MaintenanceType: e.MaintenanceType,
		MileageAtEntry:  e.MileageAtEntry,
		ReceiptPhoto:    e.ReceiptPhoto,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
