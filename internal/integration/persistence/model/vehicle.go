// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// VehicleModel represents the vehicles table in the database.
type VehicleModel struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                 string           `gorm:"type:varchar(255);not null"`
	Plate                string           `gorm:"type:varchar(32);index"`
	PurchasePrice        decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	RegistrationDate     time.Time        `gorm:"type:date;not null"`
	LastMileage          int              `gorm:"not null;default:0"`
	Archived             bool             `gorm:"not null;default:false;index"`
	SalePrice            *decimal.Decimal `gorm:"type:decimal(15,2)"`
	SaleDate             *time.Time       `gorm:"type:date"`
	SimulatedResalePrice *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Photo                string           `gorm:"type:text"`
	CreatedAt            time.Time        `gorm:"not null"`
	UpdatedAt            time.Time        `gorm:"not null"`

	Configs []MaintenanceConfigModel `gorm:"foreignKey:VehicleID"`
}

// TableName returns the table name for the VehicleModel.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// MaintenanceConfigModel represents the maintenance_configs table.
type MaintenanceConfigModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:varchar(64);not null"`
	IntervalKm      int       `gorm:"not null"`
	NextDueKm       int       `gorm:"not null"`
	LastPerformedKm int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the MaintenanceConfigModel.
func (MaintenanceConfigModel) TableName() string {
	return "maintenance_configs"
}

// ToEntity converts a VehicleModel to a domain Vehicle entity.
func (m *VehicleModel) ToEntity() *entity.Vehicle {
	v := &entity.Vehicle{
		ID:                   m.ID,
		Name:                 m.Name,
		Plate:                m.Plate,
		PurchasePrice:        m.PurchasePrice,
		RegistrationDate:     m.RegistrationDate,
		LastMileage:          m.LastMileage,
		Archived:             m.Archived,
		SalePrice:            m.SalePrice,
		SaleDate:             m.SaleDate,
		SimulatedResalePrice: m.SimulatedResalePrice,
		Photo:                m.Photo,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
	for i := range m.Configs {
		v.MaintenanceConfigs = append(v.MaintenanceConfigs, m.Configs[i].ToEntity())
	}
	return v
}

// ToEntity converts a MaintenanceConfigModel to a domain MaintenanceConfig entity.
func (m *MaintenanceConfigModel) ToEntity() *entity.MaintenanceConfig {
	return &entity.MaintenanceConfig{
		ID:              m.ID,
		VehicleID:       m.VehicleID,
		Type:            m.Type,
		IntervalKm:      m.IntervalKm,
		NextDueKm:       m.NextDueKm,
		LastPerformedKm: m.LastPerformedKm,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// VehicleFromEntity creates a VehicleModel from a domain Vehicle entity.
func VehicleFromEntity(v *entity.Vehicle) *VehicleModel {
	m := &VehicleModel{
		ID:                   v.ID,
		Name:                 v.Name,
		Plate:                v.Plate,
		PurchasePrice:        v.PurchasePrice,
		RegistrationDate:     v.RegistrationDate,
		LastMileage:          v.LastMileage,
		Archived:             v.Archived,
		SalePrice:            v.SalePrice,
		SaleDate:             v.SaleDate,
		SimulatedResalePrice: v.SimulatedResalePrice,
		Photo:                v.Photo,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
	for _, cfg := range v.MaintenanceConfigs {
		m.Configs = append(m.Configs, *MaintenanceConfigFromEntity(cfg))
	}
	return m
}

// MaintenanceConfigFromEntity creates a MaintenanceConfigModel from a domain entity.
func MaintenanceConfigFromEntity(cfg *entity.MaintenanceConfig) *MaintenanceConfigModel {
	return &MaintenanceConfigModel{
		ID:              cfg.ID,
		VehicleID:       cfg.VehicleID,
		Type:            cfg.Type,
		IntervalKm:      cfg.IntervalKm,
		NextDueKm:       cfg.NextDueKm,
		LastPerformedKm: cfg.LastPerformedKm,
		CreatedAt:       cfg.CreatedAt,
		UpdatedAt:       cfg.UpdatedAt,
	}
}
