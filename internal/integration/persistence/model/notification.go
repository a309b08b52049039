package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind            string     `gorm:"type:varchar(32);not null;index"`
	VehicleID       *uuid.UUID `gorm:"type:uuid;index"`
	VehicleName     string     `gorm:"type:varchar(255)"`
	MaintenanceType string     `gorm:"type:varchar(64)"`
	DueKm           int        `gorm:"not null;default:0"`
	KmLeft          int        `gorm:"not null;default:0"`
	IsCritical      bool       `gorm:"not null;default:false"`
	Message         string     `gorm:"type:text"`
	Archived        bool       `gorm:"not null;default:false;index"`
	ArchivedBy      string     `gorm:"type:varchar(255)"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:              m.ID,
		Kind:            entity.NotificationKind(m.Kind),
		VehicleID:       m.VehicleID,
		VehicleName:     m.VehicleName,
		MaintenanceType: m.MaintenanceType,
		DueKm:           m.DueKm,
		KmLeft:          m.KmLeft,
		IsCritical:      m.IsCritical,
		Message:         m.Message,
		Archived:        m.Archived,
		ArchivedBy:      m.ArchivedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain entity.
func NotificationFromEntity(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:              n.ID,
		Kind:            string(n.Kind),
		VehicleID:       n.VehicleID,
		VehicleName:     n.VehicleName,
		MaintenanceType: n.MaintenanceType,
		DueKm:           n.DueKm,
		KmLeft:          n.KmLeft,
		IsCritical:      n.IsCritical,
		Message:         n.Message,
		Archived:        n.Archived,
		ArchivedBy:      n.ArchivedBy,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}
