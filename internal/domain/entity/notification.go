// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemArchiver is recorded as the archiver when a notification is
// resolved automatically by a maintenance approval.
const SystemArchiver = "system/auto-approval"

// NotificationKind distinguishes maintenance-due alerts from system-level
// warnings that are not tied to a vehicle.
type NotificationKind string

const (
	NotificationKindMaintenanceDue NotificationKind = "MAINTENANCE_DUE"
	NotificationKindSaturation     NotificationKind = "DATABASE_SATURATION"
)

// Notification is a derived alert, never authoritative data. Maintenance
// alerts are keyed by (vehicleID, maintenanceType, dueKm) among non-archived
// notifications so an unresolved threshold never produces duplicates across
// repeated evaluation passes.
type Notification struct {
	ID              uuid.UUID
	Kind            NotificationKind
	VehicleID       *uuid.UUID // Nil for system-level notifications
	VehicleName     string
	MaintenanceType string
	DueKm           int
	KmLeft          int
	IsCritical      bool
	Message         string
	Archived        bool
	ArchivedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMaintenanceNotification creates a maintenance-due alert for a vehicle.
func NewMaintenanceNotification(vehicleID uuid.UUID, vehicleName, maintenanceType string, dueKm, kmLeft int, message string) *Notification {
	now := time.Now().UTC()

	return &Notification{
		ID:              uuid.New(),
		Kind:            NotificationKindMaintenanceDue,
		VehicleID:       &vehicleID,
		VehicleName:     vehicleName,
		MaintenanceType: maintenanceType,
		DueKm:           dueKm,
		KmLeft:          kmLeft,
		IsCritical:      kmLeft <= 0,
		Message:         message,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewSaturationNotification creates the vehicle-less database saturation
// warning raised when the entry count exceeds capacity.
func NewSaturationNotification(message string) *Notification {
	now := time.Now().UTC()

	return &Notification{
		ID:         uuid.New(),
		Kind:       NotificationKindSaturation,
		IsCritical: true,
		Message:    message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
