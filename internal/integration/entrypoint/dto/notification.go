package dto

import (
	"time"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	VehicleID       *string   `json:"vehicle_id,omitempty"`
	VehicleName     string    `json:"vehicle_name,omitempty"`
	MaintenanceType string    `json:"maintenance_type,omitempty"`
	DueKm           int       `json:"due_km,omitempty"`
	KmLeft          int       `json:"km_left"`
	IsCritical      bool      `json:"is_critical"`
	Message         string    `json:"message"`
	Archived        bool      `json:"archived"`
	ArchivedBy      string    `json:"archived_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NotificationListResponse represents the response body for listing
// notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain Notification to a DTO.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:              n.ID.String(),
		Kind:            string(n.Kind),
		VehicleName:     n.VehicleName,
		MaintenanceType: n.MaintenanceType,
		DueKm:           n.DueKm,
		KmLeft:          n.KmLeft,
		IsCritical:      n.IsCritical,
		Message:         n.Message,
		Archived:        n.Archived,
		ArchivedBy:      n.ArchivedBy,
		CreatedAt:       n.CreatedAt,
	}
	if n.VehicleID != nil {
		s := n.VehicleID.String()
		resp.VehicleID = &s
	}
	return resp
}
