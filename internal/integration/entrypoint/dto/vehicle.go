package dto

import (
	"time"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// MaintenanceConfigRequest describes one maintenance interval on a vehicle.
type MaintenanceConfigRequest struct {
	Type       string `json:"type" binding:"required,min=1,max=64"`
	IntervalKm int    `json:"interval_km" binding:"required,gt=0"`
	NextDueKm  int    `json:"next_due_km" binding:"omitempty,gte=0"`
}

// CreateVehicleRequest represents the request body for vehicle creation.
type CreateVehicleRequest struct {
	Name             string                     `json:"name" binding:"required,min=1,max=255"`
	Plate            string                     `json:"plate" binding:"omitempty,max=32"`
	PurchasePrice    float64                    `json:"purchase_price" binding:"required,gt=0"`
	RegistrationDate string                     `json:"registration_date" binding:"required"`
	LastMileage      int                        `json:"last_mileage" binding:"omitempty,gte=0"`
	Photo            string                     `json:"photo,omitempty"`
	Configs          []MaintenanceConfigRequest `json:"maintenance_configs,omitempty" binding:"omitempty,dive"`
}

// UpdateMileageRequest represents the request body for an odometer update.
type UpdateMileageRequest struct {
	Mileage int `json:"mileage" binding:"required,gt=0"`
}

// ArchiveVehicleRequest represents the request body for selling a vehicle.
type ArchiveVehicleRequest struct {
	SalePrice float64 `json:"sale_price" binding:"required,gt=0"`
	SaleDate  string  `json:"sale_date" binding:"required"`
}

// SimulateResaleRequest represents the request body for a resale simulation.
// A null price clears the simulation.
type SimulateResaleRequest struct {
	Price *float64 `json:"price" binding:"omitempty,gt=0"`
}

// PostponeMaintenanceRequest represents the request body for postponing a
// maintenance threshold.
type PostponeMaintenanceRequest struct {
	MaintenanceType string `json:"maintenance_type" binding:"required"`
	ExtraKm         int    `json:"extra_km" binding:"required,gt=0"`
}

// MaintenanceConfigResponse represents a maintenance config in API responses.
type MaintenanceConfigResponse struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	IntervalKm      int    `json:"interval_km"`
	NextDueKm       int    `json:"next_due_km"`
	LastPerformedKm int    `json:"last_performed_km"`
	KmLeft          int    `json:"km_left"`
}

// VehicleResponse represents a vehicle in API responses.
type VehicleResponse struct {
	ID                   string                      `json:"id"`
	Name                 string                      `json:"name"`
	Plate                string                      `json:"plate,omitempty"`
	PurchasePrice        string                      `json:"purchase_price"`
	RegistrationDate     string                      `json:"registration_date"`
	LastMileage          int                         `json:"last_mileage"`
	Archived             bool                        `json:"archived"`
	SalePrice            *string                     `json:"sale_price,omitempty"`
	SaleDate             *string                     `json:"sale_date,omitempty"`
	SimulatedResalePrice *string                     `json:"simulated_resale_price,omitempty"`
	Photo                string                      `json:"photo,omitempty"`
	MaintenanceConfigs   []MaintenanceConfigResponse `json:"maintenance_configs"`
	CreatedAt            time.Time                   `json:"created_at"`
}

// VehicleListResponse represents the response body for listing vehicles.
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// ToVehicleResponse converts a domain Vehicle entity to a VehicleResponse DTO.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:                 v.ID.String(),
		Name:               v.Name,
		Plate:              v.Plate,
		PurchasePrice:      v.PurchasePrice.String(),
		RegistrationDate:   v.RegistrationDate.Format("2006-01-02"),
		LastMileage:        v.LastMileage,
		Archived:           v.Archived,
		Photo:              v.Photo,
		MaintenanceConfigs: []MaintenanceConfigResponse{},
		CreatedAt:          v.CreatedAt,
	}
	if v.SalePrice != nil {
		s := v.SalePrice.String()
		resp.SalePrice = &s
	}
	if v.SaleDate != nil {
		s := v.SaleDate.Format("2006-01-02")
		resp.SaleDate = &s
	}
	if v.SimulatedResalePrice != nil {
		s := v.SimulatedResalePrice.String()
		resp.SimulatedResalePrice = &s
	}
	for _, cfg := range v.MaintenanceConfigs {
		resp.MaintenanceConfigs = append(resp.MaintenanceConfigs, MaintenanceConfigResponse{
			ID:              cfg.ID.String(),
			Type:            cfg.Type,
			IntervalKm:      cfg.IntervalKm,
			NextDueKm:       cfg.NextDueKm,
			LastPerformedKm: cfg.LastPerformedKm,
			KmLeft:          cfg.KmLeft(v.LastMileage),
		})
	}
	return resp
}
