package dto

import (
	"time"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for entry creation.
type CreateEntryRequest struct {
	Type            string  `json:"type" binding:"required,oneof=REVENUE EXPENSE_SIMPLE EXPENSE_MAINTENANCE FUNDING"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Date            string  `json:"date" binding:"required"`
	Description     string  `json:"description" binding:"omitempty,max=255"`
	VehicleID       *string `json:"vehicle_id,omitempty"`
	CashDeskID      *string `json:"cash_desk_id,omitempty"`
	MaintenanceType string  `json:"maintenance_type,omitempty"`
	MileageAtEntry  *int    `json:"mileage_at_entry,omitempty" binding:"omitempty,gt=0"`
	ReceiptPhoto    string  `json:"receipt_photo,omitempty"`
}

// UpdateEntryRequest represents the request body for an entry edit. Absent
// fields are left unchanged.
type UpdateEntryRequest struct {
	Amount         *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Date           *string  `json:"date,omitempty"`
	Description    *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	MileageAtEntry *int     `json:"mileage_at_entry,omitempty" binding:"omitempty,gt=0"`
}

// EntryResponse represents a financial entry in API responses.
type EntryResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Amount          string    `json:"amount"`
	Date            string    `json:"date"`
	Description     string    `json:"description,omitempty"`
	AgentName       string    `json:"agent_name,omitempty"`
	VehicleID       *string   `json:"vehicle_id,omitempty"`
	CashDeskID      *string   `json:"cash_desk_id,omitempty"`
	MaintenanceType string    `json:"maintenance_type,omitempty"`
	MileageAtEntry  *int      `json:"mileage_at_entry,omitempty"`
	ReceiptPhoto    string    `json:"receipt_photo,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// EntryListResponse represents the response body for listing entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain FinancialEntry to an EntryResponse DTO.
func ToEntryResponse(e *entity.FinancialEntry) EntryResponse {
	resp := EntryResponse{
		ID:              e.ID.String(),
		Type:            string(e.Type),
		Status:          string(e.Status),
		Amount:          e.Amount.String(),
		Date:            e.Date.Format("2006-01-02"),
		Description:     e.Description,
		AgentName:       e.AgentName,
		MaintenanceType: e.MaintenanceType,
		MileageAtEntry:  e.MileageAtEntry,
		ReceiptPhoto:    e.ReceiptPhoto,
		CreatedBy:       e.CreatedBy.String(),
		CreatedAt:       e.CreatedAt,
	}
	if e.VehicleID != nil {
		s := e.VehicleID.String()
		resp.VehicleID = &s
	}
	if e.CashDeskID != nil {
		s := e.CashDeskID.String()
		resp.CashDeskID = &s
	}
	return resp
}

// ToEntryListResponse converts a slice of entries to an EntryListResponse.
func ToEntryListResponse(entries []*entity.FinancialEntry) EntryListResponse {
	resp := EntryListResponse{Entries: []EntryResponse{}}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ToEntryResponse(e))
	}
	return resp
}
