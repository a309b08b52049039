package dto

import (
	"github.com/fleet-manager/backend/internal/application/usecase/cashdesk"
)

// CashDeskResponse represents a cash desk in API responses.
type CashDeskResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	OwnerName string `json:"owner_name"`
	Balance   string `json:"balance"`
}

// CashDeskListResponse represents the response body for listing cash desks.
type CashDeskListResponse struct {
	Desks []CashDeskResponse `json:"desks"`
	Total string             `json:"total"`
}

// ToCashDeskListResponse converts the list use case output to a DTO.
func ToCashDeskListResponse(output *cashdesk.ListCashDesksOutput) CashDeskListResponse {
	resp := CashDeskListResponse{
		Desks: []CashDeskResponse{},
		Total: output.Total.String(),
	}
	for _, d := range output.Desks {
		resp.Desks = append(resp.Desks, CashDeskResponse{
			ID:        d.Desk.ID.String(),
			UserID:    d.Desk.UserID.String(),
			OwnerName: d.OwnerName,
			Balance:   d.Desk.Balance.String(),
		})
	}
	return resp
}
