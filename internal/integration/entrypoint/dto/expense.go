package dto

import (
	"time"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// CreateGlobalExpenseRequest represents the request body for a fleet-wide
// expense.
type CreateGlobalExpenseRequest struct {
	Label      string  `json:"label" binding:"required,min=1,max=255"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Date       string  `json:"date" binding:"required"`
	CashDeskID *string `json:"cash_desk_id,omitempty"`
}

// GlobalExpenseResponse represents a global expense in API responses.
type GlobalExpenseResponse struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Amount     string    `json:"amount"`
	Date       string    `json:"date"`
	CashDeskID *string   `json:"cash_desk_id,omitempty"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// GlobalExpenseListResponse represents the response body for listing
// global expenses.
type GlobalExpenseListResponse struct {
	Expenses []GlobalExpenseResponse `json:"expenses"`
}

// ToGlobalExpenseResponse converts a domain GlobalExpense to a DTO.
func ToGlobalExpenseResponse(g *entity.GlobalExpense) GlobalExpenseResponse {
	resp := GlobalExpenseResponse{
		ID:        g.ID.String(),
		Label:     g.Label,
		Amount:    g.Amount.String(),
		Date:      g.Date.Format("2006-01-02"),
		CreatedBy: g.CreatedBy.String(),
		CreatedAt: g.CreatedAt,
	}
	if g.CashDeskID != nil {
		s := g.CashDeskID.String()
		resp.CashDeskID = &s
	}
	return resp
}
