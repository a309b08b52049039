package dto

import "time"

// ClosePeriodRequest represents the request body for the period close.
// The confirmation flag must be true; the procedure is irreversible.
type ClosePeriodRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}

// ClosePeriodResponse represents the response body of a completed close.
type ClosePeriodResponse struct {
	AccumulatedRevenue  string     `json:"accumulated_revenue"`
	AccumulatedExpenses string     `json:"accumulated_expenses"`
	AccumulatedProfit   string     `json:"accumulated_profit"`
	LastPurgeDate       *time.Time `json:"last_purge_date,omitempty"`
	DeactivatedUsers    int        `json:"deactivated_users"`
}
