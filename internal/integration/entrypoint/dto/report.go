package dto

import (
	"github.com/fleet-manager/backend/internal/application/usecase/report"
)

// ReportResponse represents the KPI report in API responses. The snapshot
// serializes with its own field names.
type ReportResponse struct {
	Report *report.Snapshot `json:"report"`
	Cached bool             `json:"cached"`
}
