package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleet-manager/backend/internal/application/usecase/report"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
)

// ReportController handles KPI report and data export endpoints.
type ReportController struct {
	reportUseCase *report.GetReportUseCase
	exportUseCase *report.ExportDataUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	reportUseCase *report.GetReportUseCase,
	exportUseCase *report.ExportDataUseCase,
) *ReportController {
	return &ReportController{
		reportUseCase: reportUseCase,
		exportUseCase: exportUseCase,
	}
}

// Get handles GET /report requests.
func (c *ReportController) Get(ctx *gin.Context) {
	input := report.GetReportInput{
		SkipCache: ctx.Query("refresh") == "true",
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ReportResponse{
		Report: output.Snapshot,
		Cached: output.Cached,
	})
}

// Export handles GET /export requests (admin only). The full-state JSON
// document is the operator's backup before a period close.
func (c *ReportController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to assemble export",
		})
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=fleet-export.json")
	ctx.JSON(http.StatusOK, output.Document)
}
