package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleet-manager/backend/internal/application/usecase/periodclose"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
)

// AdminController handles administrative endpoints.
type AdminController struct {
	closePeriodUseCase *periodclose.ClosePeriodUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(closePeriodUseCase *periodclose.ClosePeriodUseCase) *AdminController {
	return &AdminController{
		closePeriodUseCase: closePeriodUseCase,
	}
}

// ClosePeriod handles POST /admin/close-period requests (admin only).
func (c *AdminController) ClosePeriod(ctx *gin.Context) {
	var req dto.ClosePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: confirmation is required",
		})
		return
	}

	output, err := c.closePeriodUseCase.Execute(ctx.Request.Context(), periodclose.ClosePeriodInput{
		Confirmed: req.Confirm,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrConfirmationRequired) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Explicit confirmation required",
			})
			return
		}
		var closeErr *domainerror.PeriodCloseError
		if errors.As(err, &closeErr) {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Period close failed at step: " + closeErr.FailedStep,
				Details: closeErr.Error(),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Period close failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ClosePeriodResponse{
		AccumulatedRevenue:  output.Historical.AccumulatedRevenue.String(),
		AccumulatedExpenses: output.Historical.AccumulatedExpenses.String(),
		AccumulatedProfit:   output.Historical.AccumulatedProfit.String(),
		LastPurgeDate:       output.Historical.LastPurgeDate,
		DeactivatedUsers:    output.DeactivatedUsers,
	})
}
