package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleet-manager/backend/internal/application/usecase/cashdesk"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
)

// CashDeskController handles cash desk endpoints.
type CashDeskController struct {
	listUseCase *cashdesk.ListCashDesksUseCase
}

// NewCashDeskController creates a new cash desk controller instance.
func NewCashDeskController(listUseCase *cashdesk.ListCashDesksUseCase) *CashDeskController {
	return &CashDeskController{
		listUseCase: listUseCase,
	}
}

// List handles GET /cash-desks requests.
func (c *CashDeskController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve cash desks",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashDeskListResponse(output))
}
