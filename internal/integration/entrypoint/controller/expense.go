package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/usecase/expense"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles global expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateGlobalExpenseUseCase
	listUseCase   *expense.ListGlobalExpensesUseCase
	deleteUseCase *expense.DeleteGlobalExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateGlobalExpenseUseCase,
	listUseCase *expense.ListGlobalExpensesUseCase,
	deleteUseCase *expense.DeleteGlobalExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /global-expenses requests (admin only).
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateGlobalExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}

	input := expense.CreateGlobalExpenseInput{
		Label:    req.Label,
		Amount:   decimal.NewFromFloat(req.Amount),
		Date:     date,
		AuthorID: userID,
	}
	if req.CashDeskID != nil && *req.CashDeskID != "" {
		id, err := uuid.Parse(*req.CashDeskID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid cash desk ID format",
			})
			return
		}
		input.CashDeskID = &id
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrCashDeskNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Cash desk not found",
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGlobalExpenseResponse(output.Expense))
}

// List handles GET /global-expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve global expenses",
		})
		return
	}

	response := dto.GlobalExpenseListResponse{Expenses: []dto.GlobalExpenseResponse{}}
	for _, g := range output.Expenses {
		response.Expenses = append(response.Expenses, dto.ToGlobalExpenseResponse(g))
	}
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /global-expenses/:id requests (admin only).
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteGlobalExpenseInput{ID: expenseID}); err != nil {
		if errors.Is(err, domainerror.ErrGlobalExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Global expense not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete global expense",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Global expense deleted"})
}
