package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/usecase/entry"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/middleware"
)

// EntryController handles financial entry endpoints.
type EntryController struct {
	createUseCase  *entry.CreateEntryUseCase
	listUseCase    *entry.ListEntriesUseCase
	updateUseCase  *entry.UpdateEntryUseCase
	approveUseCase *entry.ApproveEntryUseCase
	rejectUseCase  *entry.RejectEntryUseCase
	deleteUseCase  *entry.DeleteEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	createUseCase *entry.CreateEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	approveUseCase *entry.ApproveEntryUseCase,
	rejectUseCase *entry.RejectEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		approveUseCase: approveUseCase,
		rejectUseCase:  rejectUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	userName, _ := middleware.GetUserNameFromContext(ctx)
	userRole, _ := middleware.GetUserRoleFromContext(ctx)

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
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

	input := entry.CreateEntryInput{
		Type:            entity.EntryType(req.Type),
		Amount:          decimal.NewFromFloat(req.Amount),
		Date:            date,
		Description:     req.Description,
		MaintenanceType: req.MaintenanceType,
		MileageAtEntry:  req.MileageAtEntry,
		ReceiptPhoto:    req.ReceiptPhoto,
		AuthorID:        userID,
		AuthorName:      userName,
		AuthorRole:      userRole,
	}

	if req.VehicleID != nil && *req.VehicleID != "" {
		id, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid vehicle ID format",
			})
			return
		}
		input.VehicleID = &id
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
		c.writeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	input := entry.ListEntriesInput{}

	if vehicleIDStr := ctx.Query("vehicleId"); vehicleIDStr != "" {
		if id, err := uuid.Parse(vehicleIDStr); err == nil {
			input.VehicleID = &id
		}
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.EntryStatus(statusStr)
		input.Status = &status
	}
	if typeStr := ctx.Query("type"); typeStr != "" {
		entryType := entity.EntryType(typeStr)
		input.Type = &entryType
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Update handles PUT /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(ctx)

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := entry.UpdateEntryInput{
		ID:             entryID,
		Description:    req.Description,
		MileageAtEntry: req.MileageAtEntry,
		EditorRole:     userRole,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.writeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Approve handles POST /entries/:id/approve requests (admin only).
func (c *EntryController) Approve(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), entry.ApproveEntryInput{ID: entryID})
	if err != nil {
		c.writeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Reject handles POST /entries/:id/reject requests (admin only).
func (c *EntryController) Reject(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	output, err := c.rejectUseCase.Execute(ctx.Request.Context(), entry.RejectEntryInput{ID: entryID})
	if err != nil {
		c.writeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests (admin only).
func (c *EntryController) Delete(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{ID: entryID}); err != nil {
		c.writeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Entry deleted"})
}

// writeEntryError maps entry domain errors to HTTP responses.
func (c *EntryController) writeEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domainerror.ErrEntryNotFound),
			errors.Is(err, domainerror.ErrEntryVehicleNotFound),
			errors.Is(err, domainerror.ErrEntryCashDeskNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domainerror.ErrEntryNotPending):
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrEntryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Entry not found",
			Code:  string(domainerror.ErrCodeEntryNotFound),
		})
	case errors.Is(err, domainerror.ErrEntryNotPending):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Entry is not pending",
			Code:  string(domainerror.ErrCodeEntryNotPending),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}
