package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/usecase/maintenance"
	"github.com/fleet-manager/backend/internal/application/usecase/vehicle"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
)

// VehicleController handles vehicle endpoints.
type VehicleController struct {
	createUseCase    *vehicle.CreateVehicleUseCase
	listUseCase      *vehicle.ListVehiclesUseCase
	mileageUseCase   *vehicle.UpdateMileageUseCase
	archiveUseCase   *vehicle.ArchiveVehicleUseCase
	simulateUseCase  *vehicle.SimulateResaleUseCase
	addConfigUseCase *vehicle.AddMaintenanceConfigUseCase
	postponeUseCase  *maintenance.PostponeMaintenanceUseCase
}

// NewVehicleController creates a new vehicle controller instance.
func NewVehicleController(
	createUseCase *vehicle.CreateVehicleUseCase,
	listUseCase *vehicle.ListVehiclesUseCase,
	mileageUseCase *vehicle.UpdateMileageUseCase,
	archiveUseCase *vehicle.ArchiveVehicleUseCase,
	simulateUseCase *vehicle.SimulateResaleUseCase,
	addConfigUseCase *vehicle.AddMaintenanceConfigUseCase,
	postponeUseCase *maintenance.PostponeMaintenanceUseCase,
) *VehicleController {
	return &VehicleController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		mileageUseCase:   mileageUseCase,
		archiveUseCase:   archiveUseCase,
		simulateUseCase:  simulateUseCase,
		addConfigUseCase: addConfigUseCase,
		postponeUseCase:  postponeUseCase,
	}
}

// Create handles POST /vehicles requests.
func (c *VehicleController) Create(ctx *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	registrationDate, err := time.Parse("2006-01-02", req.RegistrationDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid registration date format. Use YYYY-MM-DD",
		})
		return
	}

	input := vehicle.CreateVehicleInput{
		Name:             req.Name,
		Plate:            req.Plate,
		PurchasePrice:    decimal.NewFromFloat(req.PurchasePrice),
		RegistrationDate: registrationDate,
		LastMileage:      req.LastMileage,
		Photo:            req.Photo,
	}
	for _, cfg := range req.Configs {
		input.Configs = append(input.Configs, vehicle.MaintenanceConfigInput{
			Type:       cfg.Type,
			IntervalKm: cfg.IntervalKm,
			NextDueKm:  cfg.NextDueKm,
		})
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleResponse(output.Vehicle))
}

// List handles GET /vehicles requests.
func (c *VehicleController) List(ctx *gin.Context) {
	input := vehicle.ListVehiclesInput{
		IncludeArchived: ctx.Query("includeArchived") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve vehicles",
		})
		return
	}

	response := dto.VehicleListResponse{Vehicles: []dto.VehicleResponse{}}
	for _, v := range output.Vehicles {
		response.Vehicles = append(response.Vehicles, dto.ToVehicleResponse(v))
	}
	ctx.JSON(http.StatusOK, response)
}

// UpdateMileage handles PUT /vehicles/:id/mileage requests.
func (c *VehicleController) UpdateMileage(ctx *gin.Context) {
	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	var req dto.UpdateMileageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.mileageUseCase.Execute(ctx.Request.Context(), vehicle.UpdateMileageInput{
		VehicleID: vehicleID,
		Mileage:   req.Mileage,
	})
	if err != nil {
		c.writeVehicleError(ctx, err)
		return
	}

	response := struct {
		Vehicle      dto.VehicleResponse        `json:"vehicle"`
		RaisedAlerts []dto.NotificationResponse `json:"raised_alerts"`
	}{
		Vehicle:      dto.ToVehicleResponse(output.Vehicle),
		RaisedAlerts: []dto.NotificationResponse{},
	}
	for _, n := range output.RaisedAlerts {
		response.RaisedAlerts = append(response.RaisedAlerts, dto.ToNotificationResponse(n))
	}
	ctx.JSON(http.StatusOK, response)
}

// Archive handles POST /vehicles/:id/archive requests.
func (c *VehicleController) Archive(ctx *gin.Context) {
	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	var req dto.ArchiveVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale date format. Use YYYY-MM-DD",
		})
		return
	}

	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), vehicle.ArchiveVehicleInput{
		VehicleID: vehicleID,
		SalePrice: decimal.NewFromFloat(req.SalePrice),
		SaleDate:  saleDate,
	})
	if err != nil {
		c.writeVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(output.Vehicle))
}

// SimulateResale handles PUT /vehicles/:id/resale-simulation requests.
func (c *VehicleController) SimulateResale(ctx *gin.Context) {
	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	var req dto.SimulateResaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := vehicle.SimulateResaleInput{VehicleID: vehicleID}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.writeVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(output.Vehicle))
}

// AddConfig handles POST /vehicles/:id/maintenance-configs requests.
func (c *VehicleController) AddConfig(ctx *gin.Context) {
	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	var req dto.MaintenanceConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addConfigUseCase.Execute(ctx.Request.Context(), vehicle.AddMaintenanceConfigInput{
		VehicleID:  vehicleID,
		Type:       req.Type,
		IntervalKm: req.IntervalKm,
		NextDueKm:  req.NextDueKm,
	})
	if err != nil {
		c.writeVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleResponse(output.Vehicle))
}

// PostponeMaintenance handles POST /vehicles/:id/maintenance-postpone requests.
func (c *VehicleController) PostponeMaintenance(ctx *gin.Context) {
	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	var req dto.PostponeMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.postponeUseCase.Execute(ctx.Request.Context(), maintenance.PostponeMaintenanceInput{
		VehicleID:       vehicleID,
		MaintenanceType: req.MaintenanceType,
		ExtraKm:         req.ExtraKm,
	})
	if err != nil {
		c.writeVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"next_due_km": output.NextDueKm})
}

// writeVehicleError maps vehicle domain errors to HTTP responses.
func (c *VehicleController) writeVehicleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrVehicleNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Vehicle not found",
			Code:  string(domainerror.ErrCodeVehicleNotFound),
		})
	case errors.Is(err, domainerror.ErrMaintenanceConfigNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Maintenance config not found",
			Code:  string(domainerror.ErrCodeMaintenanceConfigNotFound),
		})
	case errors.Is(err, domainerror.ErrMileageDecrease):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Mileage cannot decrease",
			Code:  string(domainerror.ErrCodeMileageDecrease),
		})
	case errors.Is(err, domainerror.ErrVehicleArchived):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Vehicle is archived",
			Code:  string(domainerror.ErrCodeVehicleArchived),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}
