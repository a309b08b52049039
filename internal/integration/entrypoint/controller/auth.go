package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/usecase/auth"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication and user management endpoints.
type AuthController struct {
	loginUseCase      *auth.LoginUserUseCase
	registerUseCase   *auth.RegisterUserUseCase
	listUseCase       *auth.ListUsersUseCase
	deactivateUseCase *auth.DeactivateUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUserUseCase,
	registerUseCase *auth.RegisterUserUseCase,
	listUseCase *auth.ListUsersUseCase,
	deactivateUseCase *auth.DeactivateUserUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:      loginUseCase,
		registerUseCase:   registerUseCase,
		listUseCase:       listUseCase,
		deactivateUseCase: deactivateUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserInactive) {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Account is deactivated",
				Code:  string(domainerror.ErrCodeUserInactive),
			})
			return
		}
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid email or password",
			Code:  string(domainerror.ErrCodeInvalidCredentials),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.User),
	})
}

// Register handles POST /users requests (admin only).
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     entity.UserRole(req.Role),
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{
				Error: "Email already registered",
				Code:  string(domainerror.ErrCodeEmailAlreadyExists),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// List handles GET /users requests (admin only).
func (c *AuthController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve users",
		})
		return
	}

	response := dto.UserListResponse{Users: []dto.UserResponse{}}
	for _, u := range output.Users {
		response.Users = append(response.Users, dto.ToUserResponse(u))
	}
	ctx.JSON(http.StatusOK, response)
}

// Deactivate handles POST /users/:id/deactivate requests (admin only).
func (c *AuthController) Deactivate(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	if err := c.deactivateUseCase.Execute(ctx.Request.Context(), auth.DeactivateUserInput{UserID: userID}); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to deactivate user",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deactivated"})
}
