package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/usecase/notification"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase    *notification.ListNotificationsUseCase
	archiveUseCase *notification.ArchiveNotificationUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	archiveUseCase *notification.ArchiveNotificationUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:    listUseCase,
		archiveUseCase: archiveUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	input := notification.ListNotificationsInput{
		IncludeArchived: ctx.Query("includeArchived") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	response := dto.NotificationListResponse{Notifications: []dto.NotificationResponse{}}
	for _, n := range output.Notifications {
		response.Notifications = append(response.Notifications, dto.ToNotificationResponse(n))
	}
	ctx.JSON(http.StatusOK, response)
}

// Archive handles POST /notifications/:id/archive requests.
func (c *NotificationController) Archive(ctx *gin.Context) {
	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	archivedBy, _ := middleware.GetUserNameFromContext(ctx)

	input := notification.ArchiveNotificationInput{
		ID:         notificationID,
		ArchivedBy: archivedBy,
	}
	if err := c.archiveUseCase.Execute(ctx.Request.Context(), input); err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Notification not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to archive notification",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification archived"})
}
