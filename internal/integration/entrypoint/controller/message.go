package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleet-manager/backend/internal/application/usecase/message"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/dto"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/middleware"
)

// MessageController handles team chat endpoints.
type MessageController struct {
	sendUseCase *message.SendMessageUseCase
	listUseCase *message.ListMessagesUseCase
}

// NewMessageController creates a new message controller instance.
func NewMessageController(
	sendUseCase *message.SendMessageUseCase,
	listUseCase *message.ListMessagesUseCase,
) *MessageController {
	return &MessageController{
		sendUseCase: sendUseCase,
		listUseCase: listUseCase,
	}
}

// Send handles POST /messages requests.
func (c *MessageController) Send(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	userName, _ := middleware.GetUserNameFromContext(ctx)

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), message.SendMessageInput{
		AuthorID:   userID,
		AuthorName: userName,
		Body:       req.Body,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToChatMessageResponse(output.Message))
}

// List handles GET /messages requests.
func (c *MessageController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve messages",
		})
		return
	}

	response := dto.ChatMessageListResponse{Messages: []dto.ChatMessageResponse{}}
	for _, m := range output.Messages {
		response.Messages = append(response.Messages, dto.ToChatMessageResponse(m))
	}
	ctx.JSON(http.StatusOK, response)
}
