package handlers

import (
	"vahub_backend/internal/middleware"
	"vahub_backend/internal/services"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages", middleware.AuthMiddleware())
	{
		messages.POST("", h.Send)
		messages.GET("/:userId", h.Conversation)
	}
}

func (h *MessageHandler) Send(c *gin.Context) {
	senderID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(senderID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, message)
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	messages, err := h.messageService.GetConversation(userID, c.Param("userId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, messages)
}
