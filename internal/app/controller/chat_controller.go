package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	httperrors "github.com/luxe-fashion/luxe-backend/internal/errors"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
)

type ChatController struct {
	chatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// GetGreeting returns the assistant's opening message
// GET /api/v1/chat/greeting
func (ctrl *ChatController) GetGreeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": ctrl.chatService.Greeting(),
	})
}

// SendMessage returns the assistant reply for one user message
// POST /api/v1/chat
func (ctrl *ChatController) SendMessage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid chat request", map[string]interface{}{
			"error": err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ChatEmptyMessage, "Vui lòng nhập tin nhắn")
		return
	}

	reply, err := ctrl.chatService.Respond(req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			httperrors.BadRequest(c, httperrors.ChatEmptyMessage, "Vui lòng nhập tin nhắn")
			return
		}
		log.Error("Failed to generate assistant reply", err)
		httperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": reply,
	})
}
