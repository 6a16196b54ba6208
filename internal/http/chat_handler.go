package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecofolio/internal/domain"
	"ecofolio/internal/service"
)

// ChatHandler corre turnos del asistente. El historial lo guarda el cliente
// y llega completo en cada request, sin limite de largo; el gateway solo
// reenvia la ventana final.
type ChatHandler struct {
	logger  *zap.Logger
	gateway service.Responder
}

func NewChatHandler(logger *zap.Logger, gateway service.Responder) *ChatHandler {
	return &ChatHandler{logger: logger, gateway: gateway}
}

type chatMessageRequest struct {
	ID      string `json:"id"`
	Role    string `json:"role" binding:"required"`
	Text    string `json:"text"`
	IsError bool   `json:"is_error"`
}

// PostChat maneja POST /api/chat.
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req struct {
		History []chatMessageRequest `json:"history" binding:"dive"`
		Message string               `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrEmptyMessage.Error()})
		return
	}

	history := make([]domain.ChatMessage, 0, len(req.History))
	for _, m := range req.History {
		role, ok := domain.ParseRole(m.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid history role"})
			return
		}
		history = append(history, domain.ChatMessage{
			ID:      m.ID,
			Role:    role,
			Text:    m.Text,
			IsError: m.IsError,
		})
	}

	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Text:      req.Message,
		CreatedAt: time.Now().UTC(),
	}

	reply := h.gateway.ReplyMessage(c.Request.Context(), history, req.Message)

	c.JSON(http.StatusOK, gin.H{
		"user_message":      userMsg,
		"assistant_message": reply,
	})
}
