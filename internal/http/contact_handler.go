package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecofolio/internal/domain"
	"ecofolio/internal/service"
)

// ContactSubmitter es lo que el handler necesita del servicio de contacto.
type ContactSubmitter interface {
	Submit(ctx context.Context, name, email, message string) (domain.ContactMessage, error)
}

type ContactHandler struct {
	logger  *zap.Logger
	contact ContactSubmitter
}

func NewContactHandler(logger *zap.Logger, contact ContactSubmitter) *ContactHandler {
	return &ContactHandler{logger: logger, contact: contact}
}

// PostContact maneja POST /api/contact.
func (h *ContactHandler) PostContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.contact.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	switch {
	case errors.Is(err, service.ErrContactInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	case err != nil:
		h.logger.Error("contact submit failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not deliver message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      msg.ID,
		"message": "Obrigado pela mensagem! Retornarei em breve.",
	})
}
