package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "forum-backend/internal/common/errors"
	"forum-backend/internal/common/middleware"
	"forum-backend/internal/features/message/models"
	"forum-backend/internal/features/message/service"
)

type MessageHandler struct {
	service service.MessageService
}

func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{
		service: service,
	}
}

func (h *MessageHandler) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	api.GET("/messages", h.list)

	messages := api.Group("/messages")
	messages.Use(requireAuth)
	{
		messages.POST("", h.create)
		messages.PUT("/:id", h.update)
		messages.DELETE("/:id", h.delete)
	}
}

func (h *MessageHandler) list(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeUnauthenticated, "authorization token required"))
		return
	}

	var req models.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "message content cannot be empty"))
		return
	}

	message, err := h.service.Create(c.Request.Context(), claims.UserID, req.Content)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) update(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeUnauthenticated, "authorization token required"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "invalid message id"))
		return
	}

	var req models.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "invalid request body"))
		return
	}

	if err := h.service.Update(c.Request.Context(), claims.UserID, claims.IsAdmin, id, req.Content); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message updated"})
}

func (h *MessageHandler) delete(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeUnauthenticated, "authorization token required"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.AbortWithError(c, apperrors.New(apperrors.ErrCodeValidation, "invalid message id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), claims.UserID, claims.IsAdmin, id); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
