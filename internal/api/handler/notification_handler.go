package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/repository"
	"novelhub/internal/api/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// RegisterRoutes registers notification routes (parent group is authenticated)
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.POST("", h.Send)
		notifications.POST("/:id/read", h.MarkRead)
		notifications.DELETE("/:id", h.Delete)
	}
}

// List returns the caller's inbox, newest first
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	list, err := h.notificationService.ListForUser(userID.(string))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// Send inserts a new record into the directory
// POST /api/notifications
func (h *NotificationHandler) Send(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateNotificationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.notificationService.Send(userID.(string), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToNotificationResponse(record))
}

// MarkRead flips the read flag; missing ids are not an error
// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.notificationService.MarkRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Delete removes a record; missing ids are not an error
// DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	h.notificationService.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
