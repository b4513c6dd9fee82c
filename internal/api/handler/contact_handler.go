package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/middleware"
	"novelhub/internal/api/service"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// RegisterRoutes registers contact routes (parent group is authenticated)
func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	contact := router.Group("/contact")
	{
		contact.POST("", h.Submit)
		contact.POST("/:id/reply", middleware.RequireAdmin(), h.Reply)
	}
}

// Submit files a contact message for the admin inbox
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.ContactMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.contactService.Submit(userID.(string), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"notification_id": record.ID,
		"message":         "Message sent to the admin team",
	})
}

// Reply answers a contact message and retires it; a stale id is not an error
// POST /api/contact/:id/reply
func (h *ContactHandler) Reply(c *gin.Context) {
	var req dto.ContactReplyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.contactService.Reply(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reply == nil {
		c.JSON(http.StatusOK, gin.H{"status": "noop", "message": "Message no longer exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "replied",
		"notification_id": reply.ID,
	})
}
