package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/middleware"
	"novelhub/internal/api/service"
)

type TopUpHandler struct {
	topUpService service.TopUpService
}

func NewTopUpHandler(topUpService service.TopUpService) *TopUpHandler {
	return &TopUpHandler{topUpService: topUpService}
}

// RegisterRoutes registers top-up routes (parent group is authenticated)
func (h *TopUpHandler) RegisterRoutes(router *gin.RouterGroup) {
	topup := router.Group("/topup")
	{
		topup.GET("/packages", h.Packages)
		topup.POST("/request", h.Request)
		topup.POST("/:id/approve", middleware.RequireAdmin(), h.Approve)
		topup.POST("/:id/reject", middleware.RequireAdmin(), h.Reject)
	}
}

// Packages lists the purchasable point packages
// GET /api/topup/packages
func (h *TopUpHandler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.topUpService.Packages()})
}

// Request submits a transfer notice for admin review
// POST /api/topup/request
func (h *TopUpHandler) Request(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.TopUpRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.topUpService.Request(userID.(string), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPackage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Approve credits the requester and notifies them
// POST /api/topup/:id/approve
func (h *TopUpHandler) Approve(c *gin.Context) {
	result, err := h.topUpService.Approve(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reject notifies the requester without crediting
// POST /api/topup/:id/reject
func (h *TopUpHandler) Reject(c *gin.Context) {
	result, err := h.topUpService.Reject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
