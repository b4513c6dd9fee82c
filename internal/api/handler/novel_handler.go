package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/middleware"
	"novelhub/internal/api/models"
	"novelhub/internal/api/repository"
	"novelhub/internal/api/service"
)

type NovelHandler struct {
	novelService  service.NovelService
	pointsService service.PointsService
	freeChapters  int
	chapterPrice  int
}

func NewNovelHandler(novelService service.NovelService, pointsService service.PointsService, freeChapters, chapterPrice int) *NovelHandler {
	return &NovelHandler{
		novelService:  novelService,
		pointsService: pointsService,
		freeChapters:  freeChapters,
		chapterPrice:  chapterPrice,
	}
}

// RegisterPublicRoutes registers catalog routes that need no session
func (h *NovelHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	novels := router.Group("/novels")
	{
		novels.GET("", h.List)
		novels.GET("/:novel_id", h.GetDetail)
	}
}

// RegisterProtectedRoutes registers reader actions (parent group is authenticated)
func (h *NovelHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	novels := router.Group("/novels")
	{
		novels.POST("/:novel_id/chapters/:number/unlock", h.Unlock)
		novels.POST("/:novel_id/chapters/:number/comments", h.Comment)
		novels.POST("/:novel_id/coffee", h.Coffee)
	}
}

// RegisterAdminRoutes registers content management routes
func (h *NovelHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	novels := router.Group("/novels", middleware.RequireAdmin())
	{
		novels.POST("", h.Create)
		novels.PUT("/:novel_id", h.Update)
		novels.DELETE("/:novel_id", h.Delete)
		novels.PUT("/:novel_id/chapters", h.UpsertChapter)
		novels.DELETE("/:novel_id/chapters/:number", h.DeleteChapter)
	}
}

// List browses the catalog with filters and pagination
// GET /api/novels?search=&language=&status=&genre=&page=1&page_size=20
func (h *NovelHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := repository.NovelFilter{
		Search:   c.Query("search"),
		Language: models.NovelLanguage(c.Query("language")),
		Status:   models.NovelStatus(c.Query("status")),
		Genre:    c.Query("genre"),
	}

	novels, err := h.novelService.Browse(filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, novels)
}

// GetDetail returns a novel with its chapter list; access state reflects the
// caller's session when an Authorization header was accepted upstream
// GET /api/novels/:novel_id
func (h *NovelHandler) GetDetail(c *gin.Context) {
	userID := c.GetString("userID") // empty for anonymous visitors

	detail, err := h.novelService.GetDetail(c.Param("novel_id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrNovelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Novel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Unlock spends points to open a paid chapter
// POST /api/novels/:novel_id/chapters/:number/unlock
func (h *NovelHandler) Unlock(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter number"})
		return
	}

	result, err := h.pointsService.Unlock(userID.(string), c.Param("novel_id"), number)
	if err != nil {
		var insufficient *service.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":     "Insufficient points",
				"have":      insufficient.Have,
				"need":      insufficient.Need,
				"shortfall": insufficient.Shortfall(),
			})
			return
		}
		if errors.Is(err, service.ErrNovelNotFound) || errors.Is(err, service.ErrChapterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Comment posts a chapter comment and notifies the writer
// POST /api/novels/:novel_id/chapters/:number/comments
func (h *NovelHandler) Comment(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter number"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.novelService.Comment(userID.(string), c.Param("novel_id"), number, req.Content); err != nil {
		if errors.Is(err, service.ErrNovelNotFound) || errors.Is(err, service.ErrChapterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment sent"})
}

// Coffee sends coffee support to the novel's writer
// POST /api/novels/:novel_id/coffee
func (h *NovelHandler) Coffee(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CoffeeSupportDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.novelService.SupportCoffee(userID.(string), c.Param("novel_id"), req); err != nil {
		if errors.Is(err, service.ErrNovelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Your support has been sent to the writer"})
}

// Create adds a novel to the catalog
// POST /api/admin/novels
func (h *NovelHandler) Create(c *gin.Context) {
	var req dto.CreateNovelDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	novel, err := h.novelService.Create(req, h.freeChapters, h.chapterPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, novel)
}

// Update edits novel metadata
// PUT /api/admin/novels/:novel_id
func (h *NovelHandler) Update(c *gin.Context) {
	var req dto.UpdateNovelDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	novel, err := h.novelService.Update(c.Param("novel_id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNovelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Novel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, novel)
}

// Delete removes a novel from the catalog
// DELETE /api/admin/novels/:novel_id
func (h *NovelHandler) Delete(c *gin.Context) {
	if err := h.novelService.Delete(c.Param("novel_id")); err != nil {
		if errors.Is(err, service.ErrNovelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Novel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Novel deleted"})
}

// UpsertChapter creates or replaces a chapter
// PUT /api/admin/novels/:novel_id/chapters
func (h *NovelHandler) UpsertChapter(c *gin.Context) {
	var req dto.UpsertChapterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.novelService.UpsertChapter(c.Param("novel_id"), req); err != nil {
		if errors.Is(err, service.ErrNovelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Novel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chapter saved"})
}

// DeleteChapter removes a chapter
// DELETE /api/admin/novels/:novel_id/chapters/:number
func (h *NovelHandler) DeleteChapter(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter number"})
		return
	}

	if err := h.novelService.DeleteChapter(c.Param("novel_id"), number); err != nil {
		if errors.Is(err, service.ErrChapterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chapter deleted"})
}
