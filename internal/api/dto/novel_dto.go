package dto

import (
	"novelhub/internal/api/models"
)

// CreateNovelDTO for creating a novel (admin)
type CreateNovelDTO struct {
	TitleEn       string   `json:"title_en" binding:"required,min=1,max=200"`
	TitleOriginal string   `json:"title_original,omitempty"`
	TitleTh       string   `json:"title_th,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
	Status        string   `json:"status" binding:"required"`
	Language      string   `json:"language" binding:"required"`
	Genres        []string `json:"genres,omitempty"`
	Author        string   `json:"author" binding:"required"`
	WriterID      string   `json:"writer_id,omitempty"`
	IsCopyrighted bool     `json:"is_copyrighted"`
	Description   string   `json:"description,omitempty"`
	TotalChapters int      `json:"total_chapters,omitempty"`
}

// UpdateNovelDTO for updating a novel (admin); empty fields keep their value
type UpdateNovelDTO struct {
	TitleEn       string   `json:"title_en,omitempty"`
	TitleOriginal string   `json:"title_original,omitempty"`
	TitleTh       string   `json:"title_th,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
	Status        string   `json:"status,omitempty"`
	Language      string   `json:"language,omitempty"`
	Genres        []string `json:"genres,omitempty"`
	Author        string   `json:"author,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// UpsertChapterDTO for creating or replacing a chapter (admin)
type UpsertChapterDTO struct {
	Number int    `json:"number" binding:"required,min=1"`
	Title  string `json:"title" binding:"required"`
	Price  int    `json:"price" binding:"min=0"`
}

// CreateCommentDTO for commenting on a chapter
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// CoffeeSupportDTO for sending coffee support to a novel's writer
type CoffeeSupportDTO struct {
	CupSize string `json:"cup_size" binding:"required"`
	Amount  int    `json:"amount" binding:"required,min=1"`
	Message string `json:"message,omitempty"`
}

// ChapterResponse is a chapter decorated with the caller's access state.
type ChapterResponse struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Unlocked bool   `json:"unlocked"`
}

// NovelDetailResponse is a novel plus its chapter list.
type NovelDetailResponse struct {
	Novel    models.Novel      `json:"novel"`
	Chapters []ChapterResponse `json:"chapters"`
}

// PaginatedNovelResponse for returning paginated catalog listings
type PaginatedNovelResponse struct {
	Data       []models.Novel `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// NewPaginatedNovelResponse creates a paginated novel response
func NewPaginatedNovelResponse(data []models.Novel, total, page, pageSize int) *PaginatedNovelResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedNovelResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// UnlockResponse reports the outcome of a chapter unlock.
type UnlockResponse struct {
	NovelID       string `json:"novel_id"`
	ChapterNumber int    `json:"chapter_number"`
	Deducted      int    `json:"deducted"`
	Balance       int    `json:"balance"`
	AlreadyOwned  bool   `json:"already_owned"`
}
