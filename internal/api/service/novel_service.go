package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/models"
	"novelhub/internal/api/repository"
)

// NovelService covers the catalog: browsing, detail views with per-user access
// state, admin content management, chapter comments and coffee support.
type NovelService interface {
	Browse(filter repository.NovelFilter, page, pageSize int) (*dto.PaginatedNovelResponse, error)
	GetDetail(novelID, userID string) (*dto.NovelDetailResponse, error)

	Create(req dto.CreateNovelDTO, freeChapters, chapterPrice int) (*models.Novel, error)
	Update(novelID string, req dto.UpdateNovelDTO) (*models.Novel, error)
	Delete(novelID string) error
	UpsertChapter(novelID string, req dto.UpsertChapterDTO) error
	DeleteChapter(novelID string, number int) error

	Comment(userID, novelID string, chapterNumber int, content string) error
	SupportCoffee(userID, novelID string, req dto.CoffeeSupportDTO) error
}

type novelService struct {
	novelRepo        repository.NovelRepository
	accessRepo       repository.ChapterAccessRepository
	userRepo         repository.UserRepository
	directory        *repository.NotificationDirectory
	log              *logrus.Logger
	simulatedLatency time.Duration
}

func NewNovelService(
	novelRepo repository.NovelRepository,
	accessRepo repository.ChapterAccessRepository,
	userRepo repository.UserRepository,
	directory *repository.NotificationDirectory,
	log *logrus.Logger,
	simulatedLatency time.Duration,
) NovelService {
	return &novelService{
		novelRepo:        novelRepo,
		accessRepo:       accessRepo,
		userRepo:         userRepo,
		directory:        directory,
		log:              log,
		simulatedLatency: simulatedLatency,
	}
}

func (s *novelService) Browse(filter repository.NovelFilter, page, pageSize int) (*dto.PaginatedNovelResponse, error) {
	novels, total, err := s.novelRepo.List(filter, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedNovelResponse(novels, total, page, pageSize), nil
}

// GetDetail returns the novel and its chapters decorated with the caller's
// unlock state. An empty userID means an anonymous visitor: only the free tier
// shows as unlocked.
func (s *novelService) GetDetail(novelID, userID string) (*dto.NovelDetailResponse, error) {
	novel, err := s.novelRepo.GetByID(novelID)
	if err != nil {
		return nil, ErrNovelNotFound
	}

	chapters, err := s.novelRepo.GetChapters(novelID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ChapterResponse, 0, len(chapters))
	for _, chapter := range chapters {
		unlocked := chapter.Free()
		if !unlocked && userID != "" {
			unlocked = s.accessRepo.IsUnlocked(userID, novelID, chapter.Number)
		}
		responses = append(responses, dto.ChapterResponse{
			Number:   chapter.Number,
			Title:    chapter.Title,
			Price:    chapter.Price,
			Unlocked: unlocked,
		})
	}

	return &dto.NovelDetailResponse{
		Novel:    *novel,
		Chapters: responses,
	}, nil
}

func (s *novelService) Create(req dto.CreateNovelDTO, freeChapters, chapterPrice int) (*models.Novel, error) {
	novel := &models.Novel{
		ID:            uuid.New().String(),
		TitleEn:       req.TitleEn,
		TitleOriginal: req.TitleOriginal,
		TitleTh:       req.TitleTh,
		CoverURL:      req.CoverURL,
		Status:        models.NovelStatus(req.Status),
		Language:      models.NovelLanguage(req.Language),
		Genres:        req.Genres,
		Author:        req.Author,
		WriterID:      req.WriterID,
		IsNew:         true,
		IsCopyrighted: req.IsCopyrighted,
		Description:   req.Description,
		CreatedAt:     time.Now(),
	}

	chapters := GenerateChapters(req.TotalChapters, freeChapters, chapterPrice)
	if err := s.novelRepo.Create(novel, chapters); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"novel_id": novel.ID,
		"title":    novel.TitleEn,
		"chapters": len(chapters),
	}).Info("novel created")

	return novel, nil
}

// GenerateChapters builds an ordered chapter list where the first freeChapters
// entries cost nothing and the rest cost price points each.
func GenerateChapters(total, freeChapters, price int) []models.Chapter {
	chapters := make([]models.Chapter, 0, total)
	for i := 1; i <= total; i++ {
		chapterPrice := price
		if i <= freeChapters {
			chapterPrice = 0
		}
		chapters = append(chapters, models.Chapter{
			Number:     i,
			Title:      fmt.Sprintf("Chapter %d", i),
			Price:      chapterPrice,
			ReleasedAt: time.Now(),
		})
	}
	return chapters
}

func (s *novelService) Update(novelID string, req dto.UpdateNovelDTO) (*models.Novel, error) {
	novel, err := s.novelRepo.GetByID(novelID)
	if err != nil {
		return nil, ErrNovelNotFound
	}

	if req.TitleEn != "" {
		novel.TitleEn = req.TitleEn
	}
	if req.TitleOriginal != "" {
		novel.TitleOriginal = req.TitleOriginal
	}
	if req.TitleTh != "" {
		novel.TitleTh = req.TitleTh
	}
	if req.CoverURL != "" {
		novel.CoverURL = req.CoverURL
	}
	if req.Status != "" {
		novel.Status = models.NovelStatus(req.Status)
	}
	if req.Language != "" {
		novel.Language = models.NovelLanguage(req.Language)
	}
	if len(req.Genres) > 0 {
		novel.Genres = req.Genres
	}
	if req.Author != "" {
		novel.Author = req.Author
	}
	if req.Description != "" {
		novel.Description = req.Description
	}
	novel.IsUp = true

	if err := s.novelRepo.Update(novel); err != nil {
		return nil, err
	}
	return novel, nil
}

func (s *novelService) Delete(novelID string) error {
	if err := s.novelRepo.Delete(novelID); err != nil {
		return ErrNovelNotFound
	}
	return nil
}

func (s *novelService) UpsertChapter(novelID string, req dto.UpsertChapterDTO) error {
	err := s.novelRepo.UpsertChapter(novelID, models.Chapter{
		Number:     req.Number,
		Title:      req.Title,
		Price:      req.Price,
		ReleasedAt: time.Now(),
	})
	if err != nil {
		return ErrNovelNotFound
	}
	return nil
}

func (s *novelService) DeleteChapter(novelID string, number int) error {
	if err := s.novelRepo.DeleteChapter(novelID, number); err != nil {
		return ErrChapterNotFound
	}
	return nil
}

// Comment notifies the novel's writer about a new chapter comment.
func (s *novelService) Comment(userID, novelID string, chapterNumber int, content string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	novel, err := s.novelRepo.GetByID(novelID)
	if err != nil {
		return ErrNovelNotFound
	}
	if _, err := s.novelRepo.GetChapter(novelID, chapterNumber); err != nil {
		return ErrChapterNotFound
	}

	s.directory.Add(models.Notification{
		Kind:         models.KindComment,
		SenderID:     user.ID,
		SenderName:   user.Username,
		TargetRole:   models.TargetWriter,
		TargetUserID: novel.WriterID,
		Title:        "New Comment",
		Message:      content,
		Payload: &models.NotificationPayload{
			NovelTitle:    novel.TitleEn,
			ChapterNumber: chapterNumber,
		},
	})
	return nil
}

// SupportCoffee sends a coffee cup to the novel's writer after the simulated
// payment delay.
func (s *novelService) SupportCoffee(userID, novelID string, req dto.CoffeeSupportDTO) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	novel, err := s.novelRepo.GetByID(novelID)
	if err != nil {
		return ErrNovelNotFound
	}

	time.Sleep(s.simulatedLatency)

	message := req.Message
	if message == "" {
		message = "No message"
	}

	s.directory.Add(models.Notification{
		Kind:         models.KindCoffee,
		SenderID:     user.ID,
		SenderName:   user.Username,
		TargetRole:   models.TargetWriter,
		TargetUserID: novel.WriterID,
		Title:        "Coffee Support!",
		Message:      fmt.Sprintf("%s from %s: %q", req.CupSize, user.Username, message),
		Payload: &models.NotificationPayload{
			Amount:     req.Amount,
			CupSize:    req.CupSize,
			NovelTitle: novel.TitleEn,
		},
	})

	s.log.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"novel_id": novelID,
		"cup_size": req.CupSize,
	}).Info("coffee support sent")

	return nil
}
