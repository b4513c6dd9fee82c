package service

import (
	"errors"
	"fmt"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/repository"
)

var (
	ErrNovelNotFound   = errors.New("novel not found")
	ErrChapterNotFound = errors.New("chapter not found")
)

// InsufficientBalanceError reports a failed unlock together with the shortfall
// so the caller can surface a top-up call to action.
type InsufficientBalanceError struct {
	Have int
	Need int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d points, need %d", e.Have, e.Need)
}

// Shortfall is the number of points missing.
func (e *InsufficientBalanceError) Shortfall() int {
	return e.Need - e.Have
}

// PointsService owns every mutation of a user's point balance: unlock
// deductions and top-up approval credits. Nothing else touches the ledger.
type PointsService interface {
	Unlock(userID, novelID string, chapterNumber int) (*dto.UnlockResponse, error)
	CreditFromApproval(userID string, amount int) (int, error)
}

type pointsService struct {
	userRepo   repository.UserRepository
	novelRepo  repository.NovelRepository
	accessRepo repository.ChapterAccessRepository
}

func NewPointsService(
	userRepo repository.UserRepository,
	novelRepo repository.NovelRepository,
	accessRepo repository.ChapterAccessRepository,
) PointsService {
	return &pointsService{
		userRepo:   userRepo,
		novelRepo:  novelRepo,
		accessRepo: accessRepo,
	}
}

// Unlock deducts the chapter price from the user's balance and marks the
// chapter unlocked. Free and already-unlocked chapters deduct nothing, so a
// repeated unlock never charges twice.
func (s *pointsService) Unlock(userID, novelID string, chapterNumber int) (*dto.UnlockResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.novelRepo.GetByID(novelID); err != nil {
		return nil, ErrNovelNotFound
	}
	chapter, err := s.novelRepo.GetChapter(novelID, chapterNumber)
	if err != nil {
		return nil, ErrChapterNotFound
	}

	if chapter.Free() || s.accessRepo.IsUnlocked(userID, novelID, chapterNumber) {
		return &dto.UnlockResponse{
			NovelID:       novelID,
			ChapterNumber: chapterNumber,
			Deducted:      0,
			Balance:       user.Points,
			AlreadyOwned:  true,
		}, nil
	}

	if user.Points < chapter.Price {
		return nil, &InsufficientBalanceError{Have: user.Points, Need: chapter.Price}
	}

	balance, err := s.userRepo.AdjustPoints(userID, -chapter.Price)
	if err != nil {
		// Balance changed between the check and the deduction; report it the
		// same way as the precondition failure.
		if errors.Is(err, repository.ErrNegativeBalance) {
			return nil, &InsufficientBalanceError{Have: balance, Need: chapter.Price}
		}
		return nil, err
	}
	s.accessRepo.Unlock(userID, novelID, chapterNumber)

	return &dto.UnlockResponse{
		NovelID:       novelID,
		ChapterNumber: chapterNumber,
		Deducted:      chapter.Price,
		Balance:       balance,
	}, nil
}

// CreditFromApproval adds points to a user's balance. Only the top-up approval
// flow calls this; it is never user-initiated.
func (s *pointsService) CreditFromApproval(userID string, amount int) (int, error) {
	return s.userRepo.AdjustPoints(userID, amount)
}
