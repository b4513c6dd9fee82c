package repository

import (
	"sort"
	"sync"
)

// ChapterAccessRepository tracks which paid chapters each user has unlocked
// during the session. Once unlocked, a chapter never flips back to locked.
type ChapterAccessRepository interface {
	IsUnlocked(userID, novelID string, number int) bool
	Unlock(userID, novelID string, number int)
	UnlockedChapters(userID, novelID string) []int
}

type accessKey struct {
	userID  string
	novelID string
}

type chapterAccessRepository struct {
	mu       sync.RWMutex
	unlocked map[accessKey]map[int]bool
}

func NewChapterAccessRepository() ChapterAccessRepository {
	return &chapterAccessRepository{
		unlocked: make(map[accessKey]map[int]bool),
	}
}

func (r *chapterAccessRepository) IsUnlocked(userID, novelID string, number int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.unlocked[accessKey{userID, novelID}][number]
}

func (r *chapterAccessRepository) Unlock(userID, novelID string, number int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := accessKey{userID, novelID}
	if r.unlocked[key] == nil {
		r.unlocked[key] = make(map[int]bool)
	}
	r.unlocked[key][number] = true
}

func (r *chapterAccessRepository) UnlockedChapters(userID, novelID string) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chapters := r.unlocked[accessKey{userID, novelID}]
	numbers := make([]int, 0, len(chapters))
	for number := range chapters {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	return numbers
}
