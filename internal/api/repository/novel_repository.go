package repository

import (
	"sort"
	"strings"
	"sync"

	"novelhub/internal/api/models"
)

// NovelFilter narrows a catalog listing. Zero values mean "no restriction".
type NovelFilter struct {
	Search   string
	Language models.NovelLanguage
	Status   models.NovelStatus
	Genre    string
}

type NovelRepository interface {
	Create(novel *models.Novel, chapters []models.Chapter) error
	GetByID(id string) (*models.Novel, error)
	Update(novel *models.Novel) error
	Delete(id string) error
	List(filter NovelFilter, page, pageSize int) ([]models.Novel, int, error)

	GetChapters(novelID string) ([]models.Chapter, error)
	GetChapter(novelID string, number int) (*models.Chapter, error)
	UpsertChapter(novelID string, chapter models.Chapter) error
	DeleteChapter(novelID string, number int) error
}

type novelEntry struct {
	novel    models.Novel
	chapters []models.Chapter // ordered by Number ascending
}

type novelRepository struct {
	mu     sync.RWMutex
	novels map[string]*novelEntry
	order  []string // insertion order for stable listings
}

func NewNovelRepository() NovelRepository {
	return &novelRepository{
		novels: make(map[string]*novelEntry),
	}
}

func (r *novelRepository) Create(novel *models.Novel, chapters []models.Chapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &novelEntry{novel: *novel}
	entry.chapters = append(entry.chapters, chapters...)
	sort.Slice(entry.chapters, func(i, j int) bool {
		return entry.chapters[i].Number < entry.chapters[j].Number
	})
	if _, exists := r.novels[novel.ID]; !exists {
		r.order = append(r.order, novel.ID)
	}
	r.novels[novel.ID] = entry
	return nil
}

func (r *novelRepository) GetByID(id string) (*models.Novel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.novels[id]
	if !exists {
		return nil, ErrNotFound
	}
	cp := entry.novel
	return &cp, nil
}

func (r *novelRepository) Update(novel *models.Novel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.novels[novel.ID]
	if !exists {
		return ErrNotFound
	}
	entry.novel = *novel
	return nil
}

func (r *novelRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.novels[id]; !exists {
		return ErrNotFound
	}
	delete(r.novels, id)
	for i, novelID := range r.order {
		if novelID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *novelRepository) List(filter NovelFilter, page, pageSize int) ([]models.Novel, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Novel, 0, len(r.order))
	for _, id := range r.order {
		entry, exists := r.novels[id]
		if !exists {
			continue
		}
		if matchesFilter(&entry.novel, filter) {
			matched = append(matched, entry.novel)
		}
	}

	total := len(matched)
	start := (page - 1) * pageSize
	if start >= total {
		return []models.Novel{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matchesFilter(novel *models.Novel, filter NovelFilter) bool {
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(novel.TitleEn), search) &&
			!strings.Contains(strings.ToLower(novel.TitleTh), search) &&
			!strings.Contains(strings.ToLower(novel.TitleOriginal), search) {
			return false
		}
	}
	if filter.Language != "" && novel.Language != filter.Language {
		return false
	}
	if filter.Status != "" && novel.Status != filter.Status {
		return false
	}
	if filter.Genre != "" {
		found := false
		for _, genre := range novel.Genres {
			if genre == filter.Genre {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *novelRepository) GetChapters(novelID string) ([]models.Chapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.novels[novelID]
	if !exists {
		return nil, ErrNotFound
	}
	chapters := make([]models.Chapter, len(entry.chapters))
	copy(chapters, entry.chapters)
	return chapters, nil
}

func (r *novelRepository) GetChapter(novelID string, number int) (*models.Chapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.novels[novelID]
	if !exists {
		return nil, ErrNotFound
	}
	for _, chapter := range entry.chapters {
		if chapter.Number == number {
			cp := chapter
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *novelRepository) UpsertChapter(novelID string, chapter models.Chapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.novels[novelID]
	if !exists {
		return ErrNotFound
	}
	for i, existing := range entry.chapters {
		if existing.Number == chapter.Number {
			entry.chapters[i] = chapter
			return nil
		}
	}
	entry.chapters = append(entry.chapters, chapter)
	sort.Slice(entry.chapters, func(i, j int) bool {
		return entry.chapters[i].Number < entry.chapters[j].Number
	})
	return nil
}

func (r *novelRepository) DeleteChapter(novelID string, number int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.novels[novelID]
	if !exists {
		return ErrNotFound
	}
	for i, chapter := range entry.chapters {
		if chapter.Number == number {
			entry.chapters = append(entry.chapters[:i], entry.chapters[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
