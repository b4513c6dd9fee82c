package models

import "time"

type NovelStatus string

const (
	StatusComingSoon NovelStatus = "Coming Soon"
	StatusOngoing    NovelStatus = "Ongoing"
	StatusComplete   NovelStatus = "Complete"
	StatusHiatus     NovelStatus = "Hiatus"
)

type NovelLanguage string

const (
	LanguageKR NovelLanguage = "KR"
	LanguageCN NovelLanguage = "CN"
	LanguageJP NovelLanguage = "JP"
	LanguageEN NovelLanguage = "EN"
	LanguageTH NovelLanguage = "TH"
)

// NovelGenres is the fixed genre vocabulary offered by the storefront filters.
var NovelGenres = []string{
	"Action", "Adult", "Adventure", "Comedy", "Drama", "Fantasy",
	"Josei", "Mature", "Psychological", "Romance", "Slice of Life",
	"Smut", "Supernatural", "Tragedy", "Yaoi", "Yuri",
}

type Novel struct {
	ID            string        `json:"id"`
	TitleEn       string        `json:"title_en"`
	TitleOriginal string        `json:"title_original,omitempty"`
	TitleTh       string        `json:"title_th,omitempty"`
	CoverURL      string        `json:"cover_url"`
	Status        NovelStatus   `json:"status"`
	Rating        float64       `json:"rating"`
	Language      NovelLanguage `json:"language"`
	Genres        []string      `json:"genres"`
	Author        string        `json:"author"`
	WriterID      string        `json:"writer_id,omitempty"` // platform account of the author, if any
	IsNew         bool          `json:"is_new"`
	IsUp          bool          `json:"is_up"`
	IsCopyrighted bool          `json:"is_copyrighted"`
	Description   string        `json:"description,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Chapter is one entry of a novel's ordered chapter list. Price zero means the
// chapter belongs to the free tier.
type Chapter struct {
	Number     int       `json:"number"`
	Title      string    `json:"title"`
	Price      int       `json:"price"`
	ReleasedAt time.Time `json:"released_at"`
}

// Free reports whether the chapter can be read without spending points.
func (c Chapter) Free() bool {
	return c.Price == 0
}
