// Package mockdata seeds the in-memory stores with the demo catalog, the three
// demo accounts and a handful of starter notifications so the storefront is
// browsable right after boot.
package mockdata

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"novelhub/internal/api/models"
	"novelhub/internal/api/repository"
	"novelhub/internal/api/service"
	"novelhub/internal/middleware/auth"
)

// Demo account ids are stable so the starter notifications can target them.
const (
	AdminUserID  = "user-admin-001"
	WriterUserID = "user-writer-001"
	ReaderUserID = "user-reader-001"
)

const seededNovelCount = 150

var titleLeads = []string{
	"The Regressor", "Solo Cultivator", "Duke's Daughter", "The Villainess",
	"Reborn Sword Saint", "My Landlord", "The Archmage", "Night Market",
	"Second Life", "The Last Healer", "Transmigrated CEO", "Shadow Monarch",
	"The Tyrant's Secretary", "Omniscient Clerk", "Iron-Blooded General",
}

var titleTails = []string{
	"Returns", "of the Northern Keep", "Raises a Dragon", "Wants a Quiet Life",
	"in Another World", "Breaks the Script", "and the Silver Pavilion",
	"After the Ending", "Chronicles", "of Jade Mountain",
}

var authorNames = []string{
	"Seo Yeon-ho", "Baek Ha-ru", "Lin Wanyue", "Gu Chenfeng", "Aoyama Rikka",
	"Fujisawa Ren", "Pimchanok S.", "Warit K.", "Evelyn Marsh", "Theodore Quill",
	"Han Da-eun", "Cha Mu-jin", "Xie Lianhua", "Mo Ziqi", "Kisaragi Yui",
	"Hoshino Kaede", "Natthida P.", "Chaiwat R.", "Margaret Holloway", "Julian Ashford",
}

var languageCycle = []models.NovelLanguage{
	models.LanguageKR, models.LanguageCN, models.LanguageJP,
	models.LanguageEN, models.LanguageTH,
}

var statusCycle = []models.NovelStatus{
	models.StatusOngoing, models.StatusOngoing, models.StatusComplete,
	models.StatusOngoing, models.StatusComingSoon, models.StatusHiatus,
}

// Seed populates every store. It is meant to run once at startup, before the
// HTTP listener accepts traffic.
func Seed(
	userRepo repository.UserRepository,
	novelRepo repository.NovelRepository,
	directory *repository.NotificationDirectory,
	freeChapters, chapterPrice, totalChapters int,
	log *logrus.Logger,
) error {
	if err := seedUsers(userRepo); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedNovels(novelRepo, freeChapters, chapterPrice, totalChapters); err != nil {
		return fmt.Errorf("seed novels: %w", err)
	}
	seedNotifications(directory)

	log.WithFields(logrus.Fields{
		"users":  3,
		"novels": seededNovelCount,
	}).Info("mock data seeded")
	return nil
}

func seedUsers(userRepo repository.UserRepository) error {
	accounts := []struct {
		id       string
		username string
		email    string
		password string
		role     models.Role
		points   int
	}{
		{AdminUserID, "admin", "admin@novelhub.local", "admin1234", models.RoleAdmin, 0},
		{WriterUserID, "WriterPro", "writer@novelhub.local", "writer1234", models.RoleWriter, 0},
		{ReaderUserID, "ReaderOne", "reader@novelhub.local", "reader1234", models.RoleReader, 170},
	}

	for _, account := range accounts {
		hash, err := auth.HashPassword(account.password)
		if err != nil {
			return err
		}
		if err := userRepo.Create(&models.User{
			ID:        account.id,
			Username:  account.username,
			Email:     account.email,
			Password:  hash,
			Role:      account.role,
			Points:    account.points,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedNovels(novelRepo repository.NovelRepository, freeChapters, chapterPrice, totalChapters int) error {
	for i := 0; i < seededNovelCount; i++ {
		lead := titleLeads[i%len(titleLeads)]
		tail := titleTails[(i/len(titleLeads))%len(titleTails)]
		genres := []string{
			models.NovelGenres[i%len(models.NovelGenres)],
			models.NovelGenres[(i+5)%len(models.NovelGenres)],
		}

		novel := &models.Novel{
			ID:            fmt.Sprintf("novel-%03d", i+1),
			TitleEn:       fmt.Sprintf("%s %s", lead, tail),
			CoverURL:      fmt.Sprintf("https://picsum.photos/seed/novel%d/300/420", i+1),
			Status:        statusCycle[i%len(statusCycle)],
			Rating:        3.5 + float64(i%15)*0.1,
			Language:      languageCycle[i%len(languageCycle)],
			Genres:        genres,
			Author:        authorNames[i%len(authorNames)],
			IsNew:         i%7 == 0,
			IsUp:          i%3 == 0,
			IsCopyrighted: i%4 != 0,
			Description:   fmt.Sprintf("%s %s is a %s serial updated regularly.", lead, tail, genres[0]),
			CreatedAt:     time.Now().Add(-time.Duration(i) * 24 * time.Hour),
		}
		// the first few titles belong to the demo writer account
		if i < 5 {
			novel.WriterID = WriterUserID
		}

		chapters := service.GenerateChapters(totalChapters, freeChapters, chapterPrice)
		if err := novelRepo.Create(novel, chapters); err != nil {
			return err
		}
	}
	return nil
}

// seedNotifications plants one record per main flow so every demo role has
// something in its inbox on first login.
func seedNotifications(directory *repository.NotificationDirectory) {
	directory.Add(models.Notification{
		Kind:       models.KindTopUpRequest,
		SenderID:   ReaderUserID,
		SenderName: "ReaderOne",
		TargetRole: models.TargetAdmin,
		Title:      "Top Up Request",
		Message:    "Transferred 100 THB (820 pts) via Kasikorn Bank",
		Payload: &models.NotificationPayload{
			Amount: 820,
			Status: models.TopUpPending,
		},
	})
	directory.Add(models.Notification{
		Kind:         models.KindComment,
		SenderID:     ReaderUserID,
		SenderName:   "ReaderOne",
		TargetRole:   models.TargetWriter,
		TargetUserID: WriterUserID,
		Title:        "New Comment",
		Message:      "The pacing in this chapter was fantastic, can't wait for the next one!",
		Payload: &models.NotificationPayload{
			NovelTitle:    "The Regressor Returns",
			ChapterNumber: 12,
		},
	})
	directory.Add(models.Notification{
		Kind:       models.KindContactMessage,
		SenderID:   ReaderUserID,
		SenderName: "ReaderOne",
		TargetRole: models.TargetAdmin,
		Title:      "Contact: Missing chapters",
		Message:    "Chapters 45-47 of Night Market Chronicles show as locked even after unlocking them yesterday.",
	})
}
