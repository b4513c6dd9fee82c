package service

import (
	"fmt"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/models"
	"novelhub/internal/api/repository"
)

// ContactService implements the two-step contact exchange: reader message to
// admins, one admin reply back to the sender.
type ContactService interface {
	Submit(userID string, req dto.ContactMessageDTO) (*models.Notification, error)
	Reply(notificationID string, req dto.ContactReplyDTO) (*models.Notification, error)
}

type contactService struct {
	directory *repository.NotificationDirectory
	userRepo  repository.UserRepository
}

func NewContactService(directory *repository.NotificationDirectory, userRepo repository.UserRepository) ContactService {
	return &contactService{directory: directory, userRepo: userRepo}
}

func (s *contactService) Submit(userID string, req dto.ContactMessageDTO) (*models.Notification, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	record := s.directory.Add(models.Notification{
		Kind:       models.KindContactMessage,
		SenderID:   user.ID,
		SenderName: user.Username,
		TargetRole: models.TargetAdmin,
		Title:      fmt.Sprintf("Contact: %s", req.Subject),
		Message:    req.Body,
	})
	return record, nil
}

// Reply sends one ContactReply to the original sender and deletes the source
// message; there is no threading beyond that. The source is consumed
// atomically, so concurrent replies to the same message produce exactly one
// ContactReply; a missing message id is a benign no-op.
func (s *contactService) Reply(notificationID string, req dto.ContactReplyDTO) (*models.Notification, error) {
	source, found := s.directory.TakeByID(notificationID, models.KindContactMessage)
	if !found {
		return nil, nil
	}

	reply := s.directory.Add(models.Notification{
		Kind:         models.KindContactReply,
		SenderName:   "Admin Support",
		TargetRole:   models.TargetReader,
		TargetUserID: source.SenderID,
		Title:        fmt.Sprintf("Re: %s", source.Title),
		Message:      req.Message,
	})
	return reply, nil
}
