package service

import (
	"errors"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/models"
	"novelhub/internal/api/repository"
)

var ErrUnknownKind = errors.New("unknown notification kind")

type NotificationService interface {
	// Send delegates to the directory; it is the generic "send notification"
	// contract every page-level flow funnels through.
	Send(senderID string, req dto.CreateNotificationDTO) (*models.Notification, error)
	ListForUser(userID string) (*dto.NotificationListResponse, error)
	MarkRead(id string)
	Delete(id string)
}

type notificationService struct {
	directory *repository.NotificationDirectory
	userRepo  repository.UserRepository
}

func NewNotificationService(directory *repository.NotificationDirectory, userRepo repository.UserRepository) NotificationService {
	return &notificationService{
		directory: directory,
		userRepo:  userRepo,
	}
}

func (s *notificationService) Send(senderID string, req dto.CreateNotificationDTO) (*models.Notification, error) {
	if _, known := models.KindDescriptors[req.Kind]; !known {
		return nil, ErrUnknownKind
	}

	record := models.Notification{
		Kind:         req.Kind,
		TargetRole:   req.TargetRole,
		TargetUserID: req.TargetUserID,
		Title:        req.Title,
		Message:      req.Message,
		Payload:      req.Payload,
	}
	if sender, err := s.userRepo.FindByID(senderID); err == nil {
		record.SenderID = sender.ID
		record.SenderName = sender.Username
	}

	return s.directory.Add(record), nil
}

func (s *notificationService) ListForUser(userID string) (*dto.NotificationListResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	records := s.directory.VisibleTo(user)

	responses := make([]dto.NotificationResponse, 0, len(records))
	unread := 0
	for i := range records {
		if !records[i].IsRead {
			unread++
		}
		responses = append(responses, *dto.FromModelToNotificationResponse(&records[i]))
	}

	return &dto.NotificationListResponse{
		Data:        responses,
		UnreadCount: unread,
	}, nil
}

func (s *notificationService) MarkRead(id string) {
	s.directory.MarkRead(id)
}

func (s *notificationService) Delete(id string) {
	s.directory.Remove(id)
}
