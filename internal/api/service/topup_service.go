package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"novelhub/internal/api/dto"
	"novelhub/internal/api/models"
	"novelhub/internal/api/repository"
)

var ErrUnknownPackage = errors.New("unknown top-up package")

// TopUpService implements the Requested -> {Approved, Rejected} workflow. A
// request lives only as a TopUpRequest notification targeted at admins; the
// decision replaces it with a TopUpResult targeted at the requesting user.
type TopUpService interface {
	Packages() []models.TopUpPackage
	Request(userID string, req dto.TopUpRequestDTO) (*dto.TopUpRequestResponse, error)
	Approve(notificationID string) (*dto.TopUpDecisionResponse, error)
	Reject(notificationID string) (*dto.TopUpDecisionResponse, error)
}

type topUpService struct {
	directory        *repository.NotificationDirectory
	userRepo         repository.UserRepository
	points           PointsService
	log              *logrus.Logger
	simulatedLatency time.Duration
}

func NewTopUpService(
	directory *repository.NotificationDirectory,
	userRepo repository.UserRepository,
	points PointsService,
	log *logrus.Logger,
	simulatedLatency time.Duration,
) TopUpService {
	return &topUpService{
		directory:        directory,
		userRepo:         userRepo,
		points:           points,
		log:              log,
		simulatedLatency: simulatedLatency,
	}
}

func (s *topUpService) Packages() []models.TopUpPackage {
	packages := make([]models.TopUpPackage, len(models.TopUpPackages))
	copy(packages, models.TopUpPackages)
	return packages
}

// Request records a reader's transfer notice as a pending TopUpRequest
// notification for admins. No payment is verified; the latency stands in for
// the gateway round trip.
func (s *topUpService) Request(userID string, req dto.TopUpRequestDTO) (*dto.TopUpRequestResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	pkg, found := models.FindPackage(req.PackageID)
	if !found {
		return nil, ErrUnknownPackage
	}

	time.Sleep(s.simulatedLatency)

	record := s.directory.Add(models.Notification{
		Kind:       models.KindTopUpRequest,
		SenderID:   user.ID,
		SenderName: user.Username,
		TargetRole: models.TargetAdmin,
		Title:      "Top Up Request",
		Message:    fmt.Sprintf("Transferred %d THB (%d pts) via %s", pkg.Price, pkg.Points, req.BankName),
		Payload: &models.NotificationPayload{
			Amount: pkg.Points,
			Status: models.TopUpPending,
		},
	})

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"package": pkg.ID,
		"points":  pkg.Points,
	}).Info("top-up request submitted")

	return &dto.TopUpRequestResponse{
		NotificationID: record.ID,
		PackageID:      pkg.ID,
		Points:         pkg.Points,
		Message:        "Transfer notice received; an admin will review it during service hours",
	}, nil
}

// Approve credits the requesting user's balance, notifies them and deletes the
// originating request. The request is consumed atomically, so when two admins
// decide it at once only one decision takes effect; the loser (and any later
// retry) is a benign no-op.
func (s *topUpService) Approve(notificationID string) (*dto.TopUpDecisionResponse, error) {
	request, found := s.directory.TakeByID(notificationID, models.KindTopUpRequest)
	if !found {
		return &dto.TopUpDecisionResponse{Status: "noop", Message: "Request no longer exists"}, nil
	}

	amount := 0
	if request.Payload != nil {
		amount = request.Payload.Amount
	}

	// The credit goes through the shared user store, so the requester's
	// balance is authoritative no matter whose session approved it.
	if _, err := s.points.CreditFromApproval(request.SenderID, amount); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.log.WithField("user_id", request.SenderID).Warn("approved top-up for unknown user; crediting skipped")
	}

	s.directory.Add(models.Notification{
		Kind:         models.KindTopUpResult,
		SenderName:   "System (Admin)",
		TargetRole:   models.TargetReader,
		TargetUserID: request.SenderID,
		Title:        "Top Up Approved",
		Message:      fmt.Sprintf("%d points have been added to your balance. Thank you!", amount),
		Payload:      &models.NotificationPayload{Amount: amount, Status: models.TopUpApproved},
	})

	s.log.WithFields(logrus.Fields{
		"request_id": request.ID,
		"user_id":    request.SenderID,
		"points":     amount,
	}).Info("top-up approved")

	return &dto.TopUpDecisionResponse{Status: "approved", Message: "Points added to user and notification sent"}, nil
}

// Reject notifies the requester and deletes the request without any balance
// change. Consumes the request the same way Approve does.
func (s *topUpService) Reject(notificationID string) (*dto.TopUpDecisionResponse, error) {
	request, found := s.directory.TakeByID(notificationID, models.KindTopUpRequest)
	if !found {
		return &dto.TopUpDecisionResponse{Status: "noop", Message: "Request no longer exists"}, nil
	}

	s.directory.Add(models.Notification{
		Kind:         models.KindTopUpResult,
		SenderName:   "System (Admin)",
		TargetRole:   models.TargetReader,
		TargetUserID: request.SenderID,
		Title:        "Top Up Rejected",
		Message:      "Your transfer evidence could not be verified. Please contact an admin.",
		Payload:      &models.NotificationPayload{Status: models.TopUpRejected},
	})

	s.log.WithFields(logrus.Fields{
		"request_id": request.ID,
		"user_id":    request.SenderID,
	}).Info("top-up rejected")

	return &dto.TopUpDecisionResponse{Status: "rejected", Message: "Rejection notice sent to user"}, nil
}
