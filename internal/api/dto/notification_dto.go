package dto

import (
	"time"

	"novelhub/internal/api/models"
)

// CreateNotificationDTO is the generic "send notification" contract used by the
// page-level flows. Id, timestamp and read flag are assigned by the directory.
type CreateNotificationDTO struct {
	Kind         models.NotificationKind     `json:"kind" binding:"required"`
	TargetRole   models.TargetRole           `json:"target_role" binding:"required"`
	TargetUserID string                      `json:"target_user_id,omitempty"`
	Title        string                      `json:"title" binding:"required"`
	Message      string                      `json:"message" binding:"required"`
	Payload      *models.NotificationPayload `json:"payload,omitempty"`
}

// NotificationResponse pairs a record with its presentation descriptor so the
// client can render icon, color and allowed actions without a kind switch.
type NotificationResponse struct {
	ID           string                      `json:"id"`
	Kind         models.NotificationKind     `json:"kind"`
	SenderID     string                      `json:"sender_id,omitempty"`
	SenderName   string                      `json:"sender_name"`
	TargetRole   models.TargetRole           `json:"target_role"`
	TargetUserID string                      `json:"target_user_id,omitempty"`
	Title        string                      `json:"title"`
	Message      string                      `json:"message"`
	CreatedAt    time.Time                   `json:"created_at"`
	IsRead       bool                        `json:"is_read"`
	Payload      *models.NotificationPayload `json:"payload,omitempty"`
	Descriptor   models.KindDescriptor       `json:"descriptor"`
}

// FromModelToNotificationResponse converts a Notification model to its response DTO
func FromModelToNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:           n.ID,
		Kind:         n.Kind,
		SenderID:     n.SenderID,
		SenderName:   n.SenderName,
		TargetRole:   n.TargetRole,
		TargetUserID: n.TargetUserID,
		Title:        n.Title,
		Message:      n.Message,
		CreatedAt:    n.CreatedAt,
		IsRead:       n.IsRead,
		Payload:      n.Payload,
		Descriptor:   models.KindDescriptors[n.Kind],
	}
}

// NotificationListResponse is the inbox view for the current user.
type NotificationListResponse struct {
	Data        []NotificationResponse `json:"data"`
	UnreadCount int                    `json:"unread_count"`
}
