package models

import "time"

// NotificationKind tags a notification record with the flow that produced it.
type NotificationKind string

const (
	KindTopUpRequest   NotificationKind = "TOPUP_REQUEST"
	KindTopUpResult    NotificationKind = "TOPUP_RESULT"
	KindCoffee         NotificationKind = "COFFEE"
	KindComment        NotificationKind = "COMMENT"
	KindContactMessage NotificationKind = "CONTACT_MSG"
	KindContactReply   NotificationKind = "CONTACT_REPLY"
)

// TargetRole widens Role with the broadcast value "all".
type TargetRole string

const (
	TargetAdmin  TargetRole = "admin"
	TargetWriter TargetRole = "writer"
	TargetReader TargetRole = "reader"
	TargetAll    TargetRole = "all"
)

type TopUpStatus string

const (
	TopUpPending  TopUpStatus = "pending"
	TopUpApproved TopUpStatus = "approved"
	TopUpRejected TopUpStatus = "rejected"
)

// NotificationPayload carries the kind-specific context of a record. Fields are
// optional and only a subset is meaningful for any given kind.
type NotificationPayload struct {
	Amount        int         `json:"amount,omitempty"`         // TopUp / Coffee points
	CupSize       string      `json:"cup_size,omitempty"`       // Coffee
	NovelTitle    string      `json:"novel_title,omitempty"`    // Comment / Coffee
	ChapterNumber int         `json:"chapter_number,omitempty"` // Comment
	Link          string      `json:"link,omitempty"`           // navigation hint
	Status        TopUpStatus `json:"status,omitempty"`         // TopUp workflow
}

type Notification struct {
	ID         string               `json:"id"`
	Kind       NotificationKind     `json:"kind"`
	SenderID   string               `json:"sender_id,omitempty"`
	SenderName string               `json:"sender_name"`
	TargetRole TargetRole           `json:"target_role"`
	// TargetUserID narrows routing to one recipient; when set, TargetRole is ignored.
	TargetUserID string               `json:"target_user_id,omitempty"`
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	CreatedAt    time.Time            `json:"created_at"` // immutable after insertion
	IsRead       bool                 `json:"is_read"`
	Payload      *NotificationPayload `json:"payload,omitempty"`
}

// roleKinds is the per-role allow-list for records that carry no TargetUserID.
var roleKinds = map[Role][]NotificationKind{
	RoleAdmin:  {KindTopUpRequest, KindContactMessage},
	RoleWriter: {KindCoffee, KindComment},
	RoleReader: {KindTopUpResult, KindContactReply},
}

// VisibleToUser decides whether the record should be shown to the given user.
// A TargetUserID match always wins; otherwise broadcast records and records whose
// kind is in the user's role allow-list are visible.
func (n *Notification) VisibleToUser(user *User) bool {
	if n.TargetUserID != "" {
		return n.TargetUserID == user.ID
	}
	if n.TargetRole == TargetAll {
		return true
	}
	for _, kind := range roleKinds[user.Role] {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

// KindDescriptor drives the per-kind presentation and the actions a viewer may
// take on a record. Adding a new kind is a table entry, not a code change.
type KindDescriptor struct {
	Icon    string   `json:"icon"`
	Color   string   `json:"color"`
	Actions []string `json:"actions"`
}

var KindDescriptors = map[NotificationKind]KindDescriptor{
	KindTopUpRequest:   {Icon: "credit-card", Color: "purple", Actions: []string{"approve", "reject", "delete"}},
	KindTopUpResult:    {Icon: "coins", Color: "green", Actions: []string{"mark_read", "delete"}},
	KindCoffee:         {Icon: "coffee", Color: "amber", Actions: []string{"mark_read", "delete"}},
	KindComment:        {Icon: "message-circle", Color: "blue", Actions: []string{"mark_read", "delete"}},
	KindContactMessage: {Icon: "mail", Color: "slate", Actions: []string{"reply", "delete"}},
	KindContactReply:   {Icon: "mail-open", Color: "pink", Actions: []string{"mark_read", "delete"}},
}
