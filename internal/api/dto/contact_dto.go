package dto

// ContactMessageDTO is a reader-to-admin contact form submission.
type ContactMessageDTO struct {
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Body    string `json:"body" binding:"required,min=1,max=5000"`
}

// ContactReplyDTO is the admin's free-text reply to a contact message.
type ContactReplyDTO struct {
	Message string `json:"message" binding:"required,min=1,max=5000"`
}
