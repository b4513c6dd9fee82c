package dto

// TopUpRequestDTO carries the transfer details a reader submits after paying.
type TopUpRequestDTO struct {
	PackageID     string `json:"package_id" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	TransferredAt string `json:"transferred_at" binding:"required"` // datetime-local string from the form
}

// TopUpRequestResponse acknowledges a submitted request.
type TopUpRequestResponse struct {
	NotificationID string `json:"notification_id"`
	PackageID      string `json:"package_id"`
	Points         int    `json:"points"`
	Message        string `json:"message"`
}

// TopUpDecisionResponse reports an admin approve/reject outcome.
type TopUpDecisionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
