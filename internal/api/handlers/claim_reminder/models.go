package claim_reminder

// ClaimReminderRequest ключ напоминания
type ClaimReminderRequest struct {
	EntityID int64  `json:"entityId"` // ID бронирования
	Kind     string `json:"kind"`     // reminder_24h | reminder_2h | review_request
}

// ClaimReminderResponse claimed=false - напоминание уже отправлено, слать повторно нельзя
type ClaimReminderResponse struct {
	EntityID int64  `json:"entityId"`
	Kind     string `json:"kind"`
	Claimed  bool   `json:"claimed"`
}
