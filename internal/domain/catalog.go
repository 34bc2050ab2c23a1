package domain

import "time"

// CatalogService услуга из каталога института (маникюр, массаж, чистка лица ...)
type CatalogService struct {
	ID              int64
	TenantID        TenantID
	Name            string
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ToReservedService конвертирует услугу каталога в услугу бронирования
func (s *CatalogService) ToReservedService() ReservedService {
	return ReservedService{
		ServiceID:       s.ID,
		DurationMinutes: s.DurationMinutes,
	}
}

// ReminderKind тип напоминания, отправляемого по бронированию
type ReminderKind string

const (
	ReminderDayBefore     ReminderKind = "reminder_24h"
	ReminderTwoHours      ReminderKind = "reminder_2h"
	ReminderReviewRequest ReminderKind = "review_request"
)

// IsValidReminderKind проверяет, что тип напоминания известен
func IsValidReminderKind(k ReminderKind) bool {
	switch k {
	case ReminderDayBefore, ReminderTwoHours, ReminderReviewRequest:
		return true
	default:
		return false
	}
}
