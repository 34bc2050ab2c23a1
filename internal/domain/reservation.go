package domain

import (
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation бронирование клиента
type Reservation struct {
	ID            int64
	TenantID      TenantID
	Date          CalendarDay
	Time          types.TimeString
	Status        ReservationStatus
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string

	// Услуги бронирования. Пустой список - метаданные услуг недоступны
	Services []ReservedService

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservedService услуга внутри бронирования
type ReservedService struct {
	ServiceID int64
	// 0, если услуга удалена из каталога
	DurationMinutes int
}

// IsActive возвращает true, если бронирование занимает время в календаре
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.IsActive()
}

// EffectiveDurationMinutes реальное время, которое бронирование занимает в календаре
func (r *Reservation) EffectiveDurationMinutes() int {
	return EffectiveDurationMinutes(r.Services)
}

// EffectiveDurationMinutes сумма длительностей услуг плюс буфер подготовки.
// Без услуг - стандартные 60 + 15 минут
func EffectiveDurationMinutes(services []ReservedService) int {
	if len(services) == 0 {
		return DefaultReservationDurationMins
	}

	total := 0
	for _, s := range services {
		if s.DurationMinutes > 0 {
			total += s.DurationMinutes
		} else {
			total += DefaultServiceDurationMinutes
		}
	}
	return total + PreparationBufferMinutes
}

// IsValidReservationStatus проверяет, что статус известен
func IsValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}
