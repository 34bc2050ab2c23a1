package create_reservation

import (
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TenantID      domain.TenantID    // организация
	Date          domain.CalendarDay // дата визита
	Time          types.TimeString   // время начала, например "10:00"
	ServiceIDs    []int64            // услуги из каталога организации
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string
}

// Response созданное бронирование
type Response struct {
	Reservation *domain.Reservation
	// Время, занятое в календаре: сумма услуг плюс буфер подготовки
	DurationMinutes int
}
