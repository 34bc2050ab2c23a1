package domain

// Значения по умолчанию движка доступности
const (
	DefaultSlotGranularityMinutes  = 30
	DefaultServiceDurationMinutes  = 60 // стандартная длительность одной услуги
	PreparationBufferMinutes       = 15 // подготовка кабинета между клиентами
	DefaultReservationDurationMins = DefaultServiceDurationMinutes + PreparationBufferMinutes
)

// Ограничения на входные данные
const (
	MinRequestedDurationMinutes = 5
	MaxRequestedDurationMinutes = 12 * 60
	MaxServicesPerReservation   = 10
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, которые занимают время в календаре
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
