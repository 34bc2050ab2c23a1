package models

import (
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 int64      `json:"id"`
	Date               string     `json:"date"` // "2026-10-19"
	Time               string     `json:"time"` // "10:00"
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	CustomerName       string     `json:"customerName"`
	CustomerEmail      *string    `json:"customerEmail,omitempty"`
	CustomerPhone      *string    `json:"customerPhone,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	ServiceIDs         []int64    `json:"serviceIds"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ReservationListResponse бронирования одного дня
type ReservationListResponse struct {
	Date         string                 `json:"date"`
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservations собирает расписание дня
func FromDomainReservations(day domain.CalendarDay, reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Date:         day.String(),
		Reservations: items,
		Total:        len(items),
	}
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse.
// DurationMinutes - время, которое бронирование занимает в календаре, с буфером подготовки
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	serviceIDs := make([]int64, 0, len(r.Services))
	for _, s := range r.Services {
		serviceIDs = append(serviceIDs, s.ServiceID)
	}

	return &ReservationResponse{
		ID:                 r.ID,
		Date:               r.Date.String(),
		Time:               r.Time.String(),
		DurationMinutes:    r.EffectiveDurationMinutes(),
		Status:             string(r.Status),
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		Notes:              r.Notes,
		ServiceIDs:         serviceIDs,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
