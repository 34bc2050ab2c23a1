package create_reservation

import (
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations/models"
	createReservation "github.com/Celia92000/laia-skin-nextjs-sub023/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date          string  `json:"date"` // "2026-10-19"
	Time          string  `json:"time"` // "10:00"
	ServiceIDs    []int64 `json:"serviceIds"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(tenantID domain.TenantID) (*createReservation.Request, error) {
	day, err := availability.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	at, err := availability.ParseTime(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		TenantID:      tenantID,
		Date:          day,
		Time:          at,
		ServiceIDs:    r.ServiceIDs,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *models.ReservationResponse {
	result := models.FromDomainReservation(resp.Reservation)
	result.DurationMinutes = resp.DurationMinutes
	return result
}
