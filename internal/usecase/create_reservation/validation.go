package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID.IsZero() {
		return fmt.Errorf("%w: tenant is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerReservation {
		return fmt.Errorf("%w: at most %d services per reservation", ErrInvalidInput, domain.MaxServicesPerReservation)
	}

	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: service %d is listed twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет, что визит ещё не начался.
// Сравнение по настенному времени now: даты бронирований хранятся без таймзоны
func validateNotInPast(day domain.CalendarDay, at types.TimeString, now time.Time) error {
	today := domain.DayOf(now)

	if day.Before(today) {
		return ErrInvalidDate
	}

	if !day.Equal(today) {
		return nil
	}

	after, err := at.IsAfter(types.NewTimeString(now))
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if !after {
		return fmt.Errorf("%w: %s has already passed", ErrInvalidDate, at)
	}

	return nil
}

// toReservedServices проверяет, что все услуги найдены и активны, и сохраняет порядок запроса
func toReservedServices(ids []int64, catalog []*domain.CatalogService) ([]domain.ReservedService, error) {
	byID := make(map[int64]*domain.CatalogService, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	result := make([]domain.ReservedService, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok || !s.Active {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		result = append(result, s.ToReservedService())
	}

	return result, nil
}
