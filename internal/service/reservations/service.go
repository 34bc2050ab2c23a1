package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	reservationRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/reservation"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	repos  RepositoryFactory
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repos RepositoryFactory, logger Logger) *Service {
	return &Service{
		repos:  repos,
		logger: logger,
	}
}

// GetByID получает бронирование организации по ID
func (s *Service) GetByID(ctx context.Context, tenantID domain.TenantID, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for tenant=%s", id, tenantID)

	reservation, err := s.repos(tenantID).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found for tenant=%s", id, tenantID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// ListActiveByDate возвращает расписание дня: pending и confirmed бронирования по времени начала
func (s *Service) ListActiveByDate(ctx context.Context, tenantID domain.TenantID, day domain.CalendarDay) (*models.ReservationListResponse, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	reservations, err := s.repos(tenantID).GetActiveByDate(ctx, day)
	if err != nil {
		s.logger.Error("ListActiveByDate: repository error for tenant=%s, date=%s: %v", tenantID, day, err)
		return nil, fmt.Errorf("%w: ListActiveByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActiveByDate: tenant=%s, date=%s: %d reservations", tenantID, day, len(reservations))
	return models.FromDomainReservations(day, reservations), nil
}

// Cancel отменяет бронирование. Отменить можно только pending/confirmed.
// После отмены слот снова доступен: движок не учитывает отменённые бронирования
func (s *Service) Cancel(ctx context.Context, tenantID domain.TenantID, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d for tenant=%s", id, tenantID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	repo := s.repos(tenantID)

	reservation, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	// Между чтением и обновлением статус мог измениться - репозиторий проверит ещё раз
	if err := repo.Cancel(ctx, id, req.CancellationReason); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", id)
			return ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: reservation id=%d was changed concurrently", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}
