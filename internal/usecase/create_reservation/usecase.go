package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/availability"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	deps         DependencyFactory
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	deps DependencyFactory,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		deps:         deps,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота и вставка идут в одной сериализуемой транзакции:
// движок читает бронирования дня с FOR UPDATE, поэтому два клиента не займут одно время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: tenant=%s, date=%s, time=%s, services=%v",
		req.TenantID, req.Date, req.Time, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Визит не может быть в прошлом
	if err := validateNotInPast(req.Date, req.Time, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	deps := uc.deps(req.TenantID)

	// 3. Получаем услуги из каталога организации
	catalog, err := deps.Catalog.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	services, err := toReservedServices(req.ServiceIDs, catalog)
	if err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	// 4. Новое бронирование займёт столько же, сколько движок насчитает ему потом
	duration := domain.EffectiveDurationMinutes(services)

	var result *domain.Reservation

	// 5. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		available, err := deps.Availability.IsSlotAvailable(txCtx, req.Date, req.Time, &duration)
		if err != nil {
			if errors.Is(err, availability.ErrInvalidInput) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %w", ErrInternal, err)
		}

		if !available {
			uc.logger.Warn("CreateReservation: slot %s %s (%d min) is not available", req.Date, req.Time, duration)
			return ErrSlotNotAvailable
		}

		reservation := &domain.Reservation{
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusConfirmed,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
			Services:      services,
		}

		created, err := deps.Reservations.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельная транзакция заняла слот первой
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateReservation: concurrent booking for %s %s: %v", req.Date, req.Time, err)
			return nil, ErrSlotNotAvailable
		}
		if !errors.Is(err, ErrSlotNotAvailable) && !errors.Is(err, ErrInvalidInput) {
			uc.logger.Error("CreateReservation: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		Reservation:     result,
		DurationMinutes: duration,
	}, nil
}
