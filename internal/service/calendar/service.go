package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	blockedSlotRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/blockedslot"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/calendar/models"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// Service управление часами работы и блокировками календаря
type Service struct {
	repos       RepositoryFactory
	granularity int
	logger      Logger
}

// NewService создает сервис календаря. granularity - шаг сетки слотов,
// точечные блокировки должны на неё попадать
func NewService(repos RepositoryFactory, granularity int, logger Logger) *Service {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	return &Service{
		repos:       repos,
		granularity: granularity,
		logger:      logger,
	}
}

// GetWeek возвращает расписание организации на неделю
func (s *Service) GetWeek(ctx context.Context, tenantID domain.TenantID) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching working hours for tenant=%s", tenantID)

	hours, err := s.repos(tenantID).WorkingHours.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetWeek: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(hours), nil
}

// SetWorkingHours создает или обновляет часы работы на день недели.
// Для открытого дня время проверяется здесь, чтобы некорректная конфигурация не попала в БД
func (s *Service) SetWorkingHours(ctx context.Context, tenantID domain.TenantID, weekday time.Weekday, req *models.SetWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("SetWorkingHours: tenant=%s, weekday=%s, open=%t, %s-%s",
		tenantID, weekday, req.IsOpen, req.StartTime, req.EndTime)

	if weekday < time.Sunday || weekday > time.Saturday {
		return nil, fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	hours := &domain.WorkingHours{
		DayOfWeek: weekday,
		IsOpen:    req.IsOpen,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if req.IsOpen {
		if err := validateOpeningHours(req.StartTime, req.EndTime); err != nil {
			s.logger.Warn("SetWorkingHours: validation failed: %v", err)
			return nil, err
		}
	} else {
		// Закрытому дню время не нужно, но колонки NOT NULL
		hours.StartTime = "00:00"
		hours.EndTime = "00:00"
	}

	saved, err := s.repos(tenantID).WorkingHours.Upsert(ctx, hours)
	if err != nil {
		s.logger.Error("SetWorkingHours: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: SetWorkingHours - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainWorkingHours(saved)
	return &resp, nil
}

// CreateBlockedSlot блокирует день целиком или одно время на сетке слотов
func (s *Service) CreateBlockedSlot(ctx context.Context, tenantID domain.TenantID, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("CreateBlockedSlot: tenant=%s, date=%s, allDay=%t", tenantID, req.Date, req.AllDay)

	day, err := domain.ParseCalendarDay(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	slot := &domain.BlockedSlot{
		Date:   day,
		AllDay: req.AllDay,
		Reason: req.Reason,
	}

	if !req.AllDay {
		if req.Time == nil {
			return nil, fmt.Errorf("%w: time is required for a timed block", ErrInvalidInput)
		}
		at, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
		}
		m, _ := at.Minutes()
		if m%s.granularity != 0 {
			return nil, fmt.Errorf("%w: time must be a multiple of %d minutes", ErrInvalidInput, s.granularity)
		}
		raw := at.String()
		slot.Time = &raw
	}

	created, err := s.repos(tenantID).BlockedSlots.Create(ctx, slot)
	if err != nil {
		s.logger.Error("CreateBlockedSlot: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: CreateBlockedSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedSlot: created blocked slot id=%d", created.ID)
	return models.FromDomainBlockedSlot(created), nil
}

// DeleteBlockedSlot снимает блокировку организации
func (s *Service) DeleteBlockedSlot(ctx context.Context, tenantID domain.TenantID, id int64) error {
	s.logger.Info("DeleteBlockedSlot: tenant=%s, id=%d", tenantID, id)

	if err := s.repos(tenantID).BlockedSlots.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("DeleteBlockedSlot: blocked slot id=%d not found", id)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("DeleteBlockedSlot: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedSlot - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateOpeningHours(start, end string) error {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}
	endTime, err := types.NewEndTimeStringFromString(end)
	if err != nil {
		return fmt.Errorf("%w: endTime must be in HH:MM format, 24:00 for midnight", ErrInvalidInput)
	}
	after, err := endTime.IsAfter(startTime)
	if err != nil || !after {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	return nil
}
