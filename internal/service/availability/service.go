package availability

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	workingHoursRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/workinghours"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// Названия операций для метрик
const (
	opGetAvailableSlots = "get_available_slots"
	opIsSlotAvailable   = "is_slot_available"
	opGetBlockedDates   = "get_blocked_dates"
)

// Options параметры движка
type Options struct {
	GranularityMinutes     int // шаг сетки слотов
	DefaultDurationMinutes int // длительность, если вызывающая сторона её не передала
}

// DefaultOptions значения по умолчанию: сетка 30 минут, услуга 60 минут
func DefaultOptions() Options {
	return Options{
		GranularityMinutes:     domain.DefaultSlotGranularityMinutes,
		DefaultDurationMinutes: domain.DefaultServiceDurationMinutes,
	}
}

// Service точка входа движка доступности. Сам по себе данных не читает,
// работа идёт через Engine, привязанный к организации
type Service struct {
	stores  StoreFactory
	opts    Options
	metrics MetricsRecorder
	logger  Logger
}

// NewService создает сервис доступности. metrics может быть nil
func NewService(stores StoreFactory, opts Options, metrics MetricsRecorder, logger Logger) *Service {
	if opts.GranularityMinutes <= 0 {
		opts.GranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	if opts.DefaultDurationMinutes <= 0 {
		opts.DefaultDurationMinutes = domain.DefaultServiceDurationMinutes
	}

	return &Service{
		stores:  stores,
		opts:    opts,
		metrics: metrics,
		logger:  logger,
	}
}

// ForTenant возвращает движок, который видит только данные организации tenantID
func (s *Service) ForTenant(tenantID domain.TenantID) *Engine {
	return &Engine{
		tenantID: tenantID,
		store:    s.stores(tenantID),
		opts:     s.opts,
		metrics:  s.metrics,
		logger:   s.logger,
	}
}

// Engine движок доступности одной организации. Не хранит состояния между вызовами:
// каждый вызов читает свежий снимок часов работы, блокировок и бронирований
type Engine struct {
	tenantID domain.TenantID
	store    Store
	opts     Options
	metrics  MetricsRecorder
	logger   Logger
}

// dayPlan рабочее окно и занятые интервалы одного дня
type dayPlan struct {
	open         bool
	window       window
	obstructions []obstruction
}

// GetAvailableSlots возвращает все стартовые слоты дня по возрастанию времени.
// durationMinutes - длительность новой услуги; nil - стандартная длительность
func (e *Engine) GetAvailableSlots(ctx context.Context, day domain.CalendarDay, durationMinutes *int) ([]domain.TimeSlot, error) {
	slots, err := e.getAvailableSlots(ctx, day, durationMinutes)

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	e.observe(opGetAvailableSlots, err, available)

	return slots, err
}

func (e *Engine) getAvailableSlots(ctx context.Context, day domain.CalendarDay, durationMinutes *int) ([]domain.TimeSlot, error) {
	duration, err := e.validate(day, durationMinutes)
	if err != nil {
		e.logger.Warn("GetAvailableSlots: tenant=%s, date=%s: validation failed: %v", e.tenantID, day, err)
		return nil, err
	}

	plan, err := e.loadDay(ctx, day)
	if err != nil {
		e.logger.Error("GetAvailableSlots: tenant=%s, date=%s: %v", e.tenantID, day, err)
		return nil, err
	}

	if !plan.open {
		e.logger.Info("GetAvailableSlots: tenant=%s, date=%s: closed", e.tenantID, day)
		return []domain.TimeSlot{}, nil
	}

	slots, err := generateSlots(plan.window, plan.obstructions, e.opts.GranularityMinutes, duration)
	if err != nil {
		e.logger.Error("GetAvailableSlots: tenant=%s, date=%s: failed to generate slots: %v", e.tenantID, day, err)
		return nil, fmt.Errorf("%w: generate slots: %v", ErrConfiguration, err)
	}

	e.logger.Info("GetAvailableSlots: tenant=%s, date=%s, duration=%d: %d slots, %d obstructions",
		e.tenantID, day, duration, len(slots), len(plan.obstructions))

	return slots, nil
}

// IsSlotAvailable проверяет один старт. Использует ту же проверку с учетом длительности,
// что и GetAvailableSlots: закрытый день, выход за рабочее окно или пересечение - недоступно
func (e *Engine) IsSlotAvailable(ctx context.Context, day domain.CalendarDay, at types.TimeString, durationMinutes *int) (bool, error) {
	ok, err := e.isSlotAvailable(ctx, day, at, durationMinutes)
	e.observe(opIsSlotAvailable, err, -1)
	return ok, err
}

func (e *Engine) isSlotAvailable(ctx context.Context, day domain.CalendarDay, at types.TimeString, durationMinutes *int) (bool, error) {
	duration, err := e.validate(day, durationMinutes)
	if err != nil {
		e.logger.Warn("IsSlotAvailable: tenant=%s, date=%s: validation failed: %v", e.tenantID, day, err)
		return false, err
	}

	// Начало визита в пределах суток, "24:00" допустимо только как закрытие
	if err := at.Validate(); err != nil {
		e.logger.Warn("IsSlotAvailable: tenant=%s, date=%s: invalid time %q", e.tenantID, day, at)
		return false, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	start, _ := at.Minutes()

	plan, err := e.loadDay(ctx, day)
	if err != nil {
		e.logger.Error("IsSlotAvailable: tenant=%s, date=%s: %v", e.tenantID, day, err)
		return false, err
	}

	if !plan.open || !fitsWindow(plan.window, start, duration) {
		return false, nil
	}

	return isFree(start, duration, plan.obstructions), nil
}

// GetBlockedDatesForMonth возвращает дни месяца, заблокированные целиком, по возрастанию.
// Точечные блокировки не учитываются
func (e *Engine) GetBlockedDatesForMonth(ctx context.Context, year int, month time.Month) ([]domain.CalendarDay, error) {
	dates, err := e.getBlockedDatesForMonth(ctx, year, month)
	e.observe(opGetBlockedDates, err, -1)
	return dates, err
}

func (e *Engine) getBlockedDatesForMonth(ctx context.Context, year int, month time.Month) ([]domain.CalendarDay, error) {
	if e.tenantID.IsZero() {
		return nil, fmt.Errorf("%w: tenant is required", ErrInvalidInput)
	}
	if year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, year)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d out of range", ErrInvalidInput, month)
	}

	from, to := domain.MonthRange(year, month)

	dates, err := e.store.BlockedSlots.GetAllDayDates(ctx, from, to)
	if err != nil {
		e.logger.Error("GetBlockedDatesForMonth: tenant=%s, month=%d-%02d: %v", e.tenantID, year, month, err)
		return nil, fmt.Errorf("%w: get all-day blocks: %w", ErrDependency, err)
	}

	// Несколько блокировок на один день возвращаем одной датой
	slices.SortFunc(dates, func(a, b domain.CalendarDay) int {
		return a.Time().Compare(b.Time())
	})
	dates = slices.CompactFunc(dates, func(a, b domain.CalendarDay) bool {
		return a.Equal(b)
	})

	e.logger.Info("GetBlockedDatesForMonth: tenant=%s, month=%d-%02d: %d blocked days", e.tenantID, year, month, len(dates))
	return dates, nil
}

// validate проверяет входные данные и возвращает длительность для проверки
func (e *Engine) validate(day domain.CalendarDay, durationMinutes *int) (int, error) {
	if e.tenantID.IsZero() {
		return 0, fmt.Errorf("%w: tenant is required", ErrInvalidInput)
	}
	if day.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if durationMinutes == nil {
		return e.opts.DefaultDurationMinutes, nil
	}

	d := *durationMinutes
	if d < domain.MinRequestedDurationMinutes || d > domain.MaxRequestedDurationMinutes {
		return 0, fmt.Errorf("%w: duration must be between %d and %d minutes, got %d",
			ErrInvalidInput, domain.MinRequestedDurationMinutes, domain.MaxRequestedDurationMinutes, d)
	}
	return d, nil
}

// loadDay читает всё, что нужно для расчета дня: блокировки, часы работы, бронирования
func (e *Engine) loadDay(ctx context.Context, day domain.CalendarDay) (dayPlan, error) {
	blocks, err := e.store.BlockedSlots.GetByDate(ctx, day)
	if err != nil {
		return dayPlan{}, fmt.Errorf("%w: get blocked slots: %w", ErrDependency, err)
	}

	hours, err := e.store.WorkingHours.GetByWeekday(ctx, day.Weekday())
	if err != nil {
		if !errors.Is(err, workingHoursRepo.ErrWorkingHoursNotFound) {
			return dayPlan{}, fmt.Errorf("%w: get working hours: %w", ErrDependency, err)
		}
		// День недели не настроен - считаем закрытым
		hours = nil
	}

	w, open, err := resolveWindow(hours, blocks)
	if err != nil || !open {
		return dayPlan{open: false}, err
	}

	reservations, err := e.store.Reservations.GetActiveByDate(ctx, day)
	if err != nil {
		return dayPlan{}, fmt.Errorf("%w: get reservations: %w", ErrDependency, err)
	}

	var timed []*domain.BlockedSlot
	if blocks != nil {
		timed = blocks.Timed
	}

	obstructions, err := collectObstructions(timed, reservations, e.opts.GranularityMinutes)
	if err != nil {
		return dayPlan{}, err
	}

	return dayPlan{open: true, window: w, obstructions: obstructions}, nil
}

func (e *Engine) observe(operation string, err error, availableSlots int) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveComputation(operation, err, availableSlots)
}

// ParseDate парсит дату YYYY-MM-DD от клиента
func ParseDate(s string) (domain.CalendarDay, error) {
	day, err := domain.ParseCalendarDay(s)
	if err != nil {
		return domain.CalendarDay{}, fmt.Errorf("%w: date %q: expected YYYY-MM-DD", ErrInvalidInput, s)
	}
	return day, nil
}

// ParseTime парсит время HH:MM от клиента
func ParseTime(s string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: time %q: expected HH:MM", ErrInvalidInput, s)
	}
	return ts, nil
}

// GetAvailableSlots то же, что ForTenant(tenantID).GetAvailableSlots
func (s *Service) GetAvailableSlots(ctx context.Context, tenantID domain.TenantID, day domain.CalendarDay, durationMinutes *int) ([]domain.TimeSlot, error) {
	return s.ForTenant(tenantID).GetAvailableSlots(ctx, day, durationMinutes)
}

// IsSlotAvailable то же, что ForTenant(tenantID).IsSlotAvailable
func (s *Service) IsSlotAvailable(ctx context.Context, tenantID domain.TenantID, day domain.CalendarDay, at types.TimeString, durationMinutes *int) (bool, error) {
	return s.ForTenant(tenantID).IsSlotAvailable(ctx, day, at, durationMinutes)
}

// GetBlockedDatesForMonth то же, что ForTenant(tenantID).GetBlockedDatesForMonth
func (s *Service) GetBlockedDatesForMonth(ctx context.Context, tenantID domain.TenantID, year int, month time.Month) ([]domain.CalendarDay, error) {
	return s.ForTenant(tenantID).GetBlockedDatesForMonth(ctx, year, month)
}
