package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	workingHoursRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/workinghours"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// 2026-10-19 - понедельник
var monday = domain.NewCalendarDay(2026, time.October, 19)

// calendar in-memory данные одной организации
type calendar struct {
	hours        map[time.Weekday]*domain.WorkingHours
	blocks       []*domain.BlockedSlot
	reservations []*domain.Reservation

	hoursErr        error
	blocksErr       error
	reservationsErr error
}

func newCalendar() *calendar {
	return &calendar{hours: make(map[time.Weekday]*domain.WorkingHours)}
}

func (c *calendar) open(weekday time.Weekday, start, end string) *calendar {
	c.hours[weekday] = &domain.WorkingHours{DayOfWeek: weekday, IsOpen: true, StartTime: start, EndTime: end}
	return c
}

func (c *calendar) blockDay(day domain.CalendarDay) *calendar {
	c.blocks = append(c.blocks, &domain.BlockedSlot{Date: day, AllDay: true})
	return c
}

func (c *calendar) blockTime(day domain.CalendarDay, at string) *calendar {
	c.blocks = append(c.blocks, &domain.BlockedSlot{Date: day, Time: &at})
	return c
}

func (c *calendar) reserve(day domain.CalendarDay, at string, status domain.ReservationStatus, durations ...int) *calendar {
	r := &domain.Reservation{
		ID:     int64(len(c.reservations) + 1),
		Date:   day,
		Time:   types.TimeString(at),
		Status: status,
	}
	for i, d := range durations {
		r.Services = append(r.Services, domain.ReservedService{ServiceID: int64(i + 1), DurationMinutes: d})
	}
	c.reservations = append(c.reservations, r)
	return c
}

type fakeHours struct{ c *calendar }

func (f fakeHours) GetByWeekday(_ context.Context, weekday time.Weekday) (*domain.WorkingHours, error) {
	if f.c.hoursErr != nil {
		return nil, f.c.hoursErr
	}
	h, ok := f.c.hours[weekday]
	if !ok {
		return nil, workingHoursRepo.ErrWorkingHoursNotFound
	}
	return h, nil
}

type fakeBlocks struct{ c *calendar }

func (f fakeBlocks) GetByDate(_ context.Context, day domain.CalendarDay) (*domain.DayBlocks, error) {
	if f.c.blocksErr != nil {
		return nil, f.c.blocksErr
	}
	blocks := &domain.DayBlocks{}
	for _, b := range f.c.blocks {
		if !b.Date.Equal(day) {
			continue
		}
		if b.AllDay {
			blocks.AllDay = append(blocks.AllDay, b)
		} else {
			blocks.Timed = append(blocks.Timed, b)
		}
	}
	return blocks, nil
}

func (f fakeBlocks) GetAllDayDates(_ context.Context, from, to domain.CalendarDay) ([]domain.CalendarDay, error) {
	if f.c.blocksErr != nil {
		return nil, f.c.blocksErr
	}
	var dates []domain.CalendarDay
	// Обратный порядок и дубликаты - движок должен сам отсортировать и убрать повторы
	for i := len(f.c.blocks) - 1; i >= 0; i-- {
		b := f.c.blocks[i]
		if b.AllDay && !b.Date.Before(from) && b.Date.Before(to) {
			dates = append(dates, b.Date)
		}
	}
	return dates, nil
}

type fakeReservations struct{ c *calendar }

// GetActiveByDate намеренно отдаёт и неактивные бронирования
func (f fakeReservations) GetActiveByDate(_ context.Context, day domain.CalendarDay) ([]*domain.Reservation, error) {
	if f.c.reservationsErr != nil {
		return nil, f.c.reservationsErr
	}
	var result []*domain.Reservation
	for _, r := range f.c.reservations {
		if r.Date.Equal(day) {
			result = append(result, r)
		}
	}
	return result, nil
}

func newEngine(t *testing.T, c *calendar) *Engine {
	t.Helper()
	tenant := domain.NewTenantID()
	service := NewService(func(id domain.TenantID) Store {
		require.Equal(t, tenant, id)
		return Store{
			WorkingHours: fakeHours{c},
			BlockedSlots: fakeBlocks{c},
			Reservations: fakeReservations{c},
		}
	}, DefaultOptions(), nil, logger.NewNop())
	return service.ForTenant(tenant)
}

func minutes(n int) *int { return &n }

func slotTimes(slots []domain.TimeSlot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Time.String())
	}
	return result
}

func availability(slots []domain.TimeSlot) map[string]bool {
	result := make(map[string]bool, len(slots))
	for _, s := range slots {
		result[s.Time.String()] = s.Available
	}
	return result
}

func TestGetAvailableSlots_OpenDayWithoutObstructions(t *testing.T) {
	engine := newEngine(t, newCalendar().open(time.Monday, "09:00", "12:00"))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(30))
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slotTimes(slots))
	for _, s := range slots {
		assert.True(t, s.Available, s.Time)
	}
}

func TestGetAvailableSlots_ReservationBlocksItsEffectiveDuration(t *testing.T) {
	// Без метаданных услуг бронирование занимает 75 минут: 10:00-11:15
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "12:00").
		reserve(monday, "10:00", domain.StatusConfirmed))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(30))
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		"09:00": true,
		"09:30": true,
		"10:00": false,
		"10:30": false,
		"11:00": false,
		"11:30": true,
	}, availability(slots))
}

func TestGetAvailableSlots_WholeDayBlock(t *testing.T) {
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "18:00").
		blockDay(monday))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(30))
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGetAvailableSlots_TimedBlock(t *testing.T) {
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "10:00").
		blockTime(monday, "09:00"))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(30))
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"09:00": false, "09:30": true}, availability(slots))
}

func TestGetAvailableSlots_TimedBlockCatchesLongerServiceStartingBefore(t *testing.T) {
	engine := newEngine(t, newCalendar().
		open(time.Monday, "08:00", "12:00").
		blockTime(monday, "09:00"))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(60))
	require.NoError(t, err)

	got := availability(slots)
	assert.True(t, got["08:00"])
	assert.False(t, got["08:30"])
	assert.False(t, got["09:00"])
	assert.True(t, got["09:30"])
}

func TestGetAvailableSlots_ClosedDays(t *testing.T) {
	closed := newCalendar()
	closed.hours[time.Monday] = &domain.WorkingHours{DayOfWeek: time.Monday, IsOpen: false, StartTime: "09:00", EndTime: "18:00"}

	tests := []struct {
		name string
		c    *calendar
	}{
		{name: "weekday not configured", c: newCalendar().open(time.Tuesday, "09:00", "18:00")},
		{name: "weekday marked closed", c: closed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := newEngine(t, tt.c).GetAvailableSlots(context.Background(), monday, nil)
			require.NoError(t, err)
			assert.Empty(t, slots)
		})
	}
}

func TestGetAvailableSlots_InactiveReservationsNeverObstruct(t *testing.T) {
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "12:00").
		reserve(monday, "10:00", domain.StatusCancelled).
		reserve(monday, "10:30", domain.StatusCompleted).
		reserve(monday, "11:00", domain.StatusNoShow))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(30))
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available, s.Time)
	}
}

func TestGetAvailableSlots_BackToBackIsNotConflict(t *testing.T) {
	// 30 + 15 буфер = 09:00-09:45, следующий старт ровно в 09:45 свободен
	c := newCalendar().open(time.Monday, "09:00", "12:00").reserve(monday, "09:00", domain.StatusPending, 30)
	engine := newEngine(t, c)

	ok, err := engine.IsSlotAvailable(context.Background(), monday, "09:45", minutes(30))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.IsSlotAvailable(context.Background(), monday, "09:40", minutes(30))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAvailableSlots_EndBoundary(t *testing.T) {
	engine := newEngine(t, newCalendar().open(time.Monday, "09:00", "12:00"))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(90))
	require.NoError(t, err)

	// Старт 11:00 + 90 минут закончился бы после закрытия
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotTimes(slots))
}

func TestGetAvailableSlots_OpenUntilMidnight(t *testing.T) {
	engine := newEngine(t, newCalendar().open(time.Monday, "22:00", "24:00"))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(60))
	require.NoError(t, err)

	assert.Equal(t, []string{"22:00", "22:30", "23:00"}, slotTimes(slots))
}

func TestGetAvailableSlots_DefaultDuration(t *testing.T) {
	engine := newEngine(t, newCalendar().open(time.Monday, "09:00", "12:00"))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slotTimes(slots))
}

func TestGetAvailableSlots_MultiServiceReservation(t *testing.T) {
	// 30 + 45 + 15 = 90 минут: 09:00-10:30
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "12:00").
		reserve(monday, "09:00", domain.StatusConfirmed, 30, 45))

	slots, err := engine.GetAvailableSlots(context.Background(), monday, minutes(30))
	require.NoError(t, err)

	got := availability(slots)
	assert.False(t, got["10:00"])
	assert.True(t, got["10:30"])
}

func TestGetAvailableSlots_IsIdempotent(t *testing.T) {
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "18:00").
		blockTime(monday, "13:00").
		reserve(monday, "10:00", domain.StatusConfirmed, 60))

	first, err := engine.GetAvailableSlots(context.Background(), monday, minutes(45))
	require.NoError(t, err)
	second, err := engine.GetAvailableSlots(context.Background(), monday, minutes(45))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailableSlots_InvalidInput(t *testing.T) {
	engine := newEngine(t, newCalendar().open(time.Monday, "09:00", "18:00"))

	tests := []struct {
		name     string
		day      domain.CalendarDay
		duration *int
	}{
		{name: "zero day", day: domain.CalendarDay{}},
		{name: "duration too short", day: monday, duration: minutes(0)},
		{name: "duration too long", day: monday, duration: minutes(24 * 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.GetAvailableSlots(context.Background(), tt.day, tt.duration)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetAvailableSlots_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		c    *calendar
	}{
		{name: "malformed start", c: newCalendar().open(time.Monday, "9h00", "18:00")},
		{name: "signed end", c: newCalendar().open(time.Monday, "09:00", "+1:00")},
		{name: "past midnight", c: newCalendar().open(time.Monday, "09:00", "24:30")},
		{name: "end before start", c: newCalendar().open(time.Monday, "18:00", "09:00")},
		{name: "malformed timed block", c: newCalendar().open(time.Monday, "09:00", "18:00").blockTime(monday, "noon")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := newEngine(t, tt.c).GetAvailableSlots(context.Background(), monday, nil)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Nil(t, slots)
		})
	}
}

func TestGetAvailableSlots_DependencyErrors(t *testing.T) {
	boom := errors.New("connection refused")

	hoursDown := newCalendar()
	hoursDown.hoursErr = boom
	blocksDown := newCalendar()
	blocksDown.blocksErr = boom
	reservationsDown := newCalendar().open(time.Monday, "09:00", "18:00")
	reservationsDown.reservationsErr = boom

	for name, c := range map[string]*calendar{
		"working hours": hoursDown,
		"blocked slots": blocksDown,
		"reservations":  reservationsDown,
	} {
		t.Run(name, func(t *testing.T) {
			slots, err := newEngine(t, c).GetAvailableSlots(context.Background(), monday, nil)
			assert.ErrorIs(t, err, ErrDependency)
			assert.ErrorIs(t, err, boom)
			assert.Nil(t, slots)
		})
	}
}

func TestIsSlotAvailable(t *testing.T) {
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "12:00").
		reserve(monday, "10:00", domain.StatusConfirmed))

	tests := []struct {
		at       string
		duration *int
		want     bool
	}{
		{at: "09:00", duration: minutes(60), want: true},
		{at: "09:30", duration: minutes(60), want: false}, // задевает 10:00
		{at: "11:15", duration: minutes(45), want: true},  // сразу после 75 минут бронирования
		{at: "11:30", duration: minutes(60), want: false}, // заканчивается после закрытия
		{at: "08:30", duration: minutes(30), want: false}, // до открытия
		{at: "10:10", duration: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			ok, err := engine.IsSlotAvailable(context.Background(), monday, types.TimeString(tt.at), tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsSlotAvailable_NilDurationMatchesDurationAwareCheck(t *testing.T) {
	// Бронирование в 09:30 занимает 09:30-10:45. Точечная проверка по совпадению времени
	// сочла бы 09:00 свободным, но 60-минутная услуга с 09:00 пересекается с ним
	engine := newEngine(t, newCalendar().
		open(time.Monday, "09:00", "12:00").
		reserve(monday, "09:30", domain.StatusConfirmed))

	ok, err := engine.IsSlotAvailable(context.Background(), monday, "09:00", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSlotAvailable_ClosedDay(t *testing.T) {
	engine := newEngine(t, newCalendar().open(time.Monday, "09:00", "18:00").blockDay(monday))

	ok, err := engine.IsSlotAvailable(context.Background(), monday, "10:00", minutes(30))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSlotAvailable_InvalidTime(t *testing.T) {
	engine := newEngine(t, newCalendar().open(time.Monday, "09:00", "18:00"))

	for _, at := range []types.TimeString{"25:00", "24:00", "+9:30", "-0:00"} {
		_, err := engine.IsSlotAvailable(context.Background(), monday, at, nil)
		assert.ErrorIs(t, err, ErrInvalidInput, at)
	}
}

func TestGetBlockedDatesForMonth(t *testing.T) {
	oct3 := domain.NewCalendarDay(2026, time.October, 3)
	oct25 := domain.NewCalendarDay(2026, time.October, 25)

	engine := newEngine(t, newCalendar().
		blockDay(oct3).
		blockDay(oct25).
		blockDay(oct3).
		blockTime(monday, "10:00").
		blockDay(domain.NewCalendarDay(2026, time.November, 1)).
		blockDay(domain.NewCalendarDay(2026, time.September, 30)))

	dates, err := engine.GetBlockedDatesForMonth(context.Background(), 2026, time.October)
	require.NoError(t, err)

	require.Len(t, dates, 2)
	assert.True(t, dates[0].Equal(oct3))
	assert.True(t, dates[1].Equal(oct25))
}

func TestGetBlockedDatesForMonth_InvalidMonth(t *testing.T) {
	engine := newEngine(t, newCalendar())

	_, err := engine.GetBlockedDatesForMonth(context.Background(), 2026, 13)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestForTenant_ZeroTenantRejected(t *testing.T) {
	c := newCalendar().open(time.Monday, "09:00", "18:00")
	service := NewService(func(domain.TenantID) Store {
		return Store{WorkingHours: fakeHours{c}, BlockedSlots: fakeBlocks{c}, Reservations: fakeReservations{c}}
	}, Options{}, nil, logger.NewNop())

	_, err := service.ForTenant(domain.TenantID{}).GetAvailableSlots(context.Background(), monday, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseDateAndTime(t *testing.T) {
	day, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.True(t, day.Equal(monday))

	_, err = ParseDate("19/10/2026")
	assert.ErrorIs(t, err, ErrInvalidInput)

	at, err := ParseTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), at)

	for _, s := range []string{"9:30", "+9:30", "+1:+5", "-0:00", "24:00"} {
		_, err = ParseTime(s)
		assert.ErrorIs(t, err, ErrInvalidInput, s)
	}
}

func TestService_TenantsSeeOnlyOwnCalendar(t *testing.T) {
	salonA, salonB := domain.NewTenantID(), domain.NewTenantID()
	calendars := map[domain.TenantID]*calendar{
		salonA: newCalendar().open(time.Monday, "09:00", "12:00").reserve(monday, "09:00", domain.StatusConfirmed, 60),
		salonB: newCalendar().open(time.Monday, "09:00", "12:00").blockDay(monday),
	}
	service := NewService(func(id domain.TenantID) Store {
		c := calendars[id]
		return Store{WorkingHours: fakeHours{c}, BlockedSlots: fakeBlocks{c}, Reservations: fakeReservations{c}}
	}, DefaultOptions(), nil, logger.NewNop())

	slotsA, err := service.GetAvailableSlots(context.Background(), salonA, monday, nil)
	require.NoError(t, err)
	require.Len(t, slotsA, 5)
	assert.False(t, slotsA[0].Available)

	slotsB, err := service.GetAvailableSlots(context.Background(), salonB, monday, nil)
	require.NoError(t, err)
	assert.Empty(t, slotsB)

	ok, err := service.IsSlotAvailable(context.Background(), salonB, monday, "10:00", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	dates, err := service.GetBlockedDatesForMonth(context.Background(), salonA, 2026, time.October)
	require.NoError(t, err)
	assert.Empty(t, dates)
}
