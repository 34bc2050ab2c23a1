package domain

import (
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// WorkingHours часы работы организации для одного дня недели.
// StartTime/EndTime хранятся как есть ("HH:MM"), разбор и проверка - в движке доступности
type WorkingHours struct {
	ID        int64
	TenantID  TenantID
	DayOfWeek time.Weekday // 0 - воскресенье
	IsOpen    bool
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockedSlot блокировка календаря администратором: весь день или одна точка времени
type BlockedSlot struct {
	ID        int64
	TenantID  TenantID
	Date      CalendarDay
	AllDay    bool
	Time      *string // nil для AllDay
	Reason    *string
	CreatedAt time.Time
}

// DayBlocks блокировки одного дня, разделённые по типу
type DayBlocks struct {
	AllDay []*BlockedSlot
	Timed  []*BlockedSlot
}

// IsClosed возвращает true, если день заблокирован целиком
func (b *DayBlocks) IsClosed() bool {
	return b != nil && len(b.AllDay) > 0
}

// TimeSlot результат расчета: время начала и доступность
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
