package models

import (
	"time"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// Request модели

// SetWorkingHoursRequest часы работы на один день недели
type SetWorkingHoursRequest struct {
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// CreateBlockedSlotRequest блокировка дня целиком (allDay) или одного времени
type CreateBlockedSlotRequest struct {
	Date   string  `json:"date"` // "2026-12-25"
	AllDay bool    `json:"allDay"`
	Time   *string `json:"time,omitempty"` // "14:30", обязательно если allDay=false
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// WorkingHoursResponse часы работы одного дня недели
type WorkingHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 - воскресенье
	DayName   string `json:"dayName"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// WeekResponse расписание на неделю, всегда семь дней начиная с воскресенья
type WeekResponse struct {
	Days []WorkingHoursResponse `json:"days"`
}

// BlockedSlotResponse созданная блокировка
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	AllDay    bool      `json:"allDay"`
	Time      *string   `json:"time,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainWorkingHours конвертирует domain.WorkingHours в WorkingHoursResponse
func FromDomainWorkingHours(h *domain.WorkingHours) WorkingHoursResponse {
	resp := WorkingHoursResponse{
		DayOfWeek: int(h.DayOfWeek),
		DayName:   h.DayOfWeek.String(),
		IsOpen:    h.IsOpen,
	}
	if h.IsOpen {
		resp.StartTime = h.StartTime
		resp.EndTime = h.EndTime
	}
	return resp
}

// FromDomainWeek собирает неделю. Дни без записи возвращаются закрытыми
func FromDomainWeek(hours []*domain.WorkingHours) *WeekResponse {
	byDay := make(map[time.Weekday]*domain.WorkingHours, len(hours))
	for _, h := range hours {
		byDay[h.DayOfWeek] = h
	}

	days := make([]WorkingHoursResponse, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		h, ok := byDay[d]
		if !ok {
			h = &domain.WorkingHours{DayOfWeek: d}
		}
		days = append(days, FromDomainWorkingHours(h))
	}

	return &WeekResponse{Days: days}
}

// FromDomainBlockedSlot конвертирует domain.BlockedSlot в BlockedSlotResponse
func FromDomainBlockedSlot(s *domain.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:        s.ID,
		Date:      s.Date.String(),
		AllDay:    s.AllDay,
		Time:      s.Time,
		Reason:    s.Reason,
		CreatedAt: s.CreatedAt,
	}
}
