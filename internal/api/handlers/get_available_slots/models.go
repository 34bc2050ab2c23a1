package get_available_slots

import (
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date string `json:"date"`
	// Длительность, с которой считалась доступность. Не задана - стандартная
	DurationMinutes *int            `json:"durationMinutes,omitempty"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromDomainSlots конвертирует слоты движка в HTTP response
func FromDomainSlots(day domain.CalendarDay, durationMinutes *int, slots []domain.TimeSlot) *AvailableSlotsResponse {
	result := make([]AvailableSlot, len(slots))
	for i, slot := range slots {
		result[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            day.String(),
		DurationMinutes: durationMinutes,
		Slots:           result,
	}
}
