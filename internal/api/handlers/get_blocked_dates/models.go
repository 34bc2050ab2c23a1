package get_blocked_dates

import (
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
)

// BlockedDatesResponse дни месяца, закрытые целиком
type BlockedDatesResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Dates []string `json:"dates"` // "2026-12-25", по возрастанию
}

func FromDomainDates(year, month int, dates []domain.CalendarDay) *BlockedDatesResponse {
	result := make([]string, len(dates))
	for i, d := range dates {
		result[i] = d.String()
	}
	return &BlockedDatesResponse{Year: year, Month: month, Dates: result}
}
