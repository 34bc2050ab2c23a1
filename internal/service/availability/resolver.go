package availability

import (
	"fmt"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// window рабочее окно дня в минутах от полуночи, end не включается
type window struct {
	start int
	end   int
}

// resolveWindow определяет, открыт ли день, и его рабочее окно.
// hours == nil означает, что день недели не настроен - институт закрыт
func resolveWindow(hours *domain.WorkingHours, blocks *domain.DayBlocks) (window, bool, error) {
	// Блокировка на весь день закрывает день независимо от часов работы
	if blocks.IsClosed() {
		return window{}, false, nil
	}

	if hours == nil || !hours.IsOpen {
		return window{}, false, nil
	}

	start, err := types.TimeString(hours.StartTime).Minutes()
	if err != nil {
		return window{}, false, fmt.Errorf("%w: weekday %d start time: %v", ErrConfiguration, hours.DayOfWeek, err)
	}

	end, err := types.TimeString(hours.EndTime).Minutes()
	if err != nil {
		return window{}, false, fmt.Errorf("%w: weekday %d end time: %v", ErrConfiguration, hours.DayOfWeek, err)
	}

	if end <= start {
		return window{}, false, fmt.Errorf("%w: weekday %d closes at %s before opening at %s",
			ErrConfiguration, hours.DayOfWeek, hours.EndTime, hours.StartTime)
	}

	return window{start: start, end: end}, true, nil
}
