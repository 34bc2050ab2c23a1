package availability

import (
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

// generateSlots обходит рабочее окно с шагом granularity и проверяет каждый старт.
// Старт, при котором услуга длительностью duration закончится после закрытия, не предлагается.
// Результат отсортирован по времени, а не по доступности
func generateSlots(w window, obstructions []obstruction, granularity, duration int) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)

	for start := w.start; start < w.end; start += granularity {
		if !fitsWindow(w, start, duration) {
			break
		}

		ts, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.TimeSlot{
			Time:      ts,
			Available: isFree(start, duration, obstructions),
		})
	}

	return slots, nil
}

// fitsWindow проверяет, что [start, start+duration) целиком внутри рабочего окна
func fitsWindow(w window, start, duration int) bool {
	return start >= w.start && start+duration <= w.end
}

// isFree проверяет, что [start, start+duration) не пересекается ни с одним занятым интервалом
func isFree(start, duration int, obstructions []obstruction) bool {
	end := start + duration
	for _, o := range obstructions {
		if overlaps(start, end, o.start, o.end) {
			return false
		}
	}
	return true
}

// overlaps проверяет пересечение полуинтервалов [a0, a1) и [b0, b1).
// Если одно заканчивается ровно там, где начинается другое - это НЕ пересечение
//
// Примеры:
// - 10:00-11:15 и 11:00-11:30 → пересекаются
// - 10:00-11:00 и 11:00-12:00 → не пересекаются (граничат)
func overlaps(a0, a1, b0, b1 int) bool {
	return a0 < b1 && b0 < a1
}
