package availability

import (
	"fmt"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/types"
)

type obstructionKind int

const (
	obstructionBlocked obstructionKind = iota
	obstructionReservation
)

// obstruction занятый полуинтервал [start, end) в минутах от полуночи
type obstruction struct {
	start int
	end   int
	kind  obstructionKind
}

// collectObstructions превращает блокировки и бронирования дня в занятые интервалы.
// Точечная блокировка занимает один шаг сетки, бронирование - свою эффективную длительность
func collectObstructions(
	timedBlocks []*domain.BlockedSlot,
	reservations []*domain.Reservation,
	granularity int,
) ([]obstruction, error) {
	result := make([]obstruction, 0, len(timedBlocks)+len(reservations))

	for _, block := range timedBlocks {
		if block.AllDay || block.Time == nil {
			continue
		}

		start, err := types.TimeString(*block.Time).Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: blocked slot id=%d: %v", ErrConfiguration, block.ID, err)
		}

		result = append(result, obstruction{
			start: start,
			end:   start + granularity,
			kind:  obstructionBlocked,
		})
	}

	for _, reservation := range reservations {
		// Хранилище отдает только активные, но отменённые не должны занимать время ни при каких условиях
		if !reservation.IsActive() {
			continue
		}

		start, err := reservation.Time.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: reservation id=%d has invalid time: %v", ErrDependency, reservation.ID, err)
		}

		result = append(result, obstruction{
			start: start,
			end:   start + reservation.EffectiveDurationMinutes(),
			kind:  obstructionReservation,
		})
	}

	return result, nil
}
