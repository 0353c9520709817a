package domain

import (
	"fmt"
	"time"
)

// UnavailabilityWindow абсолютный (не повторяющийся) интервал недоступности
// коворкинга, например праздничное закрытие. Перекрывает окна доступности
// всех услуг затронутых площадок.
type UnavailabilityWindow struct {
	ID        int64
	Label     string
	SpaceIDs  []int64
	StartAt   time.Time
	EndAt     time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет инвариант startAt < endAt
func (w *UnavailabilityWindow) Validate() error {
	if w.StartAt.IsZero() || w.EndAt.IsZero() {
		return fmt.Errorf("%w: unavailability interval is required", ErrInvalidConfiguration)
	}
	if !w.StartAt.Before(w.EndAt) {
		return fmt.Errorf("%w: unavailability start %s must be before end %s",
			ErrInvalidConfiguration, w.StartAt.Format(time.RFC3339), w.EndAt.Format(time.RFC3339))
	}
	if len(w.Label) > MaxUnavailabilityLabelLen {
		return fmt.Errorf("%w: label exceeds %d characters", ErrInvalidConfiguration, MaxUnavailabilityLabelLen)
	}
	if len(w.SpaceIDs) == 0 {
		return fmt.Errorf("%w: unavailability window must reference at least one space", ErrInvalidConfiguration)
	}
	return nil
}

// Overlaps проверяет пересечение с полуоткрытым интервалом [start, end)
func (w *UnavailabilityWindow) Overlaps(start, end time.Time) bool {
	return start.Before(w.EndAt) && end.After(w.StartAt)
}

// ContainsInstant возвращает true, если момент попадает в окно: start <= t < end
func (w *UnavailabilityWindow) ContainsInstant(instant time.Time) bool {
	return !instant.Before(w.StartAt) && instant.Before(w.EndAt)
}
