package domain

import (
	"fmt"
	"time"
)

// AvailabilityWindow окно доступности услуги: недельное расписание открытия,
// действующее в диапазоне дат, с вместимостью в местах.
// Настраивается администратором; для движка бронирования данные read-only.
type AvailabilityWindow struct {
	ID           int64
	ServiceID    int64
	ValidFrom    time.Time // дата без времени, включительно
	ValidTo      time.Time // дата без времени, включительно
	Schedule     WeeklySchedule
	SeatCapacity int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate проверяет инварианты окна доступности
func (w *AvailabilityWindow) Validate() error {
	if w.ValidFrom.IsZero() || w.ValidTo.IsZero() {
		return fmt.Errorf("%w: validity range is required", ErrInvalidConfiguration)
	}
	if dateOnly(w.ValidTo).Before(dateOnly(w.ValidFrom)) {
		return fmt.Errorf("%w: validFrom %s is after validTo %s",
			ErrInvalidConfiguration, w.ValidFrom.Format(DateFormat), w.ValidTo.Format(DateFormat))
	}
	if w.SeatCapacity < MinSeatCapacity || w.SeatCapacity > MaxSeatCapacity {
		return fmt.Errorf("%w: seat capacity %d out of range [%d, %d]",
			ErrInvalidConfiguration, w.SeatCapacity, MinSeatCapacity, MaxSeatCapacity)
	}
	return w.Schedule.Validate()
}

// CoversDate возвращает true, если дата попадает в диапазон действия окна
func (w *AvailabilityWindow) CoversDate(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(w.ValidFrom)) && !d.After(dateOnly(w.ValidTo))
}

// DailyIntervals возвращает интервалы открытия на дату.
// Пустой результат — дата вне диапазона или закрытый день.
func (w *AvailabilityWindow) DailyIntervals(date time.Time) []TimeInterval {
	if !w.CoversDate(date) {
		return nil
	}
	return w.Schedule.DailyIntervals(date)
}

// StartOfDay возвращает момент открытия в указанную дату.
// nil, если день закрыт или дата вне диапазона.
func (w *AvailabilityWindow) StartOfDay(date time.Time) *time.Time {
	intervals := w.DailyIntervals(date)
	if len(intervals) == 0 {
		return nil
	}
	start := intervals[0].Start.At(date)
	return &start
}

// EndOfDay возвращает момент закрытия в указанную дату.
// nil, если день закрыт или дата вне диапазона.
func (w *AvailabilityWindow) EndOfDay(date time.Time) *time.Time {
	intervals := w.DailyIntervals(date)
	if len(intervals) == 0 {
		return nil
	}
	end := intervals[len(intervals)-1].End.At(date)
	return &end
}

// ContainsInstant возвращает true, если момент попадает в один из интервалов
// открытия своего дня. Начало интервала включительно, конец исключительно.
func (w *AvailabilityWindow) ContainsInstant(instant time.Time) bool {
	for _, interval := range w.DailyIntervals(instant) {
		if interval.Contains(clockOf(instant)) {
			return true
		}
	}
	return false
}

// GenerateSlots нарезает интервалы открытия даты на слоты фиксированной длины.
// Неполный хвостовой слот не эмитится.
func (w *AvailabilityWindow) GenerateSlots(date time.Time, slotDurationMinutes int) []BookingSlot {
	if slotDurationMinutes <= 0 {
		return nil
	}

	slots := make([]BookingSlot, 0)
	for _, interval := range w.DailyIntervals(date) {
		current := interval.Start
		for current.IsBefore(interval.End) {
			slotEnd, err := current.AddMinutes(slotDurationMinutes)
			if err != nil || slotEnd.IsAfter(interval.End) {
				break
			}
			slots = append(slots, BookingSlot{
				StartAt: current.At(date),
				EndAt:   slotEnd.At(date),
			})
			current = slotEnd
		}
	}
	return slots
}
