package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// ShapeKind вид запрашиваемого бронирования
type ShapeKind string

const (
	ShapeOneSlot         ShapeKind = "one_slot"
	ShapeHalfDay         ShapeKind = "half_day"
	ShapeMultiDayRange   ShapeKind = "multi_day_range"
	ShapeExplicitDateSet ShapeKind = "explicit_date_set"
)

// HalfDayPart половина дня для ShapeHalfDay
type HalfDayPart string

const (
	HalfDayMorning   HalfDayPart = "morning"
	HalfDayAfternoon HalfDayPart = "afternoon"
)

// BookingShape форма запроса на бронирование: один слот, полдня,
// диапазон дат или произвольный набор дат. Определяет ветку планировщика.
type BookingShape struct {
	Kind ShapeKind

	// OneSlot
	Date            time.Time       // якорная дата (OneSlot, HalfDay)
	StartTime       types.TimeOfDay // выбранное время начала (OneSlot)
	DurationMinutes int             // длительность слота (OneSlot)

	// HalfDay
	Part HalfDayPart

	// MultiDayRange
	From time.Time
	To   time.Time

	// ExplicitDateSet: даты в порядке, заданном вызывающей стороной
	Dates []time.Time
}

// OneSlotShape запрос одного слота фиксированной длительности
func OneSlotShape(date time.Time, start types.TimeOfDay, durationMinutes int) BookingShape {
	return BookingShape{Kind: ShapeOneSlot, Date: date, StartTime: start, DurationMinutes: durationMinutes}
}

// HalfDayShape запрос на полдня (утро или послеобеденное время)
func HalfDayShape(date time.Time, part HalfDayPart) BookingShape {
	return BookingShape{Kind: ShapeHalfDay, Date: date, Part: part}
}

// MultiDayRangeShape запрос на каждый день диапазона [from, to] включительно
func MultiDayRangeShape(from, to time.Time) BookingShape {
	return BookingShape{Kind: ShapeMultiDayRange, From: from, To: to}
}

// ExplicitDateSetShape запрос на явно перечисленные даты
func ExplicitDateSetShape(dates []time.Time) BookingShape {
	return BookingShape{Kind: ShapeExplicitDateSet, Dates: dates}
}

// Validate проверяет внутреннюю согласованность формы
func (s BookingShape) Validate() error {
	switch s.Kind {
	case ShapeOneSlot:
		if s.Date.IsZero() {
			return fmt.Errorf("one_slot: date is required")
		}
		if s.StartTime.IsZero() {
			return fmt.Errorf("one_slot: start time is required")
		}
		if s.DurationMinutes < MinSlotDurationMinutes || s.DurationMinutes > MaxSlotDurationMinutes {
			return fmt.Errorf("one_slot: duration %d out of range [%d, %d]",
				s.DurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)
		}
	case ShapeHalfDay:
		if s.Date.IsZero() {
			return fmt.Errorf("half_day: date is required")
		}
		if s.Part != HalfDayMorning && s.Part != HalfDayAfternoon {
			return fmt.Errorf("half_day: unknown part %q", s.Part)
		}
	case ShapeMultiDayRange:
		if s.From.IsZero() || s.To.IsZero() {
			return fmt.Errorf("multi_day_range: from and to are required")
		}
		if dateOnly(s.To).Before(dateOnly(s.From)) {
			return fmt.Errorf("multi_day_range: from %s is after to %s",
				s.From.Format(DateFormat), s.To.Format(DateFormat))
		}
	case ShapeExplicitDateSet:
		if len(s.Dates) == 0 {
			return fmt.Errorf("explicit_date_set: at least one date is required")
		}
	default:
		return fmt.Errorf("unknown booking shape %q", s.Kind)
	}
	return nil
}
