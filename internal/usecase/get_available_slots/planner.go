package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// planSlots разворачивает форму бронирования в упорядоченный список кандидатов
// без учета занятости и окон недоступности — это работа резолвера.
// Каждый кандидат несет вместимость окна доступности, из которого построен.
//
// Отсутствие кандидатов (закрытый день, дата вне окон) — нормальный результат,
// не ошибка. Ошибки возвращаются только для внутренне несогласованных запросов.
func planSlots(
	shape domain.BookingShape,
	windows []*domain.AvailabilityWindow,
	slotDurationMinutes int,
) ([]domain.PlannedSlot, error) {
	var candidates []domain.PlannedSlot
	var err error

	switch shape.Kind {
	case domain.ShapeOneSlot:
		candidates, err = planOneSlot(shape, windows)
	case domain.ShapeHalfDay:
		candidates, err = planHalfDay(shape, windows)
	case domain.ShapeMultiDayRange:
		candidates = planDates(rangeDates(shape.From, shape.To), windows, slotDurationMinutes)
	case domain.ShapeExplicitDateSet:
		candidates = planDates(shape.Dates, windows, slotDurationMinutes)
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", ErrInvalidShape, shape.Kind)
	}

	if err != nil {
		return nil, err
	}
	return dedupeSlots(candidates), nil
}

// planOneSlot строит единственный кандидат по выбранному времени начала.
// Время должно попадать в один из интервалов открытия вместе со своим концом.
func planOneSlot(shape domain.BookingShape, windows []*domain.AvailabilityWindow) ([]domain.PlannedSlot, error) {
	window := coveringWindow(windows, shape.Date)
	if window == nil {
		return nil, nil
	}

	start := shape.StartTime
	end, err := start.AddMinutes(shape.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: slot does not fit into the day", ErrSlotOutsideSchedule)
	}

	for _, interval := range window.DailyIntervals(shape.Date) {
		if !interval.Contains(start) {
			continue
		}
		// Конец слота может совпадать с концом интервала, но не выходить за него
		if end.IsAfter(interval.End) {
			break
		}
		return []domain.PlannedSlot{{
			Slot: domain.BookingSlot{
				StartAt: start.At(shape.Date),
				EndAt:   end.At(shape.Date),
			},
			SeatCapacity: window.SeatCapacity,
		}}, nil
	}

	return nil, ErrSlotOutsideSchedule
}

// planHalfDay строит кандидат на полдня, привязанный к открытию или закрытию дня.
// Утро не может заходить за границу 13:00, послеобеденное время — начинаться до неё.
func planHalfDay(shape domain.BookingShape, windows []*domain.AvailabilityWindow) ([]domain.PlannedSlot, error) {
	window := coveringWindow(windows, shape.Date)
	if window == nil {
		return nil, nil
	}

	// Услуга, чье расписание нигде не вмещает полдня, не поддерживает эту форму
	if window.Schedule.MaxIntervalMinutes() < domain.HalfDayDurationMinutes {
		return nil, ErrHalfDayNotSupported
	}

	intervals := window.DailyIntervals(shape.Date)
	if len(intervals) == 0 {
		return nil, nil
	}

	switch shape.Part {
	case domain.HalfDayMorning:
		start := intervals[0].Start
		end, err := start.AddMinutes(domain.HalfDayDurationMinutes)
		if err != nil || end.IsAfter(domain.MiddayCut) {
			return nil, nil
		}
		if end.IsAfter(intervals[0].End) {
			// День открыт меньше, чем на полдня
			return nil, nil
		}
		return []domain.PlannedSlot{{
			Slot: domain.BookingSlot{
				StartAt: start.At(shape.Date),
				EndAt:   end.At(shape.Date),
			},
			SeatCapacity: window.SeatCapacity,
		}}, nil

	case domain.HalfDayAfternoon:
		end := intervals[len(intervals)-1].End
		start, err := end.AddMinutes(-domain.HalfDayDurationMinutes)
		if err != nil || start.IsBefore(domain.MiddayCut) {
			return nil, nil
		}
		if start.IsBefore(intervals[len(intervals)-1].Start) {
			return nil, nil
		}
		return []domain.PlannedSlot{{
			Slot: domain.BookingSlot{
				StartAt: start.At(shape.Date),
				EndAt:   end.At(shape.Date),
			},
			SeatCapacity: window.SeatCapacity,
		}}, nil
	}

	return nil, fmt.Errorf("%w: unknown half-day part %q", ErrInvalidShape, shape.Part)
}

// planDates разворачивает список дат в слоты фиксированного шага.
// Даты без покрывающего окна и закрытые дни пропускаются без ошибки.
func planDates(dates []time.Time, windows []*domain.AvailabilityWindow, slotDurationMinutes int) []domain.PlannedSlot {
	candidates := make([]domain.PlannedSlot, 0)

	for _, date := range dates {
		window := coveringWindow(windows, date)
		if window == nil {
			continue
		}
		for _, slot := range window.GenerateSlots(date, slotDurationMinutes) {
			candidates = append(candidates, domain.PlannedSlot{
				Slot:         slot,
				SeatCapacity: window.SeatCapacity,
			})
		}
	}

	return candidates
}

// coveringWindow выбирает окно доступности, покрывающее дату.
// При нескольких кандидатах побеждает окно с самым поздним началом действия:
// новое опубликованное окно перекрывает старое на пересечении.
func coveringWindow(windows []*domain.AvailabilityWindow, date time.Time) *domain.AvailabilityWindow {
	var selected *domain.AvailabilityWindow
	for _, w := range windows {
		if !w.CoversDate(date) {
			continue
		}
		if selected == nil || w.ValidFrom.After(selected.ValidFrom) {
			selected = w
		}
	}
	return selected
}

// rangeDates возвращает все даты диапазона [from, to] включительно
func rangeDates(from, to time.Time) []time.Time {
	from = domain.DateOnly(from)
	to = domain.DateOnly(to)

	dates := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// dedupeSlots убирает повторяющиеся кандидаты, сохраняя порядок первых вхождений
func dedupeSlots(candidates []domain.PlannedSlot) []domain.PlannedSlot {
	if len(candidates) < 2 {
		return candidates
	}

	type key struct {
		start int64
		end   int64
	}

	seen := make(map[key]struct{}, len(candidates))
	result := make([]domain.PlannedSlot, 0, len(candidates))

	for _, c := range candidates {
		k := key{start: c.Slot.StartAt.Unix(), end: c.Slot.EndAt.Unix()}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, c)
	}
	return result
}
