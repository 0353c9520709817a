package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// TimeInterval один интервал открытия внутри дня: [Start, End)
type TimeInterval struct {
	Start types.TimeOfDay `json:"start"`
	End   types.TimeOfDay `json:"end"`
}

// Validate проверяет инвариант start < end
func (i TimeInterval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: interval start: %v", ErrInvalidConfiguration, err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: interval end: %v", ErrInvalidConfiguration, err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: interval start %s must be before end %s", ErrInvalidConfiguration, i.Start, i.End)
	}
	return nil
}

// Contains возвращает true, если время попадает в интервал.
// Начало включительно, конец исключительно.
func (i TimeInterval) Contains(t types.TimeOfDay) bool {
	return !t.IsBefore(i.Start) && t.IsBefore(i.End)
}

// DurationMinutes возвращает длину интервала в минутах
func (i TimeInterval) DurationMinutes() int {
	return i.End.MinutesSinceMidnight() - i.Start.MinutesSinceMidnight()
}

// WeeklySchedule недельное расписание открытия: интервалы по дням недели.
// Отсутствие дня означает, что площадка в этот день закрыта.
// Инвариант: интервалы каждого дня упорядочены по возрастанию и не пересекаются.
type WeeklySchedule map[time.Weekday][]TimeInterval

// weekdayNames имена дней недели в JSON представлении расписания
var weekdayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Validate проверяет инварианты расписания
func (s WeeklySchedule) Validate() error {
	for day, intervals := range s {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidConfiguration, day)
		}
		for idx, interval := range intervals {
			if err := interval.Validate(); err != nil {
				return fmt.Errorf("%s interval %d: %w", weekdayNames[day], idx, err)
			}
			if idx > 0 {
				prev := intervals[idx-1]
				if interval.Start.IsBefore(prev.End) {
					return fmt.Errorf("%w: %s intervals must be ascending and disjoint (%s-%s overlaps %s-%s)",
						ErrInvalidConfiguration, weekdayNames[day],
						prev.Start, prev.End, interval.Start, interval.End)
				}
			}
		}
	}
	return nil
}

// DailyIntervals возвращает интервалы открытия для дня недели указанной даты.
// Пустой результат означает закрытый день.
func (s WeeklySchedule) DailyIntervals(date time.Time) []TimeInterval {
	return s[date.Weekday()]
}

// EarliestStart возвращает самое раннее время открытия за неделю.
// nil, если расписание пустое. Используется для размерности календарной сетки.
func (s WeeklySchedule) EarliestStart() *types.TimeOfDay {
	var earliest *types.TimeOfDay
	for _, intervals := range s {
		for _, interval := range intervals {
			if earliest == nil || interval.Start.IsBefore(*earliest) {
				start := interval.Start
				earliest = &start
			}
		}
	}
	return earliest
}

// LatestEnd возвращает самое позднее время закрытия за неделю.
// nil, если расписание пустое.
func (s WeeklySchedule) LatestEnd() *types.TimeOfDay {
	var latest *types.TimeOfDay
	for _, intervals := range s {
		for _, interval := range intervals {
			if latest == nil || interval.End.IsAfter(*latest) {
				end := interval.End
				latest = &end
			}
		}
	}
	return latest
}

// MaxIntervalMinutes возвращает длину самого длинного интервала за неделю
func (s WeeklySchedule) MaxIntervalMinutes() int {
	max := 0
	for _, intervals := range s {
		for _, interval := range intervals {
			if d := interval.DurationMinutes(); d > max {
				max = d
			}
		}
	}
	return max
}

// MarshalJSON сериализует расписание как объект {"monday": [...], ...}
// в фиксированном порядке дней недели
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for day := time.Sunday; day <= time.Saturday; day++ {
		intervals, ok := s[day]
		if !ok {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		data, err := json.Marshal(intervals)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%q:%s", weekdayNames[day], data)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON десериализует расписание из объекта с именами дней недели
func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	raw := make(map[string][]TimeInterval)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := make(WeeklySchedule, len(raw))
	for name, intervals := range raw {
		day, err := parseWeekday(name)
		if err != nil {
			return err
		}
		result[day] = intervals
	}
	*s = result
	return nil
}

// parseWeekday конвертирует имя дня недели в time.Weekday
func parseWeekday(name string) (time.Weekday, error) {
	for idx, n := range weekdayNames {
		if n == strings.ToLower(name) {
			return time.Weekday(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfiguration, name)
}
