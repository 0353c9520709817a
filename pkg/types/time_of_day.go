package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Format формат времени суток, используемый во всём сервисе
const Format = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidFormat возвращается при некорректной строке времени (ожидается HH:MM)
	ErrInvalidFormat = errors.New("types: invalid time of day format, expected HH:MM")

	// ErrOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfRange = errors.New("types: time of day out of range")
)

// TimeOfDay время суток (час, минута) без привязки к дате.
// Неизменяемый тип-значение, упорядочен по количеству минут с полуночи.
type TimeOfDay struct {
	hour   int
	minute int
	valid  bool
}

// NewTimeOfDay создает время суток из часа и минуты
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrOutOfRange, hour, minute)
	}
	return TimeOfDay{hour: hour, minute: minute, valid: true}, nil
}

// NewTimeOfDayFromClock извлекает время суток из time.Time (секунды отбрасываются)
func NewTimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), valid: true}
}

// ParseTimeOfDay парсит строку формата "HH:MM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), valid: true}, nil
}

// MustTimeOfDay парсит строку и паникует при ошибке. Только для тестов и констант.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour возвращает час (0-23)
func (t TimeOfDay) Hour() int { return t.hour }

// Minute возвращает минуту (0-59)
func (t TimeOfDay) Minute() int { return t.minute }

// IsZero возвращает true для незаполненного значения
func (t TimeOfDay) IsZero() bool { return !t.valid }

// Validate проверяет, что значение заполнено и корректно
func (t TimeOfDay) Validate() error {
	if !t.valid {
		return fmt.Errorf("%w: empty value", ErrInvalidFormat)
	}
	if t.hour < 0 || t.hour > 23 || t.minute < 0 || t.minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", ErrOutOfRange, t.hour, t.minute)
	}
	return nil
}

// MinutesSinceMidnight возвращает количество минут с полуночи
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.hour*60 + t.minute
}

// AddMinutes возвращает время, сдвинутое на n минут.
// Возвращает ошибку, если результат выходит за пределы тех же суток.
func (t TimeOfDay) AddMinutes(n int) (TimeOfDay, error) {
	total := t.MinutesSinceMidnight() + n
	if total < 0 || total >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %s%+d min", ErrOutOfRange, t, n)
	}
	return TimeOfDay{hour: total / 60, minute: total % 60, valid: true}, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.MinutesSinceMidnight() < other.MinutesSinceMidnight()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.MinutesSinceMidnight() > other.MinutesSinceMidnight()
}

// Equal возвращает true, если значения совпадают
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.valid == other.valid && t.MinutesSinceMidnight() == other.MinutesSinceMidnight()
}

// At комбинирует время суток с календарной датой (год/месяц/день и локация берутся из date)
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.hour, t.minute, 0, 0, date.Location())
}

// String возвращает строку формата "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON десериализует время из строки "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer для сохранения в БД
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает строки "HH:MM", "HH:MM:SS" и time.Time (колонки типа TIME).
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = NewTimeOfDayFromClock(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	if len(s) > len(Format) {
		s = s[:len(Format)]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
