package domain

import (
	"time"

	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clockOf извлекает время суток из момента
func clockOf(t time.Time) types.TimeOfDay {
	return types.NewTimeOfDayFromClock(t)
}

// SameDay возвращает true, если два момента относятся к одной календарной дате
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return dateOnly(t)
}
