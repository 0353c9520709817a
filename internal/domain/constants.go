package domain

import "github.com/m04kA/CWS-BookingService/pkg/types"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultSeatCapacity        = 1
)

// Half-day booking policy
const (
	// HalfDayDurationMinutes длительность бронирования на полдня (4 часа)
	HalfDayDurationMinutes = 240
)

// MiddayCut граница между утренним и дневным бронированием.
// Фиксированная политика площадки, не зависит от расписания конкретной услуги.
var MiddayCut = types.MustTimeOfDay("13:00")

// Business validation constants
const (
	MinSlotDurationMinutes      = 15
	MaxSlotDurationMinutes      = 480 // 8 часов
	MinSeatCapacity             = 1
	MaxSeatCapacity             = 500
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxUnavailabilityLabelLen   = 200
	MaxBulkSlots                = 62 // два месяца ежедневных бронирований
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований.
// Неактивные бронирования не занимают места при подсчёте доступности.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledBySpace,
	StatusExpired,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPendingConfirmation,
	StatusConfirmed,
	StatusCompleted,
}
