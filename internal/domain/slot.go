package domain

import "time"

// BookingSlot кандидат на бронирование: интервал [StartAt, EndAt).
// Не персистентен, пока пакетное создание не завершилось успешно.
type BookingSlot struct {
	StartAt time.Time
	EndAt   time.Time
}

// Equal возвращает true, если слоты совпадают с точностью до момента
func (s BookingSlot) Equal(other BookingSlot) bool {
	return s.StartAt.Equal(other.StartAt) && s.EndAt.Equal(other.EndAt)
}

// PlannedSlot кандидат с вместимостью окна доступности, из которого он построен.
// Вместимость нужна резолверу: разные окна одной услуги могут отличаться
// количеством мест.
type PlannedSlot struct {
	Slot         BookingSlot
	SeatCapacity int
}

// UnavailabilityReason причина недоступности кандидата
type UnavailabilityReason string

const (
	// ReasonAlreadyBookedByUser пользователь уже бронировал этот интервал
	ReasonAlreadyBookedByUser UnavailabilityReason = "already_booked_by_user"

	// ReasonCapacityReached все места на интервал заняты
	ReasonCapacityReached UnavailabilityReason = "capacity_reached"

	// ReasonSpaceClosed интервал пересекается с окном недоступности коворкинга
	ReasonSpaceClosed UnavailabilityReason = "space_closed"
)

// UnavailableSlot кандидат, отклоненный резолвером, с причиной
type UnavailableSlot struct {
	Slot   BookingSlot
	Reason UnavailabilityReason
}
