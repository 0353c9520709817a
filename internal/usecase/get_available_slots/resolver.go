package get_available_slots

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// resolveAvailability разбивает кандидатов на доступные и недоступные с причиной.
// Порядок кандидатов сохраняется в обоих списках.
//
// Правила, в порядке приоритета:
//  0. кандидат пересекает окно недоступности коворкинга -> space_closed
//     (единственное место, где окна недоступности учитываются);
//  1. кандидат целиком в прошлом (end <= now) -> не попадает ни в один список;
//  2. пользователь уже держит активную бронь внутри кандидата -> already_booked_by_user;
//  3. занято мест не меньше вместимости -> capacity_reached;
//  4. иначе кандидат доступен.
//
// Результат детерминирован: зависит только от аргументов, включая явный now.
func resolveAvailability(
	candidates []domain.PlannedSlot,
	existingBookings []*domain.Booking,
	closures []*domain.UnavailabilityWindow,
	requestingUserID int64,
	now time.Time,
) ([]domain.BookingSlot, []domain.UnavailableSlot) {
	available := make([]domain.BookingSlot, 0, len(candidates))
	unavailable := make([]domain.UnavailableSlot, 0)

	for _, candidate := range candidates {
		slot := candidate.Slot

		// Прошедшие слоты не предлагаются и не объясняются
		if !slot.EndAt.After(now) {
			continue
		}

		if overlapsClosure(slot, closures) {
			unavailable = append(unavailable, domain.UnavailableSlot{
				Slot:   slot,
				Reason: domain.ReasonSpaceClosed,
			})
			continue
		}

		ownBooking, occupied := countContainedBookings(slot, existingBookings, requestingUserID)

		switch {
		case ownBooking:
			unavailable = append(unavailable, domain.UnavailableSlot{
				Slot:   slot,
				Reason: domain.ReasonAlreadyBookedByUser,
			})
		case occupied >= candidate.SeatCapacity:
			unavailable = append(unavailable, domain.UnavailableSlot{
				Slot:   slot,
				Reason: domain.ReasonCapacityReached,
			})
		default:
			available = append(available, slot)
		}
	}

	return available, unavailable
}

// overlapsClosure проверяет пересечение кандидата с окнами недоступности
func overlapsClosure(slot domain.BookingSlot, closures []*domain.UnavailabilityWindow) bool {
	for _, closure := range closures {
		if closure.Overlaps(slot.StartAt, slot.EndAt) {
			return true
		}
	}
	return false
}

// countContainedBookings подсчитывает активные брони, целиком лежащие внутри
// кандидата. Крупный кандидат (полдня, диапазон) поглощает мелкие часовые брони,
// из которых он собран.
//
// Возвращает признак того, что одна из броней принадлежит запрашивающему
// пользователю, и общее число поглощенных броней.
func countContainedBookings(slot domain.BookingSlot, bookings []*domain.Booking, userID int64) (bool, int) {
	own := false
	count := 0

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		// Бронь целиком внутри кандидата: slot.start <= b.start && b.end <= slot.end
		if booking.StartAt.Before(slot.StartAt) || booking.EndAt.After(slot.EndAt) {
			continue
		}
		count++
		if booking.UserID == userID {
			own = true
		}
	}

	return own, count
}
