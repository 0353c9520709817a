package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

func plannedSlot(start, end time.Time, capacity int) domain.PlannedSlot {
	return domain.PlannedSlot{
		Slot:         domain.BookingSlot{StartAt: start, EndAt: end},
		SeatCapacity: capacity,
	}
}

func activeBooking(userID int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		UserID:  userID,
		StartAt: start,
		EndAt:   end,
		Status:  domain.StatusConfirmed,
	}
}

func TestResolveAvailability_PastSlotsOmitted(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := day.Add(11 * time.Hour)

	candidates := []domain.PlannedSlot{
		plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 1),  // целиком в прошлом
		plannedSlot(day.Add(10*time.Hour), day.Add(11*time.Hour), 1), // end == now, тоже прошлый
		plannedSlot(day.Add(11*time.Hour), day.Add(12*time.Hour), 1),
	}

	available, unavailable := resolveAvailability(candidates, nil, nil, 1, now)

	require.Len(t, available, 1)
	assert.Empty(t, unavailable, "past slots are omitted, not explained")
	assert.Equal(t, day.Add(11*time.Hour), available[0].StartAt)
}

func TestResolveAvailability_CapacityReached(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := day

	slot := plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 2)
	bookings := []*domain.Booking{
		activeBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour)),
		activeBooking(101, day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}

	available, unavailable := resolveAvailability([]domain.PlannedSlot{slot}, bookings, nil, 1, now)

	assert.Empty(t, available)
	require.Len(t, unavailable, 1)
	assert.Equal(t, domain.ReasonCapacityReached, unavailable[0].Reason)
}

func TestResolveAvailability_CapacityNotReached(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slot := plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 2)
	bookings := []*domain.Booking{
		activeBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}

	available, unavailable := resolveAvailability([]domain.PlannedSlot{slot}, bookings, nil, 1, day)

	require.Len(t, available, 1)
	assert.Empty(t, unavailable)
}

func TestResolveAvailability_CancelledBookingsIgnored(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slot := plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 1)
	cancelled := activeBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour))
	cancelled.Status = domain.StatusCancelledByUser

	available, _ := resolveAvailability([]domain.PlannedSlot{slot}, []*domain.Booking{cancelled}, nil, 1, day)

	assert.Len(t, available, 1, "cancelled bookings release the seat")
}

func TestResolveAvailability_OwnBookingBeatsCapacity(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slot := plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 1)
	bookings := []*domain.Booking{
		activeBooking(1, day.Add(9*time.Hour), day.Add(10*time.Hour)), // своя бронь
		activeBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}

	_, unavailable := resolveAvailability([]domain.PlannedSlot{slot}, bookings, nil, 1, day)

	require.Len(t, unavailable, 1)
	assert.Equal(t, domain.ReasonAlreadyBookedByUser, unavailable[0].Reason,
		"own booking wins over capacity_reached")
}

func TestResolveAvailability_ContainedBookingBlocksLargeCandidate(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Кандидат на полдня поглощает часовую бронь пользователя внутри него
	halfDay := plannedSlot(day.Add(9*time.Hour), day.Add(13*time.Hour), 5)
	bookings := []*domain.Booking{
		activeBooking(1, day.Add(10*time.Hour), day.Add(11*time.Hour)),
	}

	_, unavailable := resolveAvailability([]domain.PlannedSlot{halfDay}, bookings, nil, 1, day)

	require.Len(t, unavailable, 1)
	assert.Equal(t, domain.ReasonAlreadyBookedByUser, unavailable[0].Reason)
}

func TestResolveAvailability_OverlappingButNotContainedIgnored(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slot := plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 1)
	// Бронь пересекает кандидата, но не лежит целиком внутри
	bookings := []*domain.Booking{
		activeBooking(100, day.Add(8*time.Hour), day.Add(10*time.Hour)),
	}

	available, _ := resolveAvailability([]domain.PlannedSlot{slot}, bookings, nil, 1, day)

	assert.Len(t, available, 1, "only fully contained bookings consume the candidate")
}

func TestResolveAvailability_SpaceClosedWinsOverEverything(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slot := plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 1)
	bookings := []*domain.Booking{
		activeBooking(1, day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}
	closures := []*domain.UnavailabilityWindow{
		{StartAt: day.Add(9*time.Hour + 30*time.Minute), EndAt: day.Add(12 * time.Hour)},
	}

	_, unavailable := resolveAvailability([]domain.PlannedSlot{slot}, bookings, closures, 1, day)

	require.Len(t, unavailable, 1)
	assert.Equal(t, domain.ReasonSpaceClosed, unavailable[0].Reason)
}

func TestResolveAvailability_PreservesOrder(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	candidates := []domain.PlannedSlot{
		plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 1),
		plannedSlot(day.Add(10*time.Hour), day.Add(11*time.Hour), 1),
		plannedSlot(day.Add(11*time.Hour), day.Add(12*time.Hour), 1),
	}
	bookings := []*domain.Booking{
		activeBooking(100, day.Add(10*time.Hour), day.Add(11*time.Hour)),
	}

	available, unavailable := resolveAvailability(candidates, bookings, nil, 1, day)

	require.Len(t, available, 2)
	assert.Equal(t, day.Add(9*time.Hour), available[0].StartAt)
	assert.Equal(t, day.Add(11*time.Hour), available[1].StartAt)
	require.Len(t, unavailable, 1)
	assert.Equal(t, day.Add(10*time.Hour), unavailable[0].Slot.StartAt)
}

func TestResolveAvailability_Deterministic(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	candidates := []domain.PlannedSlot{
		plannedSlot(day.Add(9*time.Hour), day.Add(10*time.Hour), 2),
		plannedSlot(day.Add(10*time.Hour), day.Add(11*time.Hour), 2),
	}
	bookings := []*domain.Booking{
		activeBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour)),
		activeBooking(101, day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}

	a1, u1 := resolveAvailability(candidates, bookings, nil, 1, day)
	a2, u2 := resolveAvailability(candidates, bookings, nil, 1, day)

	assert.Equal(t, a1, a2)
	assert.Equal(t, u1, u2)
}
