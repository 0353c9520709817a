package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (f *fakeAvailabilityRepo) GetByServiceAndRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
	return f.windows, f.err
}

type fakeUnavailabilityRepo struct {
	closures []*domain.UnavailabilityWindow
	err      error
}

func (f *fakeUnavailabilityRepo) GetBySpaceAndRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.UnavailabilityWindow, error) {
	return f.closures, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByServiceWithFilter(_ context.Context, _ domain.ServiceBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	windows []*domain.AvailabilityWindow,
	closures []*domain.UnavailabilityWindow,
	bookings []*domain.Booking,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		&fakeAvailabilityRepo{windows: windows},
		&fakeUnavailabilityRepo{closures: closures},
		&fakeBookingRepo{bookings: bookings},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_MultiDayRange(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("09:00", "11:00"))}

	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		activeBooking(100, day2.Add(9*time.Hour), day2.Add(10*time.Hour)),
		activeBooking(101, day2.Add(9*time.Hour), day2.Add(10*time.Hour)),
	}

	uc := newTestUseCase(windows, nil, bookings, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Shape: domain.MultiDayRangeShape(
			time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		),
	})
	require.NoError(t, err)

	// 2 слота в день, 2 дня; первый слот понедельника занят полностью
	require.Len(t, resp.Available, 3)
	require.Len(t, resp.Unavailable, 1)
	assert.Equal(t, domain.ReasonCapacityReached, resp.Unavailable[0].Reason)
	assert.Equal(t, day2.Add(9*time.Hour), resp.Unavailable[0].Slot.StartAt)
}

func TestExecute_EmptyCandidatesIsNotAnError(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Shape: domain.MultiDayRangeShape(
			time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Available)
	assert.Empty(t, resp.Unavailable)
}

func TestExecute_OneSlotOutsideSchedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "18:00"))}
	uc := newTestUseCase(windows, nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Shape:     domain.OneSlotShape(monday, types.MustTimeOfDay("08:00"), 60),
	})
	assert.ErrorIs(t, err, ErrSlotOutsideSchedule)
}

func TestExecute_SpaceClosure(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "11:00"))}
	closures := []*domain.UnavailabilityWindow{
		{
			SpaceIDs: []int64{5},
			StartAt:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			EndAt:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	uc := newTestUseCase(windows, closures, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Shape:     domain.ExplicitDateSetShape([]time.Time{monday}),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Available)
	require.Len(t, resp.Unavailable, 2)
	for _, slot := range resp.Unavailable {
		assert.Equal(t, domain.ReasonSpaceClosed, slot.Reason)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    0,
		ServiceID: 10,
		SpaceID:   5,
		Shape:     domain.ExplicitDateSetShape([]time.Time{monday}),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Shape:     domain.BookingShape{Kind: domain.ShapeKind("weekly")},
	})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestExecute_DefaultSlotDuration(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "11:00"))}
	uc := newTestUseCase(windows, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Shape:     domain.ExplicitDateSetShape([]time.Time{monday}),
	})
	require.NoError(t, err)

	// Шаг по умолчанию 60 минут: два слота за двухчасовой день
	require.Len(t, resp.Available, 2)
	assert.Equal(t, time.Hour, resp.Available[0].EndAt.Sub(resp.Available[0].StartAt))
}
