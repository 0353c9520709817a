package create_bulk_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/integrations/creditservice"
	"github.com/m04kA/CWS-BookingService/pkg/ptr"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings    []*domain.Booking
	createCalls int
	created     []*domain.Booking
	filterCalls int
}

func (f *fakeBookingRepo) CreateBulk(_ context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	f.createCalls++
	for i, b := range bookings {
		b.ID = int64(i + 1)
	}
	f.created = append(f.created, bookings...)
	return bookings, nil
}

func (f *fakeBookingRepo) GetByServiceWithFilter(_ context.Context, _ domain.ServiceBookingsFilter) ([]*domain.Booking, error) {
	f.filterCalls++
	return f.bookings, nil
}

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	calls   int
}

func (f *fakeAvailabilityRepo) GetByServiceAndRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
	f.calls++
	return f.windows, nil
}

type fakeCreditClient struct {
	credit *creditservice.Credit
	err    error
	calls  int
}

func (f *fakeCreditClient) GetCredit(_ context.Context, _ string) (*creditservice.Credit, error) {
	f.calls++
	return f.credit, f.err
}

// fakeTxManager выполняет функцию синхронно без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func workweekWindow(capacity int) *domain.AvailabilityWindow {
	iv := domain.TimeInterval{
		Start: types.MustTimeOfDay("09:00"),
		End:   types.MustTimeOfDay("18:00"),
	}
	return &domain.AvailabilityWindow{
		ID:        1,
		ServiceID: 10,
		ValidFrom: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Schedule: domain.WeeklySchedule{
			time.Monday:    {iv},
			time.Tuesday:   {iv},
			time.Wednesday: {iv},
			time.Thursday:  {iv},
			time.Friday:    {iv},
		},
		SeatCapacity: capacity,
	}
}

func slotAt(day, hour int) domain.BookingSlot {
	return domain.BookingSlot{
		StartAt: time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, day, hour+1, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	availabilityRepo *fakeAvailabilityRepo,
	creditClient *fakeCreditClient,
) *UseCase {
	uc := NewUseCase(bookingRepo, availabilityRepo, creditClient, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func TestExecute_CreatesAllSlots(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{workweekWindow(2)}}, &fakeCreditClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Slots:     []domain.BookingSlot{slotAt(2, 9), slotAt(2, 10), slotAt(3, 9)},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.CreatedCount)
	assert.Empty(t, resp.Failures)
	assert.NotEmpty(t, resp.RequestCode)
	require.Len(t, bookingRepo.created, 3)

	for _, b := range bookingRepo.created {
		assert.Equal(t, domain.StatusPendingConfirmation, b.Status)
		assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
		assert.Equal(t, resp.RequestCode, b.RequestCode, "all bookings share the request code")
	}
}

func TestExecute_EmptySubmission(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeAvailabilityRepo{}, &fakeCreditClient{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Slots:     nil,
	})
	assert.ErrorIs(t, err, ErrEmptySubmission)
	assert.Zero(t, bookingRepo.filterCalls)
}

func TestExecute_InsufficientCreditBeforeAnyStoreCall(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	availabilityRepo := &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{workweekWindow(2)}}
	creditClient := &fakeCreditClient{
		credit: &creditservice.Credit{ID: "c-1", UserID: 1, RemainingBalance: 2},
	}
	uc := newTestUseCase(bookingRepo, availabilityRepo, creditClient)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		ServiceID:       10,
		SpaceID:         5,
		Slots:           []domain.BookingSlot{slotAt(2, 9), slotAt(2, 10), slotAt(2, 11)},
		PrepaidCreditID: ptr.Ptr("c-1"),
	})

	assert.ErrorIs(t, err, ErrInsufficientCredit)
	assert.Equal(t, 1, creditClient.calls)
	assert.Zero(t, availabilityRepo.calls, "precondition fails before touching the store")
	assert.Zero(t, bookingRepo.filterCalls)
	assert.Zero(t, bookingRepo.createCalls)
}

func TestExecute_SufficientCreditMarksPaid(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	creditClient := &fakeCreditClient{
		credit: &creditservice.Credit{ID: "c-1", UserID: 1, RemainingBalance: 5},
	}
	uc := newTestUseCase(bookingRepo, &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{workweekWindow(2)}}, creditClient)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		ServiceID:       10,
		SpaceID:         5,
		Slots:           []domain.BookingSlot{slotAt(2, 9), slotAt(2, 10)},
		PrepaidCreditID: ptr.Ptr("c-1"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CreatedCount)
	for _, b := range bookingRepo.created {
		assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
		require.NotNil(t, b.PrepaidCreditID)
		assert.Equal(t, "c-1", *b.PrepaidCreditID)
	}
}

func TestExecute_CreditNotFound(t *testing.T) {
	creditClient := &fakeCreditClient{err: creditservice.ErrCreditNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, creditClient)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:          1,
		ServiceID:       10,
		SpaceID:         5,
		Slots:           []domain.BookingSlot{slotAt(2, 9)},
		PrepaidCreditID: ptr.Ptr("missing"),
	})
	assert.ErrorIs(t, err, ErrCreditNotFound)
}

func TestExecute_PartialFailures(t *testing.T) {
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				UserID:  100,
				StartAt: day2.Add(9 * time.Hour),
				EndAt:   day2.Add(10 * time.Hour),
				Status:  domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{workweekWindow(1)}}, &fakeCreditClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Slots: []domain.BookingSlot{
			slotAt(2, 9),  // занят чужой бронью при вместимости 1
			slotAt(2, 10), // свободен
			{ // вне диапазона окон доступности
				StartAt: time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC),
				EndAt:   time.Date(2026, 4, 6, 10, 0, 0, 0, time.UTC),
			},
		},
	})
	require.NoError(t, err, "per-slot rejections are data, not errors")

	assert.Equal(t, 1, resp.CreatedCount)
	require.Len(t, resp.Failures, 2)

	assert.Equal(t, 0, resp.Failures[0].Index)
	assert.Equal(t, domain.BulkFailureSlotTaken, resp.Failures[0].Kind)
	assert.Equal(t, 2, resp.Failures[1].Index)
	assert.Equal(t, domain.BulkFailureOutsideSchedule, resp.Failures[1].Kind)
}

func TestExecute_OwnBookingRejectedAsAlreadyBooked(t *testing.T) {
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				UserID:  1,
				StartAt: day2.Add(9 * time.Hour),
				EndAt:   day2.Add(10 * time.Hour),
				Status:  domain.StatusPendingConfirmation,
			},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{workweekWindow(5)}}, &fakeCreditClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Slots:     []domain.BookingSlot{slotAt(2, 9)},
	})
	require.NoError(t, err)

	assert.Zero(t, resp.CreatedCount)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, domain.BulkFailureAlreadyBooked, resp.Failures[0].Kind)
}

func TestExecute_DuplicateSlotWithinBatch(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{workweekWindow(5)}}, &fakeCreditClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Slots:     []domain.BookingSlot{slotAt(2, 9), slotAt(2, 9)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CreatedCount)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, 1, resp.Failures[0].Index)
	assert.Equal(t, domain.BulkFailureAlreadyBooked, resp.Failures[0].Kind, "duplicates conflict with the batch itself")
}

func TestExecute_PastSlotRejected(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{workweekWindow(5)}}, &fakeCreditClient{})

	past := domain.BookingSlot{
		StartAt: testNow.Add(-2 * time.Hour),
		EndAt:   testNow.Add(-time.Hour),
	}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Slots:     []domain.BookingSlot{past},
	})
	require.NoError(t, err)

	assert.Zero(t, resp.CreatedCount)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, domain.BulkFailurePastSlot, resp.Failures[0].Kind)
	assert.Zero(t, bookingRepo.createCalls, "nothing to persist when every slot fails")
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fakeCreditClient{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    0,
		ServiceID: 10,
		SpaceID:   5,
		Slots:     []domain.BookingSlot{slotAt(2, 9)},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	inverted := domain.BookingSlot{
		StartAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	_, err = uc.Execute(context.Background(), &Request{
		UserID:    1,
		ServiceID: 10,
		SpaceID:   5,
		Slots:     []domain.BookingSlot{inverted},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
