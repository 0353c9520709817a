package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// Понедельник внутри диапазона тестового окна
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func window(id int64, validFrom, validTo time.Time, capacity int, schedule domain.WeeklySchedule) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:           id,
		ServiceID:    10,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		Schedule:     schedule,
		SeatCapacity: capacity,
	}
}

func workweekSchedule(start, end string) domain.WeeklySchedule {
	iv := domain.TimeInterval{Start: types.MustTimeOfDay(start), End: types.MustTimeOfDay(end)}
	return domain.WeeklySchedule{
		time.Monday:    {iv},
		time.Tuesday:   {iv},
		time.Wednesday: {iv},
		time.Thursday:  {iv},
		time.Friday:    {iv},
	}
}

func marchWindow(capacity int, schedule domain.WeeklySchedule) *domain.AvailabilityWindow {
	return window(1,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		capacity, schedule)
}

func TestPlanOneSlot_Fits(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(3, workweekSchedule("09:00", "18:00"))}
	shape := domain.OneSlotShape(monday, types.MustTimeOfDay("10:00"), 60)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), candidates[0].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), candidates[0].Slot.EndAt)
	assert.Equal(t, 3, candidates[0].SeatCapacity)
}

func TestPlanOneSlot_EndMatchesClosing(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "18:00"))}
	shape := domain.OneSlotShape(monday, types.MustTimeOfDay("17:00"), 60)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), candidates[0].Slot.EndAt)
}

func TestPlanOneSlot_SpillsPastClosing(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "18:00"))}
	shape := domain.OneSlotShape(monday, types.MustTimeOfDay("17:30"), 60)

	_, err := planSlots(shape, windows, 0)
	assert.ErrorIs(t, err, ErrSlotOutsideSchedule)
}

func TestPlanOneSlot_StartOutsideSchedule(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "18:00"))}
	shape := domain.OneSlotShape(monday, types.MustTimeOfDay("08:00"), 60)

	_, err := planSlots(shape, windows, 0)
	assert.ErrorIs(t, err, ErrSlotOutsideSchedule)
}

func TestPlanOneSlot_NoCoveringWindow(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "18:00"))}
	outside := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	shape := domain.OneSlotShape(outside, types.MustTimeOfDay("10:00"), 60)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	assert.Empty(t, candidates, "date outside every window is an empty result, not an error")
}

func TestPlanHalfDay_Morning(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("09:00", "18:00"))}
	shape := domain.HalfDayShape(monday, domain.HalfDayMorning)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	// Утро: от открытия ровно 4 часа, укладывается до 13:00
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), candidates[0].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC), candidates[0].Slot.EndAt)
}

func TestPlanHalfDay_MorningCrossesMidday(t *testing.T) {
	// Открытие в 10:00 — утренние полдня заходили бы за 13:00
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("10:00", "18:00"))}
	shape := domain.HalfDayShape(monday, domain.HalfDayMorning)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestPlanHalfDay_Afternoon(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("09:00", "18:00"))}
	shape := domain.HalfDayShape(monday, domain.HalfDayAfternoon)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	// Послеобеденные полдня: 4 часа до закрытия
	assert.Equal(t, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), candidates[0].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), candidates[0].Slot.EndAt)
}

func TestPlanHalfDay_AfternoonStartsAtMidday(t *testing.T) {
	// Закрытие в 17:00: послеобеденные полдня начинаются ровно в 13:00
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("09:00", "17:00"))}
	shape := domain.HalfDayShape(monday, domain.HalfDayAfternoon)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC), candidates[0].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), candidates[0].Slot.EndAt)
}

func TestPlanHalfDay_AfternoonCrossesMidday(t *testing.T) {
	// Закрытие в 16:00: начало полдня пришлось бы на 12:00, раньше границы
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("09:00", "16:00"))}
	shape := domain.HalfDayShape(monday, domain.HalfDayAfternoon)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestPlanHalfDay_NotSupported(t *testing.T) {
	// Ни один интервал недели не вмещает 4 часа
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("09:00", "12:00"))}
	shape := domain.HalfDayShape(monday, domain.HalfDayMorning)

	_, err := planSlots(shape, windows, 0)
	assert.ErrorIs(t, err, ErrHalfDayNotSupported)
}

func TestPlanHalfDay_ClosedDay(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(2, workweekSchedule("09:00", "18:00"))}
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	shape := domain.HalfDayShape(sunday, domain.HalfDayMorning)

	candidates, err := planSlots(shape, windows, 0)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestPlanMultiDayRange_SkipsClosedDays(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "11:00"))}
	// Пятница 6-е .. понедельник 9-е: суббота и воскресенье закрыты
	shape := domain.MultiDayRangeShape(
		time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	)

	candidates, err := planSlots(shape, windows, 60)
	require.NoError(t, err)
	require.Len(t, candidates, 4)

	assert.Equal(t, time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC), candidates[0].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC), candidates[1].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), candidates[2].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC), candidates[3].Slot.StartAt)
}

func TestPlanExplicitDateSet_PreservesCallerOrder(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "10:00"))}
	shape := domain.ExplicitDateSetShape([]time.Time{
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	})

	candidates, err := planSlots(shape, windows, 60)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Порядок дат задает вызывающая сторона
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), candidates[0].Slot.StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), candidates[1].Slot.StartAt)
}

func TestPlanExplicitDateSet_DedupesRepeatedDates(t *testing.T) {
	windows := []*domain.AvailabilityWindow{marchWindow(1, workweekSchedule("09:00", "10:00"))}
	shape := domain.ExplicitDateSetShape([]time.Time{monday, monday})

	candidates, err := planSlots(shape, windows, 60)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestCoveringWindow_LatestValidFromWins(t *testing.T) {
	older := window(1,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		1, workweekSchedule("09:00", "10:00"))
	newer := window(2,
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		5, workweekSchedule("09:00", "12:00"))

	selected := coveringWindow([]*domain.AvailabilityWindow{older, newer}, monday)
	require.NotNil(t, selected)
	assert.Equal(t, int64(2), selected.ID)

	// Дата до начала нового окна покрывается старым
	selected = coveringWindow([]*domain.AvailabilityWindow{older, newer},
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, selected)
	assert.Equal(t, int64(1), selected.ID)
}

func TestPlanSlots_UnknownShape(t *testing.T) {
	_, err := planSlots(domain.BookingShape{Kind: domain.ShapeKind("weekly")}, nil, 60)
	assert.ErrorIs(t, err, ErrInvalidShape)
}
