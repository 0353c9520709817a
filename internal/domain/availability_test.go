package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() *AvailabilityWindow {
	return &AvailabilityWindow{
		ID:        1,
		ServiceID: 10,
		ValidFrom: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Schedule: WeeklySchedule{
			time.Monday: {interval("09:00", "13:00"), interval("14:00", "18:00")},
			time.Friday: {interval("10:00", "16:00")},
		},
		SeatCapacity: 3,
	}
}

func TestAvailabilityWindow_Validate(t *testing.T) {
	assert.NoError(t, testWindow().Validate())

	w := testWindow()
	w.ValidFrom, w.ValidTo = w.ValidTo, w.ValidFrom
	assert.ErrorIs(t, w.Validate(), ErrInvalidConfiguration)

	w = testWindow()
	w.SeatCapacity = 0
	assert.ErrorIs(t, w.Validate(), ErrInvalidConfiguration)

	w = testWindow()
	w.SeatCapacity = MaxSeatCapacity + 1
	assert.ErrorIs(t, w.Validate(), ErrInvalidConfiguration)

	w = testWindow()
	w.Schedule = WeeklySchedule{time.Monday: {interval("18:00", "09:00")}}
	assert.ErrorIs(t, w.Validate(), ErrInvalidConfiguration)
}

func TestAvailabilityWindow_CoversDate(t *testing.T) {
	w := testWindow()

	assert.True(t, w.CoversDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), "validFrom is inclusive")
	assert.True(t, w.CoversDate(time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)), "validTo is inclusive, time of day ignored")
	assert.False(t, w.CoversDate(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.CoversDate(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestAvailabilityWindow_DailyIntervals(t *testing.T) {
	w := testWindow()

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	outside := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC) // Monday, but out of range

	assert.Len(t, w.DailyIntervals(monday), 2)
	assert.Empty(t, w.DailyIntervals(tuesday))
	assert.Empty(t, w.DailyIntervals(outside))
}

func TestAvailabilityWindow_DayBounds(t *testing.T) {
	w := testWindow()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	start := w.StartOfDay(monday)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), *start)

	end := w.EndOfDay(monday)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), *end)

	tuesday := monday.AddDate(0, 0, 1)
	assert.Nil(t, w.StartOfDay(tuesday))
	assert.Nil(t, w.EndOfDay(tuesday))
}

func TestAvailabilityWindow_ContainsInstant(t *testing.T) {
	w := testWindow()

	assert.True(t, w.ContainsInstant(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	assert.True(t, w.ContainsInstant(time.Date(2026, 3, 2, 12, 59, 0, 0, time.UTC)))
	assert.False(t, w.ContainsInstant(time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)), "gap between intervals")
	assert.True(t, w.ContainsInstant(time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)))
	assert.False(t, w.ContainsInstant(time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)), "closing time is exclusive")
}

func TestAvailabilityWindow_GenerateSlots(t *testing.T) {
	w := testWindow()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := w.GenerateSlots(monday, 60)
	// 09-13 дает 4 слота, 14-18 дает 4 слота
	require.Len(t, slots, 8)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), slots[0].StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), slots[0].EndAt)
	assert.Equal(t, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), slots[4].StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), slots[7].StartAt)
}

func TestAvailabilityWindow_GenerateSlots_PartialTail(t *testing.T) {
	w := testWindow()
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC) // 10:00-16:00

	slots := w.GenerateSlots(friday, 90)
	// 10:00, 11:30, 13:00, 14:30; хвост 16:00+90 не влезает
	require.Len(t, slots, 4)
	assert.Equal(t, time.Date(2026, 3, 6, 14, 30, 0, 0, time.UTC), slots[3].StartAt)
	assert.Equal(t, time.Date(2026, 3, 6, 16, 0, 0, 0, time.UTC), slots[3].EndAt)
}

func TestAvailabilityWindow_GenerateSlots_Empty(t *testing.T) {
	w := testWindow()
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, w.GenerateSlots(tuesday, 60), "closed day yields no slots")
	assert.Empty(t, w.GenerateSlots(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 0), "non-positive step yields no slots")
}
