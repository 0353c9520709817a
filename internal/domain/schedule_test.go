package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/pkg/types"
)

func interval(start, end string) TimeInterval {
	return TimeInterval{
		Start: types.MustTimeOfDay(start),
		End:   types.MustTimeOfDay(end),
	}
}

func TestTimeInterval_Validate(t *testing.T) {
	assert.NoError(t, interval("09:00", "18:00").Validate())

	err := interval("18:00", "09:00").Validate()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	err = interval("09:00", "09:00").Validate()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestTimeInterval_Contains(t *testing.T) {
	iv := interval("09:00", "13:00")

	assert.True(t, iv.Contains(types.MustTimeOfDay("09:00")), "start is inclusive")
	assert.True(t, iv.Contains(types.MustTimeOfDay("12:59")))
	assert.False(t, iv.Contains(types.MustTimeOfDay("13:00")), "end is exclusive")
	assert.False(t, iv.Contains(types.MustTimeOfDay("08:59")))
}

func TestWeeklySchedule_Validate(t *testing.T) {
	valid := WeeklySchedule{
		time.Monday: {interval("09:00", "13:00"), interval("14:00", "18:00")},
		time.Friday: {interval("10:00", "16:00")},
	}
	assert.NoError(t, valid.Validate())

	overlapping := WeeklySchedule{
		time.Monday: {interval("09:00", "13:00"), interval("12:00", "18:00")},
	}
	assert.ErrorIs(t, overlapping.Validate(), ErrInvalidConfiguration)

	unordered := WeeklySchedule{
		time.Monday: {interval("14:00", "18:00"), interval("09:00", "13:00")},
	}
	assert.ErrorIs(t, unordered.Validate(), ErrInvalidConfiguration)
}

func TestWeeklySchedule_DailyIntervals(t *testing.T) {
	s := WeeklySchedule{
		time.Monday: {interval("09:00", "18:00")},
	}

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	assert.Len(t, s.DailyIntervals(monday), 1)
	assert.Empty(t, s.DailyIntervals(tuesday), "missing weekday means closed")
}

func TestWeeklySchedule_GridBounds(t *testing.T) {
	s := WeeklySchedule{
		time.Monday:  {interval("09:00", "18:00")},
		time.Tuesday: {interval("08:00", "12:00"), interval("13:00", "22:00")},
	}

	earliest := s.EarliestStart()
	require.NotNil(t, earliest)
	assert.Equal(t, "08:00", earliest.String())

	latest := s.LatestEnd()
	require.NotNil(t, latest)
	assert.Equal(t, "22:00", latest.String())

	assert.Equal(t, 9*60, s.MaxIntervalMinutes())

	empty := WeeklySchedule{}
	assert.Nil(t, empty.EarliestStart())
	assert.Nil(t, empty.LatestEnd())
	assert.Equal(t, 0, empty.MaxIntervalMinutes())
}

func TestWeeklySchedule_JSONRoundTrip(t *testing.T) {
	s := WeeklySchedule{
		time.Monday:   {interval("09:00", "13:00"), interval("14:00", "18:00")},
		time.Saturday: {interval("10:00", "14:00")},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"monday":[{"start":"09:00","end":"13:00"},{"start":"14:00","end":"18:00"}],"saturday":[{"start":"10:00","end":"14:00"}]}`,
		string(data))

	var parsed WeeklySchedule
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, s, parsed)
}

func TestWeeklySchedule_UnmarshalUnknownDay(t *testing.T) {
	var parsed WeeklySchedule
	err := json.Unmarshal([]byte(`{"someday":[{"start":"09:00","end":"10:00"}]}`), &parsed)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
