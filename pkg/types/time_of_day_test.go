package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		hour    int
		minute  int
	}{
		{name: "valid morning", input: "09:30", hour: 9, minute: 30},
		{name: "midnight", input: "00:00", hour: 0, minute: 0},
		{name: "last minute", input: "23:59", hour: 23, minute: 59},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, got.Hour())
			assert.Equal(t, tt.minute, got.Minute())
		})
	}
}

func TestNewTimeOfDay_Range(t *testing.T) {
	_, err := NewTimeOfDay(25, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewTimeOfDay(12, 60)
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err := NewTimeOfDay(12, 45)
	require.NoError(t, err)
	assert.Equal(t, "12:45", got.String())
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	base := MustTimeOfDay("09:00")

	end, err := base.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", end.String())

	back, err := end.AddMinutes(-90)
	require.NoError(t, err)
	assert.True(t, back.Equal(base))

	// Выход за пределы суток — ошибка, а не перенос на следующий день
	_, err = MustTimeOfDay("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = MustTimeOfDay("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeOfDay_Ordering(t *testing.T) {
	early := MustTimeOfDay("08:00")
	late := MustTimeOfDay("17:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.True(t, early.Equal(MustTimeOfDay("08:00")))
}

func TestTimeOfDay_At(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	instant := MustTimeOfDay("14:30").At(date)

	assert.Equal(t, time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC), instant)
}

func TestTimeOfDay_JSON(t *testing.T) {
	data, err := json.Marshal(MustTimeOfDay("07:05"))
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"18:45"`), &parsed))
	assert.Equal(t, "18:45", parsed.String())

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan("10:15"))
	assert.Equal(t, "10:15", tod.String())

	// Колонки типа TIME приходят с секундами
	require.NoError(t, tod.Scan("10:15:00"))
	assert.Equal(t, "10:15", tod.String())

	require.NoError(t, tod.Scan(time.Date(2026, 1, 1, 6, 20, 0, 0, time.UTC)))
	assert.Equal(t, "06:20", tod.String())

	require.NoError(t, tod.Scan(nil))
	assert.True(t, tod.IsZero())
}
