package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnavailabilityWindow_Validate(t *testing.T) {
	valid := &UnavailabilityWindow{
		Label:    "holiday",
		SpaceIDs: []int64{1, 2},
		StartAt:  time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, valid.Validate())

	inverted := *valid
	inverted.StartAt, inverted.EndAt = inverted.EndAt, inverted.StartAt
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidConfiguration)

	noSpaces := *valid
	noSpaces.SpaceIDs = nil
	assert.ErrorIs(t, noSpaces.Validate(), ErrInvalidConfiguration)

	longLabel := *valid
	longLabel.Label = strings.Repeat("x", MaxUnavailabilityLabelLen+1)
	assert.ErrorIs(t, longLabel.Validate(), ErrInvalidConfiguration)
}

func TestUnavailabilityWindow_Overlaps(t *testing.T) {
	w := &UnavailabilityWindow{
		StartAt: time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC),
	}

	day := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	assert.True(t, w.Overlaps(day.Add(9*time.Hour), day.Add(11*time.Hour)))
	assert.True(t, w.Overlaps(day.Add(13*time.Hour), day.Add(15*time.Hour)))
	assert.True(t, w.Overlaps(day.Add(11*time.Hour), day.Add(12*time.Hour)), "contained interval")
	assert.False(t, w.Overlaps(day.Add(8*time.Hour), day.Add(10*time.Hour)), "touching start does not overlap")
	assert.False(t, w.Overlaps(day.Add(14*time.Hour), day.Add(16*time.Hour)), "touching end does not overlap")
}

func TestUnavailabilityWindow_ContainsInstant(t *testing.T) {
	w := &UnavailabilityWindow{
		StartAt: time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.ContainsInstant(w.StartAt))
	assert.False(t, w.ContainsInstant(w.EndAt))
	assert.True(t, w.ContainsInstant(w.StartAt.Add(time.Hour)))
}
