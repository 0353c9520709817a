package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CWS-BookingService/pkg/types"
)

func TestBookingShape_Validate(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		shape   BookingShape
		wantErr bool
	}{
		{
			name:  "valid one_slot",
			shape: OneSlotShape(date, types.MustTimeOfDay("09:00"), 60),
		},
		{
			name:    "one_slot missing date",
			shape:   OneSlotShape(time.Time{}, types.MustTimeOfDay("09:00"), 60),
			wantErr: true,
		},
		{
			name:    "one_slot duration too short",
			shape:   OneSlotShape(date, types.MustTimeOfDay("09:00"), MinSlotDurationMinutes-1),
			wantErr: true,
		},
		{
			name:    "one_slot duration too long",
			shape:   OneSlotShape(date, types.MustTimeOfDay("09:00"), MaxSlotDurationMinutes+1),
			wantErr: true,
		},
		{
			name:  "valid half_day morning",
			shape: HalfDayShape(date, HalfDayMorning),
		},
		{
			name:    "half_day unknown part",
			shape:   HalfDayShape(date, HalfDayPart("evening")),
			wantErr: true,
		},
		{
			name:  "valid multi_day_range",
			shape: MultiDayRangeShape(date, date.AddDate(0, 0, 5)),
		},
		{
			name:  "multi_day_range single day",
			shape: MultiDayRangeShape(date, date),
		},
		{
			name:    "multi_day_range inverted",
			shape:   MultiDayRangeShape(date.AddDate(0, 0, 5), date),
			wantErr: true,
		},
		{
			name:  "valid explicit_date_set",
			shape: ExplicitDateSetShape([]time.Time{date, date.AddDate(0, 0, 2)}),
		},
		{
			name:    "explicit_date_set empty",
			shape:   ExplicitDateSetShape(nil),
			wantErr: true,
		},
		{
			name:    "unknown kind",
			shape:   BookingShape{Kind: ShapeKind("weekly")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
