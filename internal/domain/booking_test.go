package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		active       bool
		cancellable  bool
		confirmable  bool
		cancelled    bool
	}{
		{StatusPendingConfirmation, true, true, true, false},
		{StatusConfirmed, true, true, false, false},
		{StatusCompleted, true, false, false, false},
		{StatusCancelledByUser, false, false, false, true},
		{StatusCancelledBySpace, false, false, false, true},
		{StatusExpired, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.confirmable, b.CanBeConfirmed())
			assert.Equal(t, tt.cancelled, b.IsCancelled())
		})
	}
}
