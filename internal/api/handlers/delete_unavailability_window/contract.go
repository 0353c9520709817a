package delete_unavailability_window

import (
	"context"
)

type ScheduleService interface {
	DeleteUnavailabilityWindow(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
