package list_unavailability_windows

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListUnavailabilityWindows(ctx context.Context, spaceID int64) (*models.UnavailabilityWindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
