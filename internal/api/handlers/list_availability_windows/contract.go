package list_availability_windows

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListAvailabilityWindows(ctx context.Context, serviceID int64) (*models.AvailabilityWindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
