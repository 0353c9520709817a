package update_availability_window

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateAvailabilityWindow(ctx context.Context, id int64, req *models.UpdateAvailabilityWindowRequest) (*models.AvailabilityWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
