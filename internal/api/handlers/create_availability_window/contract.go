package create_availability_window

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateAvailabilityWindow(ctx context.Context, req *models.CreateAvailabilityWindowRequest) (*models.AvailabilityWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
