package create_unavailability_window

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateUnavailabilityWindow(ctx context.Context, req *models.CreateUnavailabilityWindowRequest) (*models.UnavailabilityWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
