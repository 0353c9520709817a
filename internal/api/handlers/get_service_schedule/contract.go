package get_service_schedule

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetServiceSchedule(ctx context.Context, req *models.GetServiceScheduleRequest) (*models.ServiceScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
