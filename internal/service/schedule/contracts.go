package schedule

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	Update(ctx context.Context, window *domain.AvailabilityWindow) error
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	GetByServiceAndRange(ctx context.Context, serviceID int64, from, to time.Time) ([]*domain.AvailabilityWindow, error)
	ListByService(ctx context.Context, serviceID int64) ([]*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	Create(ctx context.Context, window *domain.UnavailabilityWindow) (*domain.UnavailabilityWindow, error)
	ListBySpace(ctx context.Context, spaceID int64) ([]*domain.UnavailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
