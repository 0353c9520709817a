package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс справочника окон доступности
type AvailabilityRepository interface {
	// GetByServiceAndRange возвращает окна услуги, чей диапазон действия пересекает [from, to]
	GetByServiceAndRange(ctx context.Context, serviceID int64, from, to time.Time) ([]*domain.AvailabilityWindow, error)
}

// UnavailabilityRepository интерфейс справочника окон недоступности коворкинга
type UnavailabilityRepository interface {
	// GetBySpaceAndRange возвращает окна недоступности площадки, пересекающие [from, to)
	GetBySpaceAndRange(ctx context.Context, spaceID int64, from, to time.Time) ([]*domain.UnavailabilityWindow, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByServiceWithFilter возвращает брони услуги, пересекающие период фильтра
	GetByServiceWithFilter(ctx context.Context, filter domain.ServiceBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
