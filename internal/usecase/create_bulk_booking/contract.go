package create_bulk_booking

import (
	"context"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/integrations/creditservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateBulk(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
	GetByServiceWithFilter(ctx context.Context, filter domain.ServiceBookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByServiceAndRange(ctx context.Context, serviceID int64, from, to time.Time) ([]*domain.AvailabilityWindow, error)
}

// CreditServiceClient интерфейс клиента для CreditService
type CreditServiceClient interface {
	GetCredit(ctx context.Context, creditID string) (*creditservice.Credit, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
