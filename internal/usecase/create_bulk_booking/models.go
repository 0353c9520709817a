package create_bulk_booking

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// Request модель пакетного запроса на создание бронирований.
// Слоты приходят из расчета доступности; хранилище остается последним
// арбитром вместимости, поэтому каждый слот перепроверяется при записи.
type Request struct {
	UserID          int64                // ID пользователя-владельца броней
	ServiceID       int64                // ID услуги
	SpaceID         int64                // ID коворкинга
	Slots           []domain.BookingSlot // Слоты к созданию, в порядке вызывающего
	PrepaidCreditID *string              // ID предоплаченной карты (опционально)
	Notes           *string              // Заметки, общие для всех броней (опционально)
}

// CreatedBooking краткие данные созданной брони
type CreatedBooking struct {
	ID            int64
	StartAt       time.Time
	EndAt         time.Time
	Status        string
	PaymentStatus string
}

// Response результат пакетного запроса: сколько создано и какие слоты
// отклонены. Частичный отказ — ожидаемый исход, а не ошибка.
type Response struct {
	RequestCode  string // Код запроса, общий для всех созданных броней
	CreatedCount int
	Created      []CreatedBooking
	Failures     []domain.BulkItemFailure
}
