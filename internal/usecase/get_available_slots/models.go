package get_available_slots

import (
	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// Request модель запроса на расчет доступных слотов
type Request struct {
	UserID              int64               // ID пользователя (для правила повторного бронирования)
	ServiceID           int64               // ID услуги
	SpaceID             int64               // ID коворкинга, которому принадлежит услуга
	Shape               domain.BookingShape // Форма бронирования
	SlotDurationMinutes int                 // Шаг нарезки слотов; 0 = значение по умолчанию
}

// Response модель ответа: разбиение кандидатов на доступные и недоступные
type Response struct {
	ServiceID   int64
	SpaceID     int64
	Available   []domain.BookingSlot
	Unavailable []domain.UnavailableSlot
}
