package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingConfirmation BookingStatus = "pending_confirmation"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByUser     BookingStatus = "cancelled_by_user"
	StatusCancelledBySpace    BookingStatus = "cancelled_by_space"
	StatusExpired             BookingStatus = "expired"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "payment_pending"
)

// Booking represents a persisted seat reservation
type Booking struct {
	ID        int64
	UserID    int64
	SpaceID   int64
	ServiceID int64
	StartAt   time.Time
	EndAt     time.Time
	Status    BookingStatus

	PaymentStatus   PaymentStatus
	PrepaidCreditID *string // ID предоплаченной карты, если бронь оплачена ею
	RequestCode     string  // код пакетного запроса, создавшего бронь

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies a seat
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledBySpace &&
		b.Status != StatusExpired
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingConfirmation || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking awaits confirmation
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPendingConfirmation
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledBySpace
}

// BulkFailureKind машинный код отказа по отдельному слоту пакетного запроса
type BulkFailureKind string

const (
	BulkFailureSlotTaken       BulkFailureKind = "slot_taken"       // вместимость исчерпана на момент записи
	BulkFailureAlreadyBooked   BulkFailureKind = "already_booked"   // у пользователя уже есть активная бронь в слоте
	BulkFailureOutsideSchedule BulkFailureKind = "outside_schedule" // слот не покрыт ни одним окном доступности
	BulkFailurePastSlot        BulkFailureKind = "past_slot"        // слот закончился к моменту записи
	BulkFailureStoreRejected   BulkFailureKind = "store_rejected"   // хранилище отклонило запись
)

// BulkItemFailure отказ по одному слоту пакетного запроса.
// Index указывает на позицию слота во входном списке вызывающего.
type BulkItemFailure struct {
	Index int
	Kind  BulkFailureKind
}

// ServiceBookingsFilter фильтр для выборки бронирований услуги
type ServiceBookingsFilter struct {
	ServiceID       int64      // Обязательный параметр
	SpaceID         *int64     // Фильтр по площадке (опционально)
	From            *time.Time // Начало периода; выбираются брони, пересекающие период
	To              *time.Time // Конец периода
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отмененные и истекшие брони
}

// SpaceBookingsFilter фильтр для выборки бронирований коворкинга
type SpaceBookingsFilter struct {
	SpaceID         int64      // Обязательный параметр
	ServiceID       *int64     // Фильтр по услуге (опционально)
	From            *time.Time // Начало периода; выбираются брони, пересекающие период
	To              *time.Time // Конец периода
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отмененные и истекшие брони
}
