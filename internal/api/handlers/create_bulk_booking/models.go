package create_bulk_booking

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	createBulkBooking "github.com/m04kA/CWS-BookingService/internal/usecase/create_bulk_booking"
)

// SlotRequest один слот пакетного запроса
type SlotRequest struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// CreateBulkBookingRequest HTTP request model
type CreateBulkBookingRequest struct {
	ServiceID       int64         `json:"serviceId"`
	SpaceID         int64         `json:"spaceId"`
	Slots           []SlotRequest `json:"slots"`
	PrepaidCreditID *string       `json:"prepaidCreditId,omitempty"`
	Notes           *string       `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBulkBookingRequest) ToUseCaseRequest(userID int64) *createBulkBooking.Request {
	slots := make([]domain.BookingSlot, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = domain.BookingSlot{StartAt: s.StartAt, EndAt: s.EndAt}
	}

	return &createBulkBooking.Request{
		UserID:          userID,
		ServiceID:       r.ServiceID,
		SpaceID:         r.SpaceID,
		Slots:           slots,
		PrepaidCreditID: r.PrepaidCreditID,
		Notes:           r.Notes,
	}
}

// CreatedBookingResponse краткие данные созданной брони
type CreatedBookingResponse struct {
	ID            int64     `json:"id"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
}

// ItemFailureResponse отказ по одному слоту пакета
type ItemFailureResponse struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
}

// BulkBookingResponse HTTP response model
type BulkBookingResponse struct {
	RequestCode  string                   `json:"requestCode"`
	CreatedCount int                      `json:"createdCount"`
	Created      []CreatedBookingResponse `json:"created"`
	Failures     []ItemFailureResponse    `json:"failures"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBulkBooking.Response) *BulkBookingResponse {
	created := make([]CreatedBookingResponse, len(resp.Created))
	for i, b := range resp.Created {
		created[i] = CreatedBookingResponse{
			ID:            b.ID,
			StartAt:       b.StartAt,
			EndAt:         b.EndAt,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
		}
	}

	failures := make([]ItemFailureResponse, len(resp.Failures))
	for i, f := range resp.Failures {
		failures[i] = ItemFailureResponse{
			Index: f.Index,
			Kind:  string(f.Kind),
		}
	}

	return &BulkBookingResponse{
		RequestCode:  resp.RequestCode,
		CreatedCount: resp.CreatedCount,
		Created:      created,
		Failures:     failures,
	}
}
