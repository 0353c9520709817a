package create_availability_window

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

// CreateAvailabilityWindowRequest HTTP request model.
// Даты принимаются в формате YYYY-MM-DD.
type CreateAvailabilityWindowRequest struct {
	ValidFrom    string                `json:"validFrom"`
	ValidTo      string                `json:"validTo"`
	Schedule     domain.WeeklySchedule `json:"schedule"`
	SeatCapacity int                   `json:"seatCapacity"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateAvailabilityWindowRequest) ToServiceRequest(serviceID int64) (*models.CreateAvailabilityWindowRequest, error) {
	validFrom, err := time.Parse(domain.DateFormat, r.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid validFrom: %w", err)
	}

	validTo, err := time.Parse(domain.DateFormat, r.ValidTo)
	if err != nil {
		return nil, fmt.Errorf("invalid validTo: %w", err)
	}

	return &models.CreateAvailabilityWindowRequest{
		ServiceID:    serviceID,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		Schedule:     r.Schedule,
		SeatCapacity: r.SeatCapacity,
	}, nil
}
