package create_bulk_booking

import (
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Пустой список слотов — отдельная ошибка ErrEmptySubmission: вызывающий
// должен отличать ее от структурно некорректного запроса.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return ErrEmptySubmission
	}

	if len(req.Slots) > domain.MaxBulkSlots {
		return fmt.Errorf("%w: too many slots, max %d", ErrInvalidInput, domain.MaxBulkSlots)
	}

	for i, slot := range req.Slots {
		if !slot.StartAt.Before(slot.EndAt) {
			return fmt.Errorf("%w: slot %d: start must be before end", ErrInvalidInput, i)
		}
	}

	if req.PrepaidCreditID != nil && *req.PrepaidCreditID == "" {
		return fmt.Errorf("%w: prepaidCreditID must not be empty", ErrInvalidInput)
	}

	return nil
}
