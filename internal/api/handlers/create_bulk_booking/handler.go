package create_bulk_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	createBulkBooking "github.com/m04kA/CWS-BookingService/internal/usecase/create_bulk_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptySubmission    = "пакет бронирования не содержит ни одного слота"
	msgInsufficientCredit = "недостаточно средств на предоплаченной карте"
	msgCreditNotFound     = "предоплаченная карта не найдена"
	msgInvalidInput       = "некорректные данные запроса"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase CreateBulkBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBulkBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/bulk - Missing user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBulkBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBulkBooking.ErrEmptySubmission):
			h.logger.Warn("POST /bookings/bulk - Empty submission: user_id=%d, service_id=%d", userID, req.ServiceID)
			handlers.RespondBadRequest(w, msgEmptySubmission)

		case errors.Is(err, createBulkBooking.ErrInsufficientCredit):
			h.logger.Warn("POST /bookings/bulk - Insufficient credit: user_id=%d, slots=%d", userID, len(req.Slots))
			handlers.RespondError(w, http.StatusConflict, msgInsufficientCredit)

		case errors.Is(err, createBulkBooking.ErrCreditNotFound):
			h.logger.Warn("POST /bookings/bulk - Credit not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCreditNotFound)

		case errors.Is(err, createBulkBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/bulk - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/bulk - Failed to create bookings: user_id=%d, service_id=%d, error=%v",
				userID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/bulk - Bulk request processed: user_id=%d, request_code=%s, created=%d, failed=%d",
		userID, result.RequestCode, result.CreatedCount, len(result.Failures))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
