package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/CWS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID    = "некорректный ID услуги"
	msgInvalidQuery        = "некорректные параметры запроса"
	msgInvalidShape        = "некорректная форма бронирования"
	msgSlotOutsideSchedule = "выбранное время вне расписания услуги"
	msgHalfDayNotSupported = "бронирование на полдня недоступно для этой услуги"
	msgUnauthorized        = "требуется аутентификация"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-slots
// Query params: spaceId (required), shape (required), и параметры формы:
//   - one_slot:          date, startTime, durationMinutes
//   - half_day:          date, part (morning|afternoon)
//   - multi_day_range:   from, to, slotDurationMinutes (опционально)
//   - explicit_date_set: dates (через запятую), slotDurationMinutes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /services/{id}/available-slots - Missing user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	query, err := parseSlotQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(userID, serviceID)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-slots - Failed to parse shape: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShape)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput),
			errors.Is(err, getAvailableSlots.ErrInvalidShape):
			h.logger.Warn("GET /services/{id}/available-slots - Invalid request: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidShape)

		case errors.Is(err, getAvailableSlots.ErrSlotOutsideSchedule):
			h.logger.Warn("GET /services/{id}/available-slots - Slot outside schedule: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgSlotOutsideSchedule)

		case errors.Is(err, getAvailableSlots.ErrHalfDayNotSupported):
			h.logger.Warn("GET /services/{id}/available-slots - Half-day not supported: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgHalfDayNotSupported)

		default:
			h.logger.Error("GET /services/{id}/available-slots - Failed to get slots: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /services/{id}/available-slots - Slots resolved: service_id=%d, available=%d, unavailable=%d",
		serviceID, len(result.Available), len(result.Unavailable))
	handlers.RespondJSON(w, http.StatusOK, response)
}
