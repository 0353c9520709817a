package get_space_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings"
)

const (
	msgInvalidSpaceID = "некорректный ID коворкинга"
	msgInvalidQuery   = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/bookings
// Query params: serviceId, from, to, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/bookings - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	req, err := parseSpaceBookingsQuery(spaceID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/bookings - Invalid query: space_id=%d, error=%v", spaceID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetSpaceBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/bookings - Invalid filter: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /spaces/{id}/bookings - Failed to get bookings: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id}/bookings - Bookings fetched: space_id=%d, count=%d", spaceID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
