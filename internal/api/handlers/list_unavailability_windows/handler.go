package list_unavailability_windows

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

const (
	msgInvalidSpaceID = "некорректный ID коворкинга"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/unavailability-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/unavailability-windows - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	result, err := h.service.ListUnavailabilityWindows(r.Context(), spaceID)
	if err != nil {
		h.logger.Error("GET /spaces/{id}/unavailability-windows - Failed to list windows: space_id=%d, error=%v", spaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spaces/{id}/unavailability-windows - Windows listed: space_id=%d, count=%d", spaceID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
