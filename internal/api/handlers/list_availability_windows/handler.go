package list_availability_windows

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
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

// Handle GET /api/v1/services/{serviceId}/availability-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/availability-windows - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.ListAvailabilityWindows(r.Context(), serviceID)
	if err != nil {
		h.logger.Error("GET /services/{id}/availability-windows - Failed to list windows: service_id=%d, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services/{id}/availability-windows - Windows listed: service_id=%d, count=%d", serviceID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
