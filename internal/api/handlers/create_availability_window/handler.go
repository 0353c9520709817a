package create_availability_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule"
)

const (
	msgInvalidServiceID     = "некорректный ID услуги"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidConfiguration = "некорректная конфигурация расписания"
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

// Handle POST /api/v1/services/{serviceId}/availability-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /services/{id}/availability-windows - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req CreateAvailabilityWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/{id}/availability-windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(serviceID)
	if err != nil {
		h.logger.Warn("POST /services/{id}/availability-windows - Invalid dates: service_id=%d, error=%v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	window, err := h.service.CreateAvailabilityWindow(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidConfiguration), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /services/{id}/availability-windows - Invalid configuration: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidConfiguration)

		default:
			h.logger.Error("POST /services/{id}/availability-windows - Failed to create window: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/{id}/availability-windows - Window created: service_id=%d, window_id=%d", serviceID, window.ID)
	handlers.RespondJSON(w, http.StatusCreated, window)
}
