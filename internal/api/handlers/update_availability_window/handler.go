package update_availability_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule"
)

const (
	msgInvalidWindowID      = "некорректный ID окна доступности"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidConfiguration = "некорректная конфигурация расписания"
	msgWindowNotFound       = "окно доступности не найдено"
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

// Handle PUT /api/v1/availability-windows/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	windowID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /availability-windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	var req UpdateAvailabilityWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability-windows/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /availability-windows/{id} - Invalid dates: id=%d, error=%v", windowID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	window, err := h.service.UpdateAvailabilityWindow(r.Context(), windowID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWindowNotFound):
			h.logger.Warn("PUT /availability-windows/{id} - Window not found: id=%d", windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, schedule.ErrInvalidConfiguration), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /availability-windows/{id} - Invalid configuration: id=%d, error=%v", windowID, err)
			handlers.RespondBadRequest(w, msgInvalidConfiguration)

		default:
			h.logger.Error("PUT /availability-windows/{id} - Failed to update window: id=%d, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability-windows/{id} - Window updated: id=%d", windowID)
	handlers.RespondJSON(w, http.StatusOK, window)
}
