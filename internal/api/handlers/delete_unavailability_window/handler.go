package delete_unavailability_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule"
)

const (
	msgInvalidWindowID = "некорректный ID окна недоступности"
	msgWindowNotFound  = "окно недоступности не найдено"
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

// Handle DELETE /api/v1/unavailability-windows/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	windowID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /unavailability-windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.DeleteUnavailabilityWindow(r.Context(), windowID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrWindowNotFound):
			h.logger.Warn("DELETE /unavailability-windows/{id} - Window not found: id=%d", windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		default:
			h.logger.Error("DELETE /unavailability-windows/{id} - Failed to delete window: id=%d, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /unavailability-windows/{id} - Window deleted: id=%d", windowID)
	w.WriteHeader(http.StatusNoContent)
}
