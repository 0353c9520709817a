package create_unavailability_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidConfiguration = "некорректное окно недоступности"
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

// Handle POST /api/v1/unavailability-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUnavailabilityWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /unavailability-windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	window, err := h.service.CreateUnavailabilityWindow(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidConfiguration), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /unavailability-windows - Invalid configuration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfiguration)

		default:
			h.logger.Error("POST /unavailability-windows - Failed to create window: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /unavailability-windows - Window created: id=%d, spaces=%v", window.ID, window.SpaceIDs)
	handlers.RespondJSON(w, http.StatusCreated, window)
}
