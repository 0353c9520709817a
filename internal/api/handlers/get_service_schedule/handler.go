package get_service_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidQuery     = "некорректные параметры запроса"
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

// Handle GET /api/v1/services/{serviceId}/schedule
// Query params: from, to (обязательны, формат YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/schedule - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /services/{id}/schedule - Invalid from: service_id=%d, error=%v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /services/{id}/schedule - Invalid to: service_id=%d, error=%v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetServiceSchedule(r.Context(), &models.GetServiceScheduleRequest{
		ServiceID: serviceID,
		From:      from,
		To:        to,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/schedule - Invalid request: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /services/{id}/schedule - Failed to get schedule: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/schedule - Schedule fetched: service_id=%d, days=%d", serviceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
