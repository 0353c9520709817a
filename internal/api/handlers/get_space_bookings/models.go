package get_space_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

// parseSpaceBookingsQuery извлекает фильтры из query параметров.
// Параметры from/to принимаются в формате YYYY-MM-DD; верхняя граница
// исключающая, поэтому to сдвигается на следующий день.
func parseSpaceBookingsQuery(spaceID int64, values map[string][]string) (*models.GetSpaceBookingsRequest, error) {
	get := func(key string) string {
		if v, ok := values[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	req := &models.GetSpaceBookingsRequest{SpaceID: spaceID}

	if serviceIDStr := get("serviceId"); serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid serviceId: %w", err)
		}
		req.ServiceID = &serviceID
	}

	if fromStr := get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.From = &from
	}

	if toStr := get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		toExclusive := to.AddDate(0, 0, 1)
		req.To = &toExclusive
	}

	if status := get("status"); status != "" {
		req.Status = &status
	}

	if includeInactiveStr := get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
