package get_available_slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/CWS-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// slotQuery разобранные query параметры запроса доступных слотов
type slotQuery struct {
	SpaceID             int64
	Shape               string
	Date                string
	StartTime           string
	DurationMinutes     int
	Part                string
	From                string
	To                  string
	Dates               string
	SlotDurationMinutes int
}

// ToUseCaseRequest собирает запрос use case из query параметров.
// Форма определяет, какие параметры обязательны.
func (q *slotQuery) ToUseCaseRequest(userID, serviceID int64) (*getAvailableSlots.Request, error) {
	var shape domain.BookingShape

	switch domain.ShapeKind(q.Shape) {
	case domain.ShapeOneSlot:
		date, err := time.Parse(domain.DateFormat, q.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		startTime, err := types.ParseTimeOfDay(q.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid startTime: %w", err)
		}
		shape = domain.OneSlotShape(date, startTime, q.DurationMinutes)

	case domain.ShapeHalfDay:
		date, err := time.Parse(domain.DateFormat, q.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		shape = domain.HalfDayShape(date, domain.HalfDayPart(q.Part))

	case domain.ShapeMultiDayRange:
		from, err := time.Parse(domain.DateFormat, q.From)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		to, err := time.Parse(domain.DateFormat, q.To)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		shape = domain.MultiDayRangeShape(from, to)

	case domain.ShapeExplicitDateSet:
		parts := strings.Split(q.Dates, ",")
		dates := make([]time.Time, 0, len(parts))
		for _, p := range parts {
			date, err := time.Parse(domain.DateFormat, strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid dates entry %q: %w", p, err)
			}
			dates = append(dates, date)
		}
		shape = domain.ExplicitDateSetShape(dates)

	default:
		return nil, fmt.Errorf("unknown shape %q", q.Shape)
	}

	return &getAvailableSlots.Request{
		UserID:              userID,
		ServiceID:           serviceID,
		SpaceID:             q.SpaceID,
		Shape:               shape,
		SlotDurationMinutes: q.SlotDurationMinutes,
	}, nil
}

// parseSlotQuery извлекает query параметры запроса
func parseSlotQuery(values map[string][]string) (*slotQuery, error) {
	get := func(key string) string {
		if v, ok := values[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	q := &slotQuery{
		Shape:     get("shape"),
		Date:      get("date"),
		StartTime: get("startTime"),
		Part:      get("part"),
		From:      get("from"),
		To:        get("to"),
		Dates:     get("dates"),
	}

	spaceIDStr := get("spaceId")
	if spaceIDStr == "" {
		return nil, fmt.Errorf("spaceId is required")
	}
	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid spaceId: %w", err)
	}
	q.SpaceID = spaceID

	if durStr := get("durationMinutes"); durStr != "" {
		dur, err := strconv.Atoi(durStr)
		if err != nil {
			return nil, fmt.Errorf("invalid durationMinutes: %w", err)
		}
		q.DurationMinutes = dur
	}

	if slotDurStr := get("slotDurationMinutes"); slotDurStr != "" {
		dur, err := strconv.Atoi(slotDurStr)
		if err != nil {
			return nil, fmt.Errorf("invalid slotDurationMinutes: %w", err)
		}
		q.SlotDurationMinutes = dur
	}

	return q, nil
}

// SlotResponse модель слота в ответе
type SlotResponse struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// UnavailableSlotResponse недоступный слот с причиной
type UnavailableSlotResponse struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  string    `json:"reason"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID   int64                     `json:"serviceId"`
	SpaceID     int64                     `json:"spaceId"`
	Available   []SlotResponse            `json:"available"`
	Unavailable []UnavailableSlotResponse `json:"unavailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	available := make([]SlotResponse, len(resp.Available))
	for i, slot := range resp.Available {
		available[i] = SlotResponse{StartAt: slot.StartAt, EndAt: slot.EndAt}
	}

	unavailable := make([]UnavailableSlotResponse, len(resp.Unavailable))
	for i, slot := range resp.Unavailable {
		unavailable[i] = UnavailableSlotResponse{
			StartAt: slot.Slot.StartAt,
			EndAt:   slot.Slot.EndAt,
			Reason:  string(slot.Reason),
		}
	}

	return &AvailableSlotsResponse{
		ServiceID:   resp.ServiceID,
		SpaceID:     resp.SpaceID,
		Available:   available,
		Unavailable: unavailable,
	}
}
