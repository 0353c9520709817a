package models

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// Request модели

// CreateAvailabilityWindowRequest запрос на создание окна доступности
type CreateAvailabilityWindowRequest struct {
	ServiceID    int64                 `json:"serviceId"`
	ValidFrom    time.Time             `json:"validFrom"`
	ValidTo      time.Time             `json:"validTo"`
	Schedule     domain.WeeklySchedule `json:"schedule"`
	SeatCapacity int                   `json:"seatCapacity"`
}

// UpdateAvailabilityWindowRequest запрос на обновление окна доступности
type UpdateAvailabilityWindowRequest struct {
	ValidFrom    time.Time             `json:"validFrom"`
	ValidTo      time.Time             `json:"validTo"`
	Schedule     domain.WeeklySchedule `json:"schedule"`
	SeatCapacity int                   `json:"seatCapacity"`
}

// CreateUnavailabilityWindowRequest запрос на создание окна недоступности
type CreateUnavailabilityWindowRequest struct {
	Label    string    `json:"label"`
	SpaceIDs []int64   `json:"spaceIds"`
	StartAt  time.Time `json:"startAt"`
	EndAt    time.Time `json:"endAt"`
}

// GetServiceScheduleRequest запрос на расписание услуги за период
type GetServiceScheduleRequest struct {
	ServiceID int64     `json:"serviceId"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
}

// Response модели

// TimeIntervalResponse интервал открытия в строковом виде ("09:00" - "18:00")
type TimeIntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityWindowResponse ответ с данными окна доступности
type AvailabilityWindowResponse struct {
	ID           int64                 `json:"id"`
	ServiceID    int64                 `json:"serviceId"`
	ValidFrom    string                `json:"validFrom"` // "2025-10-15"
	ValidTo      string                `json:"validTo"`
	Schedule     domain.WeeklySchedule `json:"schedule"`
	SeatCapacity int                   `json:"seatCapacity"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// AvailabilityWindowListResponse ответ со списком окон доступности
type AvailabilityWindowListResponse struct {
	Windows []AvailabilityWindowResponse `json:"windows"`
}

// UnavailabilityWindowResponse ответ с данными окна недоступности
type UnavailabilityWindowResponse struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	SpaceIDs  []int64   `json:"spaceIds"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnavailabilityWindowListResponse ответ со списком окон недоступности
type UnavailabilityWindowListResponse struct {
	Windows []UnavailabilityWindowResponse `json:"windows"`
}

// DayScheduleResponse интервалы открытия одной даты
type DayScheduleResponse struct {
	Date      string                 `json:"date"` // "2025-10-15"
	Intervals []TimeIntervalResponse `json:"intervals"`
	Closed    bool                   `json:"closed"`
}

// ServiceScheduleResponse расписание услуги за период с границами сетки
// календаря: самое раннее открытие и самое позднее закрытие за неделю
type ServiceScheduleResponse struct {
	ServiceID     int64                 `json:"serviceId"`
	Days          []DayScheduleResponse `json:"days"`
	GridStart     *string               `json:"gridStart,omitempty"` // "08:00"
	GridEnd       *string               `json:"gridEnd,omitempty"`   // "22:00"
	SlotDuration  int                   `json:"slotDurationMinutes"`
	SeatCapacity  int                   `json:"seatCapacity"`
}

// Методы конвертации

// FromDomainAvailabilityWindow конвертирует domain модель в DTO
func FromDomainAvailabilityWindow(w *domain.AvailabilityWindow) *AvailabilityWindowResponse {
	if w == nil {
		return nil
	}
	return &AvailabilityWindowResponse{
		ID:           w.ID,
		ServiceID:    w.ServiceID,
		ValidFrom:    w.ValidFrom.Format(domain.DateFormat),
		ValidTo:      w.ValidTo.Format(domain.DateFormat),
		Schedule:     w.Schedule,
		SeatCapacity: w.SeatCapacity,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// FromDomainAvailabilityWindowList конвертирует список domain моделей в DTO
func FromDomainAvailabilityWindowList(windows []*domain.AvailabilityWindow) *AvailabilityWindowListResponse {
	resp := &AvailabilityWindowListResponse{
		Windows: make([]AvailabilityWindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		if wResp := FromDomainAvailabilityWindow(w); wResp != nil {
			resp.Windows = append(resp.Windows, *wResp)
		}
	}
	return resp
}

// FromDomainUnavailabilityWindow конвертирует domain модель в DTO
func FromDomainUnavailabilityWindow(w *domain.UnavailabilityWindow) *UnavailabilityWindowResponse {
	if w == nil {
		return nil
	}
	return &UnavailabilityWindowResponse{
		ID:        w.ID,
		Label:     w.Label,
		SpaceIDs:  w.SpaceIDs,
		StartAt:   w.StartAt,
		EndAt:     w.EndAt,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// FromDomainUnavailabilityWindowList конвертирует список domain моделей в DTO
func FromDomainUnavailabilityWindowList(windows []*domain.UnavailabilityWindow) *UnavailabilityWindowListResponse {
	resp := &UnavailabilityWindowListResponse{
		Windows: make([]UnavailabilityWindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		if wResp := FromDomainUnavailabilityWindow(w); wResp != nil {
			resp.Windows = append(resp.Windows, *wResp)
		}
	}
	return resp
}

// FromDomainIntervals конвертирует интервалы открытия в строковые DTO
func FromDomainIntervals(intervals []domain.TimeInterval) []TimeIntervalResponse {
	result := make([]TimeIntervalResponse, 0, len(intervals))
	for _, interval := range intervals {
		result = append(result, TimeIntervalResponse{
			Start: interval.Start.String(),
			End:   interval.End.String(),
		})
	}
	return result
}
