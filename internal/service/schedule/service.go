package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	availabilityRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/availability"
	unavailabilityRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/unavailability"
	"github.com/m04kA/CWS-BookingService/internal/service/schedule/models"
)

// Service сервис администрирования расписаний: окна доступности услуг
// и окна недоступности площадок. Данные валидируются на границе — движок
// бронирования получает из хранилища уже согласованные окна.
type Service struct {
	availabilityRepo   AvailabilityRepository
	unavailabilityRepo UnavailabilityRepository
	logger             Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	availabilityRepo AvailabilityRepository,
	unavailabilityRepo UnavailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo:   availabilityRepo,
		unavailabilityRepo: unavailabilityRepo,
		logger:             logger,
	}
}

// CreateAvailabilityWindow создает окно доступности услуги
func (s *Service) CreateAvailabilityWindow(ctx context.Context, req *models.CreateAvailabilityWindowRequest) (*models.AvailabilityWindowResponse, error) {
	s.logger.Info("CreateAvailabilityWindow: service=%d, valid=%s..%s, capacity=%d",
		req.ServiceID, req.ValidFrom.Format(domain.DateFormat), req.ValidTo.Format(domain.DateFormat), req.SeatCapacity)

	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	window := &domain.AvailabilityWindow{
		ServiceID:    req.ServiceID,
		ValidFrom:    domain.DateOnly(req.ValidFrom),
		ValidTo:      domain.DateOnly(req.ValidTo),
		Schedule:     req.Schedule,
		SeatCapacity: req.SeatCapacity,
	}

	if err := window.Validate(); err != nil {
		s.logger.Warn("CreateAvailabilityWindow: validation failed for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("CreateAvailabilityWindow: repository error for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: CreateAvailabilityWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAvailabilityWindow: successfully created window id=%d", created.ID)
	return models.FromDomainAvailabilityWindow(created), nil
}

// UpdateAvailabilityWindow обновляет окно доступности
func (s *Service) UpdateAvailabilityWindow(ctx context.Context, id int64, req *models.UpdateAvailabilityWindowRequest) (*models.AvailabilityWindowResponse, error) {
	s.logger.Info("UpdateAvailabilityWindow: updating window id=%d", id)

	window, err := s.availabilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("UpdateAvailabilityWindow: window id=%d not found", id)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("UpdateAvailabilityWindow: repository error for window id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateAvailabilityWindow - repository error: %v", ErrInternal, err)
	}

	window.ValidFrom = domain.DateOnly(req.ValidFrom)
	window.ValidTo = domain.DateOnly(req.ValidTo)
	window.Schedule = req.Schedule
	window.SeatCapacity = req.SeatCapacity

	if err := window.Validate(); err != nil {
		s.logger.Warn("UpdateAvailabilityWindow: validation failed for window id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	if err := s.availabilityRepo.Update(ctx, window); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return nil, ErrWindowNotFound
		}
		s.logger.Error("UpdateAvailabilityWindow: repository error for window id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateAvailabilityWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailabilityWindow: successfully updated window id=%d", id)
	return models.FromDomainAvailabilityWindow(window), nil
}

// ListAvailabilityWindows получает все окна доступности услуги
func (s *Service) ListAvailabilityWindows(ctx context.Context, serviceID int64) (*models.AvailabilityWindowListResponse, error) {
	s.logger.Info("ListAvailabilityWindows: fetching windows for service=%d", serviceID)

	windows, err := s.availabilityRepo.ListByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListAvailabilityWindows: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListAvailabilityWindows - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAvailabilityWindowList(windows), nil
}

// DeleteAvailabilityWindow удаляет окно доступности
func (s *Service) DeleteAvailabilityWindow(ctx context.Context, id int64) error {
	s.logger.Info("DeleteAvailabilityWindow: deleting window id=%d", id)

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("DeleteAvailabilityWindow: window id=%d not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteAvailabilityWindow: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteAvailabilityWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAvailabilityWindow: successfully deleted window id=%d", id)
	return nil
}

// GetServiceSchedule возвращает интервалы открытия услуги по датам периода
// плюс границы календарной сетки (самое раннее открытие и самое позднее
// закрытие за неделю действующего окна)
func (s *Service) GetServiceSchedule(ctx context.Context, req *models.GetServiceScheduleRequest) (*models.ServiceScheduleResponse, error) {
	s.logger.Info("GetServiceSchedule: service=%d, period=%s..%s",
		req.ServiceID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	from := domain.DateOnly(req.From)
	to := domain.DateOnly(req.To)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.GetByServiceAndRange(ctx, req.ServiceID, from, to)
	if err != nil {
		s.logger.Error("GetServiceSchedule: repository error for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: GetServiceSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.ServiceScheduleResponse{
		ServiceID:    req.ServiceID,
		Days:         make([]models.DayScheduleResponse, 0),
		SlotDuration: domain.DefaultSlotDurationMinutes,
		SeatCapacity: domain.DefaultSeatCapacity,
	}

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		window := coveringWindow(windows, date)
		if window == nil {
			resp.Days = append(resp.Days, models.DayScheduleResponse{
				Date:      date.Format(domain.DateFormat),
				Intervals: []models.TimeIntervalResponse{},
				Closed:    true,
			})
			continue
		}

		intervals := window.DailyIntervals(date)
		resp.Days = append(resp.Days, models.DayScheduleResponse{
			Date:      date.Format(domain.DateFormat),
			Intervals: models.FromDomainIntervals(intervals),
			Closed:    len(intervals) == 0,
		})

		resp.SeatCapacity = window.SeatCapacity

		// Границы сетки берем по всей неделе действующего окна
		if start := window.Schedule.EarliestStart(); start != nil {
			str := start.String()
			if resp.GridStart == nil || str < *resp.GridStart {
				resp.GridStart = &str
			}
		}
		if end := window.Schedule.LatestEnd(); end != nil {
			str := end.String()
			if resp.GridEnd == nil || str > *resp.GridEnd {
				resp.GridEnd = &str
			}
		}
	}

	return resp, nil
}

// CreateUnavailabilityWindow создает окно недоступности площадок
func (s *Service) CreateUnavailabilityWindow(ctx context.Context, req *models.CreateUnavailabilityWindowRequest) (*models.UnavailabilityWindowResponse, error) {
	s.logger.Info("CreateUnavailabilityWindow: label=%q, spaces=%v", req.Label, req.SpaceIDs)

	window := &domain.UnavailabilityWindow{
		Label:    req.Label,
		SpaceIDs: req.SpaceIDs,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
	}

	if err := window.Validate(); err != nil {
		s.logger.Warn("CreateUnavailabilityWindow: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	created, err := s.unavailabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("CreateUnavailabilityWindow: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateUnavailabilityWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUnavailabilityWindow: successfully created window id=%d", created.ID)
	return models.FromDomainUnavailabilityWindow(created), nil
}

// ListUnavailabilityWindows получает все окна недоступности площадки
func (s *Service) ListUnavailabilityWindows(ctx context.Context, spaceID int64) (*models.UnavailabilityWindowListResponse, error) {
	s.logger.Info("ListUnavailabilityWindows: fetching windows for space=%d", spaceID)

	windows, err := s.unavailabilityRepo.ListBySpace(ctx, spaceID)
	if err != nil {
		s.logger.Error("ListUnavailabilityWindows: repository error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: ListUnavailabilityWindows - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUnavailabilityWindowList(windows), nil
}

// DeleteUnavailabilityWindow удаляет окно недоступности
func (s *Service) DeleteUnavailabilityWindow(ctx context.Context, id int64) error {
	s.logger.Info("DeleteUnavailabilityWindow: deleting window id=%d", id)

	if err := s.unavailabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, unavailabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("DeleteUnavailabilityWindow: window id=%d not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("DeleteUnavailabilityWindow: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteUnavailabilityWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteUnavailabilityWindow: successfully deleted window id=%d", id)
	return nil
}

// coveringWindow выбирает окно, покрывающее дату; при нескольких побеждает
// окно с самым поздним началом действия
func coveringWindow(windows []*domain.AvailabilityWindow, date time.Time) *domain.AvailabilityWindow {
	var selected *domain.AvailabilityWindow
	for _, w := range windows {
		if !w.CoversDate(date) {
			continue
		}
		if selected == nil || w.ValidFrom.After(selected.ValidFrom) {
			selected = w
		}
	}
	return selected
}
