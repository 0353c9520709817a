package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// UseCase use case для расчета доступных слотов бронирования.
// Разворачивает форму запроса в кандидатов (планировщик) и разбивает их
// на доступные и недоступные по живому снимку броней (резолвер).
type UseCase struct {
	availabilityRepo   AvailabilityRepository
	unavailabilityRepo UnavailabilityRepository
	bookingRepo        BookingRepository
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	unavailabilityRepo UnavailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo:   availabilityRepo,
		unavailabilityRepo: unavailabilityRepo,
		bookingRepo:        bookingRepo,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case расчета доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, service=%d, space=%d, shape=%s",
		req.UserID, req.ServiceID, req.SpaceID, req.Shape.Kind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Определяем охватываемый диапазон дат по форме запроса
	fromDate, toDate := shapeDateSpan(req.Shape)

	slotDuration := req.SlotDurationMinutes
	if slotDuration == 0 {
		slotDuration = domain.DefaultSlotDurationMinutes
	}

	// 4. Получаем окна доступности услуги на диапазон
	windows, err := uc.availabilityRepo.GetByServiceAndRange(ctx, req.ServiceID, fromDate, toDate)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	// 5. Планируем кандидатов
	candidates, err := planSlots(req.Shape, windows, slotDuration)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: planning failed: %v", err)
		return nil, err
	}

	// Отсутствие кандидатов — нормальный ответ (закрытые дни, дата вне окон)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: no candidates for service=%d in %s..%s",
			req.ServiceID, fromDate.Format(domain.DateFormat), toDate.Format(domain.DateFormat))
		return &Response{
			ServiceID:   req.ServiceID,
			SpaceID:     req.SpaceID,
			Available:   []domain.BookingSlot{},
			Unavailable: []domain.UnavailableSlot{},
		}, nil
	}

	// 6. Получаем окна недоступности коворкинга на охватываемый период
	spanStart := domain.DateOnly(fromDate)
	spanEnd := domain.DateOnly(toDate).AddDate(0, 0, 1)

	closures, err := uc.unavailabilityRepo.GetBySpaceAndRange(ctx, req.SpaceID, spanStart, spanEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get unavailability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get unavailability windows: %v", ErrInternal, err)
	}

	// 7. Получаем активные брони услуги, пересекающие период
	bookings, err := uc.bookingRepo.GetByServiceWithFilter(ctx, domain.ServiceBookingsFilter{
		ServiceID:       req.ServiceID,
		From:            &spanStart,
		To:              &spanEnd,
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Разбиваем кандидатов на доступные и недоступные
	available, unavailable := resolveAvailability(candidates, bookings, closures, req.UserID, now)

	uc.logger.Info("GetAvailableSlots: service=%d, %d candidates -> %d available, %d unavailable",
		req.ServiceID, len(candidates), len(available), len(unavailable))

	return &Response{
		ServiceID:   req.ServiceID,
		SpaceID:     req.SpaceID,
		Available:   available,
		Unavailable: unavailable,
	}, nil
}

// shapeDateSpan возвращает первую и последнюю календарные даты, которые
// затрагивает форма запроса
func shapeDateSpan(shape domain.BookingShape) (time.Time, time.Time) {
	switch shape.Kind {
	case domain.ShapeMultiDayRange:
		return shape.From, shape.To
	case domain.ShapeExplicitDateSet:
		first, last := shape.Dates[0], shape.Dates[0]
		for _, d := range shape.Dates[1:] {
			if d.Before(first) {
				first = d
			}
			if d.After(last) {
				last = d
			}
		}
		return first, last
	default:
		return shape.Date, shape.Date
	}
}
