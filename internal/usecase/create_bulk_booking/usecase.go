package create_bulk_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	creditClient "github.com/m04kA/CWS-BookingService/internal/integrations/creditservice"
)

// UseCase use case пакетного создания бронирований.
// Локальные предусловия (пустой запрос, остаток карты) проверяются до
// обращения к хранилищу; внутри сериализуемой транзакции каждый слот
// перепроверяется заново, отказ по слоту возвращается данными, не ошибкой.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	creditClient     CreditServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	creditClient CreditServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		creditClient:     creditClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case пакетного создания бронирований
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBulkBooking: user=%d, service=%d, space=%d, slots=%d",
		req.UserID, req.ServiceID, req.SpaceID, len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBulkBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем остаток предоплаченной карты до обращения к хранилищу
	paymentStatus := domain.PaymentPending
	if req.PrepaidCreditID != nil {
		credit, err := uc.creditClient.GetCredit(ctx, *req.PrepaidCreditID)
		if err != nil {
			if errors.Is(err, creditClient.ErrCreditNotFound) {
				uc.logger.Warn("CreateBulkBooking: credit id=%s not found", *req.PrepaidCreditID)
				return nil, ErrCreditNotFound
			}
			uc.logger.Error("CreateBulkBooking: failed to get credit id=%s: %v", *req.PrepaidCreditID, err)
			return nil, fmt.Errorf("%w: failed to get credit: %v", ErrInternal, err)
		}

		if credit.RemainingBalance < len(req.Slots) {
			uc.logger.Warn("CreateBulkBooking: insufficient credit id=%s: balance=%d, requested=%d",
				credit.ID, credit.RemainingBalance, len(req.Slots))
			return nil, ErrInsufficientCredit
		}

		paymentStatus = domain.PaymentPaid
	}

	// 4. Генерируем код запроса, общий для всех броней пакета
	requestCode := uuid.NewString()

	// Переменная для хранения результата
	var result *Response

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		spanFrom, spanTo := slotsSpan(req.Slots)

		// 5.1. Получаем окна доступности услуги на охватываемый период
		windows, err := uc.availabilityRepo.GetByServiceAndRange(txCtx, req.ServiceID, spanFrom, spanTo)
		if err != nil {
			uc.logger.Error("CreateBulkBooking: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}

		// 5.2. Получаем активные брони услуги с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByServiceWithFilter(txCtx, domain.ServiceBookingsFilter{
			ServiceID:       req.ServiceID,
			From:            &spanFrom,
			To:              &spanTo,
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("CreateBulkBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.3. Перепроверяем каждый слот на актуальном снимке занятости.
		// Принятые слоты пакета учитываются при проверке последующих.
		toCreate := make([]*domain.Booking, 0, len(req.Slots))
		indexes := make([]int, 0, len(req.Slots))
		failures := make([]domain.BulkItemFailure, 0)
		accepted := make([]domain.BookingSlot, 0, len(req.Slots))

		for i, slot := range req.Slots {
			if kind := checkSlot(slot, windows, bookings, accepted, req.UserID, now); kind != "" {
				uc.logger.Warn("CreateBulkBooking: slot %d [%s - %s] rejected: %s",
					i, slot.StartAt.Format(time.RFC3339), slot.EndAt.Format(time.RFC3339), kind)
				failures = append(failures, domain.BulkItemFailure{Index: i, Kind: kind})
				continue
			}

			accepted = append(accepted, slot)
			indexes = append(indexes, i)
			toCreate = append(toCreate, &domain.Booking{
				UserID:          req.UserID,
				SpaceID:         req.SpaceID,
				ServiceID:       req.ServiceID,
				StartAt:         slot.StartAt,
				EndAt:           slot.EndAt,
				Status:          domain.StatusPendingConfirmation,
				PaymentStatus:   paymentStatus,
				PrepaidCreditID: req.PrepaidCreditID,
				RequestCode:     requestCode,
				Notes:           req.Notes,
			})
		}

		created := make([]CreatedBooking, 0, len(toCreate))

		// 5.4. Сохраняем принятые слоты одним запросом
		if len(toCreate) > 0 {
			createdBookings, err := uc.bookingRepo.CreateBulk(txCtx, toCreate)
			if err != nil {
				uc.logger.Error("CreateBulkBooking: failed to create bookings: %v", err)
				return fmt.Errorf("%w: failed to create bookings: %v", ErrInternal, err)
			}

			for _, b := range createdBookings {
				created = append(created, CreatedBooking{
					ID:            b.ID,
					StartAt:       b.StartAt,
					EndAt:         b.EndAt,
					Status:        string(b.Status),
					PaymentStatus: string(b.PaymentStatus),
				})
			}
		}

		result = &Response{
			RequestCode:  requestCode,
			CreatedCount: len(created),
			Created:      created,
			Failures:     failures,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBulkBooking: request_code=%s, created=%d, failed=%d",
		requestCode, result.CreatedCount, len(result.Failures))

	return result, nil
}

// checkSlot перепроверяет один слот на снимке занятости под блокировкой.
// Возвращает код отказа или пустую строку, если слот можно создавать.
func checkSlot(
	slot domain.BookingSlot,
	windows []*domain.AvailabilityWindow,
	bookings []*domain.Booking,
	accepted []domain.BookingSlot,
	userID int64,
	now time.Time,
) domain.BulkFailureKind {
	if !slot.EndAt.After(now) {
		return domain.BulkFailurePastSlot
	}

	window := coveringWindowFor(windows, slot)
	if window == nil {
		return domain.BulkFailureOutsideSchedule
	}

	occupied := 0
	for _, b := range bookings {
		if !b.IsActive() || !containedIn(slot, b.StartAt, b.EndAt) {
			continue
		}
		if b.UserID == userID {
			return domain.BulkFailureAlreadyBooked
		}
		occupied++
	}

	// Дубликаты внутри пакета конфликтуют сами с собой
	for _, a := range accepted {
		if containedIn(slot, a.StartAt, a.EndAt) {
			return domain.BulkFailureAlreadyBooked
		}
	}

	if occupied >= window.SeatCapacity {
		return domain.BulkFailureSlotTaken
	}

	return ""
}

// coveringWindowFor выбирает окно доступности, покрывающее дату слота.
// При нескольких кандидатах побеждает окно с самым поздним началом действия.
func coveringWindowFor(windows []*domain.AvailabilityWindow, slot domain.BookingSlot) *domain.AvailabilityWindow {
	var selected *domain.AvailabilityWindow
	for _, w := range windows {
		if !w.CoversDate(slot.StartAt) {
			continue
		}
		if selected == nil || w.ValidFrom.After(selected.ValidFrom) {
			selected = w
		}
	}
	return selected
}

// containedIn проверяет, что интервал [start, end] целиком внутри слота
func containedIn(slot domain.BookingSlot, start, end time.Time) bool {
	return !start.Before(slot.StartAt) && !end.After(slot.EndAt)
}

// slotsSpan возвращает минимальное начало и максимальный конец по слотам пакета
func slotsSpan(slots []domain.BookingSlot) (time.Time, time.Time) {
	from, to := slots[0].StartAt, slots[0].EndAt
	for _, s := range slots[1:] {
		if s.StartAt.Before(from) {
			from = s.StartAt
		}
		if s.EndAt.After(to) {
			to = s.EndAt
		}
	}
	return from, to
}
