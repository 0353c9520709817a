package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Config настройки фоновых задач
type Config struct {
	CompleteSpec      string // cron-выражение задачи завершения прошедших броней
	ExpireSpec        string // cron-выражение задачи истечения неподтвержденных броней
	PendingTTLMinutes int    // сколько минут бронь может ждать подтверждения
}

// Service фоновые задачи жизненного цикла бронирований:
// подтвержденные брони с прошедшим концом переводятся в completed,
// неподтвержденные старше TTL — в expired.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
	cfg          Config
	scheduler    *cron.Cron
}

// NewService создает новый экземпляр сервиса фоновых задач
func NewService(bookingRepo BookingRepository, cfg Config, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cfg:          cfg,
		scheduler:    cron.New(),
	}
}

// Start регистрирует задачи и запускает планировщик
func (s *Service) Start() error {
	if _, err := s.scheduler.AddFunc(s.cfg.CompleteSpec, s.runCompletePast); err != nil {
		return fmt.Errorf("jobs: failed to schedule complete job: %w", err)
	}

	if _, err := s.scheduler.AddFunc(s.cfg.ExpireSpec, s.runExpireStale); err != nil {
		return fmt.Errorf("jobs: failed to schedule expire job: %w", err)
	}

	s.scheduler.Start()
	s.logger.Info("Jobs: scheduler started, complete=%q, expire=%q, pending_ttl=%dm",
		s.cfg.CompleteSpec, s.cfg.ExpireSpec, s.cfg.PendingTTLMinutes)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущих задач
func (s *Service) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	s.logger.Info("Jobs: scheduler stopped")
}

// RunCompletePast переводит подтвержденные брони с истекшим концом в completed
func (s *Service) RunCompletePast(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	updated, err := s.bookingRepo.CompletePastConfirmed(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("jobs: complete past confirmed: %w", err)
	}

	return updated, nil
}

// RunExpireStale переводит неподтвержденные брони старше TTL в expired
func (s *Service) RunExpireStale(ctx context.Context) (int64, error) {
	cutoff := s.timeProvider.Now().Add(-time.Duration(s.cfg.PendingTTLMinutes) * time.Minute)

	updated, err := s.bookingRepo.ExpireStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("jobs: expire stale pending: %w", err)
	}

	return updated, nil
}

func (s *Service) runCompletePast() {
	updated, err := s.RunCompletePast(context.Background())
	if err != nil {
		s.logger.Error("Jobs: complete job failed: %v", err)
		return
	}
	if updated > 0 {
		s.logger.Info("Jobs: completed %d past confirmed bookings", updated)
	}
}

func (s *Service) runExpireStale() {
	updated, err := s.RunExpireStale(context.Background())
	if err != nil {
		s.logger.Error("Jobs: expire job failed: %v", err)
		return
	}
	if updated > 0 {
		s.logger.Info("Jobs: expired %d stale pending bookings", updated)
	}
}
