package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	completeNow   time.Time
	expireCutoff  time.Time
	completeCount int64
	expireCount   int64
}

func (f *fakeBookingRepo) CompletePastConfirmed(_ context.Context, now time.Time) (int64, error) {
	f.completeNow = now
	return f.completeCount, nil
}

func (f *fakeBookingRepo) ExpireStalePending(_ context.Context, cutoff time.Time) (int64, error) {
	f.expireCutoff = cutoff
	return f.expireCount, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRunCompletePast(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{completeCount: 3}

	svc := NewService(repo, Config{PendingTTLMinutes: 120}, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}

	updated, err := svc.RunCompletePast(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), updated)
	assert.Equal(t, now, repo.completeNow)
}

func TestRunExpireStale_CutoffRespectsTTL(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{expireCount: 1}

	svc := NewService(repo, Config{PendingTTLMinutes: 120}, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}

	updated, err := svc.RunExpireStale(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), updated)
	assert.Equal(t, now.Add(-2*time.Hour), repo.expireCutoff)
}

func TestStart_InvalidSpec(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, Config{
		CompleteSpec: "not a cron spec",
		ExpireSpec:   "*/15 * * * *",
	}, nopLogger{})

	assert.Error(t, svc.Start())
}
