package janitor

import (
	"context"
	"testing"
	"time"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLocker struct {
	acquired bool
	unlocked bool
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return f.acquired, "lock-value", nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked = true
	return nil
}

func (f *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type fakeSweepRepository struct {
	cutoff  time.Time
	calls   int
	deleted int64
}

func (f *fakeSweepRepository) FindByDateKey(ctx context.Context, dateKey string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeSweepRepository) Insert(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	return reservation, nil
}

func (f *fakeSweepRepository) DeleteByDateTimePhone(ctx context.Context, dateKey, timeOfDay, phone string) (int64, error) {
	return 0, nil
}

func (f *fakeSweepRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.calls++
	f.cutoff = cutoff
	return f.deleted, nil
}

func (f *fakeSweepRepository) FindUpcomingByPhone(ctx context.Context, phone, fromDateKey string) ([]models.Reservation, error) {
	return nil, nil
}

func TestRunOnce(t *testing.T) {
	now := time.Date(2025, time.November, 25, 3, 0, 0, 0, time.UTC)

	t.Run("sweeps with the configured retention cutoff", func(t *testing.T) {
		repo := &fakeSweepRepository{deleted: 3}
		locker := &fakeLocker{acquired: true}
		worker := NewWorker(zap.NewNop(), &config.InternalConfig{
			App: config.App{RetentionAgeInDays: 14, JanitorLockExpiryTimeInMinutes: 5},
		}, locker, repo)

		worker.RunOnce(context.Background(), now)

		assert.Equal(t, 1, repo.calls)
		assert.Equal(t, now.Add(-14*24*time.Hour), repo.cutoff)
		assert.True(t, locker.unlocked)
	})

	t.Run("skips the sweep when another replica holds the lock", func(t *testing.T) {
		repo := &fakeSweepRepository{}
		worker := NewWorker(zap.NewNop(), &config.InternalConfig{
			App: config.App{RetentionAgeInDays: 14},
		}, &fakeLocker{acquired: false}, repo)

		worker.RunOnce(context.Background(), now)

		assert.Zero(t, repo.calls)
	})

	t.Run("defaults retention to fourteen days", func(t *testing.T) {
		repo := &fakeSweepRepository{}
		worker := NewWorker(zap.NewNop(), &config.InternalConfig{}, &fakeLocker{acquired: true}, repo)

		worker.RunOnce(context.Background(), now)

		assert.Equal(t, now.Add(-14*24*time.Hour), repo.cutoff)
	})
}
