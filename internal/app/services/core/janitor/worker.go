// Package janitor sweeps reservations past the retention window. Rows older
// than the configured age are deleted on a fixed interval; a Redis lock keeps
// concurrent replicas from sweeping at the same time.
package janitor

import (
	"context"
	"time"

	"lavanderia-service/internal/app/config"
	"lavanderia-service/internal/app/contracts"
	"lavanderia-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	reservations contracts.ReservationRepository
	stop         chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, reservations contracts.ReservationRepository) *Worker {
	return &Worker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		reservations: reservations,
		stop:         make(chan struct{}),
	}
}

func (w *Worker) interval() time.Duration {
	hours := w.cfg.App.JanitorIntervalInHours
	if hours <= 0 {
		hours = 2
	}
	return time.Duration(hours) * time.Hour
}

func (w *Worker) retentionAge() time.Duration {
	days := w.cfg.App.RetentionAgeInDays
	if days <= 0 {
		days = 14
	}
	return time.Duration(days) * 24 * time.Hour
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(w.interval())
	stopped := make(chan struct{})

	w.log.Info("janitor worker started",
		zap.Duration("interval", w.interval()),
	)

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.RunOnce(ctx, now)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

// RunOnce performs a single sweep. Exported so cmd/janitor can run the sweep
// without the ticker loop.
func (w *Worker) RunOnce(ctx context.Context, now time.Time) {
	lockTTL := time.Duration(w.cfg.App.JanitorLockExpiryTimeInMinutes) * time.Minute
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}

	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.RedisKeyJanitorLock, lockTTL)
	if err != nil {
		w.log.Error("janitor.RunOnce lock attempt failed",
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("janitor.RunOnce another replica holds the lock")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyJanitorLock, lockValue); err != nil {
			w.log.Error("janitor.RunOnce error releasing lock",
				zap.Error(err),
			)
		}
	}()

	cutoff := now.Add(-w.retentionAge())
	deleted, err := w.reservations.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		w.log.Error("janitor.RunOnce error deleting old reservations",
			zap.Error(err),
		)
		return
	}

	w.log.Info("janitor.RunOnce sweep finished",
		zap.Time("cutoff", cutoff),
		zap.Int64(constvars.LoggingDeletedCount, deleted),
	)
}
