// Package scheduler runs periodic maintenance jobs on gocron.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// BatchJob processes one batch and returns how many items it touched.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterExpiryJob runs the subscription expiry sweep every interval,
// starting immediately. Overlapping runs are skipped.
func (m *SchedulerManager) RegisterExpiryJob(job BatchJob, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Hour
	}
	timeout := min(interval, 10*time.Minute)

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.runExpiry(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("subscription", "expire"),
		gocron.WithName("subscription-expire"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered subscription expiry job", "interval", interval)
	return nil
}

func (m *SchedulerManager) runExpiry(ctx context.Context, job BatchJob) {
	startTime := biztime.NowUTC()

	expired, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to expire subscriptions",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if expired > 0 {
		m.logger.Infow("expired subscriptions processed",
			"count", expired,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no lapsed subscriptions", "duration", time.Since(startTime))
	}
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false
	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
