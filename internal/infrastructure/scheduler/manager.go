// Package scheduler manages the background jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	attendanceusecases "scholaris/internal/application/attendance/usecases"
	feesusecases "scholaris/internal/application/fees/usecases"
	"scholaris/internal/shared/logger"
)

// SessionSweeper ends sessions whose expiry has passed.
type SessionSweeper interface {
	EndExpired() (int64, error)
}

// OverdueSweeper flags past-due invoices and sends guardian reminders.
type OverdueSweeper interface {
	Execute(ctx context.Context, asOf time.Time) (*feesusecases.OverdueSweepResult, error)
}

// AbsenceAlerter notifies guardians of students marked absent on a date.
type AbsenceAlerter interface {
	Execute(ctx context.Context, date time.Time) (*attendanceusecases.SendAbsenceAlertsResult, error)
}

// Manager owns the single gocron scheduler instance and all job
// registrations.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterSessionSweep ends expired sessions every 15 minutes so stale
// rows cannot pass the middleware's active check.
func (m *Manager) RegisterSessionSweep(sweeper SessionSweeper) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(func() {
			m.sweepSessions(sweeper)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("account", "session-sweep"),
		gocron.WithName("session-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered session sweep job", "interval", "15m")
	return nil
}

func (m *Manager) sweepSessions(sweeper SessionSweeper) {
	start := time.Now()
	ended, err := sweeper.EndExpired()
	if err != nil {
		m.logger.Errorw("failed to end expired sessions", "error", err, "duration", time.Since(start))
		return
	}
	if ended > 0 {
		m.logger.Infow("expired sessions ended", "count", ended, "duration", time.Since(start))
	}
}

// RegisterFeeJobs runs the overdue sweep at 07:00 daily, before the
// school office opens.
func (m *Manager) RegisterFeeJobs(sweeper OverdueSweeper) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 7 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.sweepOverdueInvoices(ctx, sweeper)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("fees", "overdue-sweep"),
		gocron.WithName("fee-overdue-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered fee jobs", "overdue_sweep", "07:00")
	return nil
}

func (m *Manager) sweepOverdueInvoices(ctx context.Context, sweeper OverdueSweeper) {
	start := time.Now()
	result, err := sweeper.Execute(ctx, time.Now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("fee overdue sweep failed", "error", err, "duration", time.Since(start))
		return
	}

	m.logger.Infow("fee overdue sweep completed",
		"flagged", result.Flagged,
		"reminders", result.Reminders,
		"duration", time.Since(start))
}

// RegisterAttendanceJobs sends absence alerts at 11:00 daily, after
// morning attendance has been marked.
func (m *Manager) RegisterAttendanceJobs(alerter AbsenceAlerter) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 11 * * 1-6", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.sendAbsenceAlerts(ctx, alerter)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("attendance", "absence-alerts"),
		gocron.WithName("absence-alerts"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered attendance jobs", "absence_alerts", "11:00 Mon-Sat")
	return nil
}

func (m *Manager) sendAbsenceAlerts(ctx context.Context, alerter AbsenceAlerter) {
	start := time.Now()
	result, err := alerter.Execute(ctx, time.Now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("absence alert run failed", "error", err, "duration", time.Since(start))
		return
	}

	m.logger.Infow("absence alert run completed",
		"absentees", result.Absentees,
		"emailed", result.Emailed,
		"texted", result.Texted,
		"duration", time.Since(start))
}

// Start starts the scheduler and all registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false
	if err != nil {
		m.logger.Errorw("scheduler shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler stopped")
	return nil
}

func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
