package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/omerdahan/seatduty/internal/usecase"
)

const cycleRunTimeout = 5 * time.Minute

// CycleRunner triggers a full allocation cycle on a fixed interval so
// assignments stay current even when nothing calls the webhook.
type CycleRunner struct {
	scheduler gocron.Scheduler
	duty      *usecase.DutyService
	interval  time.Duration
	logger    *slog.Logger
}

func NewCycleRunner(duty *usecase.DutyService, interval time.Duration, logger *slog.Logger) (*CycleRunner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		return nil, fmt.Errorf("cycle interval must be > 0, got %s", interval)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create cycle scheduler: %w", err)
	}

	runner := &CycleRunner{
		scheduler: scheduler,
		duty:      duty,
		interval:  interval,
		logger:    logger,
	}

	if _, err := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(runner.runOnce),
	); err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("register cycle job: %w", err)
	}

	return runner, nil
}

func (r *CycleRunner) Start() {
	r.scheduler.Start()
	r.logger.Info("allocation cycle worker started", "interval", r.interval.String())
}

func (r *CycleRunner) Stop() error {
	return r.scheduler.Shutdown()
}

func (r *CycleRunner) runOnce() {
	timeout := cycleRunTimeout
	if r.interval < timeout {
		timeout = r.interval
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	report, err := r.duty.RunCycle(ctx, time.Now())
	if err != nil {
		r.logger.ErrorContext(ctx, "scheduled allocation cycle failed", "error", err)
		return
	}

	r.logger.InfoContext(ctx, "scheduled allocation cycle finished",
		"total_games", report.TotalGames,
		"assignments_made", len(report.AssignmentsMade),
	)
}
