package scheduler

import (
	"context"
	"log/slog"
	"time"

	"content_fetcher/internal/domain"
)

// Runner defines the interface for one pipeline run.
type Runner interface {
	Run(ctx context.Context) (*domain.FetchStats, error)
}

// Scheduler re-runs the pipeline on a fixed interval (watch mode).
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.run(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *Scheduler) run(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 15*time.Minute)
	defer cancel()

	if _, err := s.runner.Run(runCtx); err != nil {
		s.logger.Error("run failed", "error", err)
	}
}
