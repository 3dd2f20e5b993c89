package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-data-ingestor/internal/ingestor"
)

// Scheduler periodically triggers an ingestion for the configured default
// city when the handler runs outside the Lambda runtime.
type Scheduler struct {
	scheduler *gocron.Scheduler
	handler   *ingestor.Handler
	interval  time.Duration
	log       *slog.Logger
}

// New creates a new Scheduler.
func New(handler *ingestor.Handler, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		handler:   handler,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.log.Info("scheduler: no interval configured; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := s.handler.Handle(ctx, ingestor.TriggerEvent{})
		if err != nil {
			s.log.Error("scheduler: ingestion failed", "err", err)
			return
		}
		s.log.Info("scheduler: ingestion completed", "status", result.StatusCode)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
