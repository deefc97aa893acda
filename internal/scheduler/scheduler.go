// Package scheduler runs end-of-month processing on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/service"
)

const jobTimeout = 5 * time.Minute

type endOfMonthProcessor interface {
	ProcessEndOfMonth(ctx context.Context) ([]service.CycleReport, error)
}

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron      *cron.Cron
	processor endOfMonthProcessor
	logger    logrus.FieldLogger
	schedule  string
}

// NewScheduler creates a scheduler for the given standard five-field cron
// expression (or descriptor such as "@monthly").
func NewScheduler(processor endOfMonthProcessor, logger logrus.FieldLogger, schedule string) *Scheduler {
	cronLogger := cron.PrintfLogger(logger)
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)), cron.WithLogger(cronLogger))

	return &Scheduler{
		cron:      c,
		processor: processor,
		logger:    logger,
		schedule:  schedule,
	}
}

// Start registers the end-of-month job and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.RunEndOfMonth); err != nil {
		return fmt.Errorf("schedule end-of-month job %q: %w", s.schedule, err)
	}
	s.logger.WithField("schedule", s.schedule).Info("Scheduler.Start")

	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunEndOfMonth performs one end-of-month run and logs its outcome.
func (s *Scheduler) RunEndOfMonth() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	reports, err := s.processor.ProcessEndOfMonth(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scheduler.RunEndOfMonth.failed")
		return
	}

	skipped := 0
	for _, report := range reports {
		if report.Skipped {
			skipped++
		}
	}
	s.logger.WithFields(logrus.Fields{
		"accountCount": len(reports),
		"skipped":      skipped,
	}).Info("Scheduler.RunEndOfMonth.complete")
}
