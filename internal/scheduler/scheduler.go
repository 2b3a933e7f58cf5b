// Package scheduler wraps robfig/cron for the service's background
// jobs. The only job Renix schedules today is the rate snapshot
// staleness watchdog, but the Job interface keeps the wiring open.
package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a named unit of background work. Run must be safe to call
// repeatedly; overlapping executions are not prevented here.
type Job interface {
	Run() error
	Name() string
}

// Scheduler owns the cron instance and logs every job transition.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates an idle scheduler. Jobs added before Start do not run
// until Start is called.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// Start begins dispatching scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("Scheduler started")
}

// Stop halts scheduling and blocks until in-flight jobs return.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}

// AddJob registers job against a cron expression ("@every 5m",
// "0 * * * *", ...). A job error is logged and swallowed; one failed
// run never unschedules the job.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.log.Debug().Str("job", job.Name()).Msg("Job starting")

		if err := job.Run(); err != nil {
			s.log.Error().
				Err(err).
				Str("job", job.Name()).
				Msg("Job run failed")
			return
		}

		s.log.Debug().Str("job", job.Name()).Msg("Job finished")
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("schedule", schedule).
		Str("job", job.Name()).
		Msg("Job scheduled")

	return nil
}

// RunNow runs a job once, bypassing its schedule. Unlike scheduled runs
// the error is returned to the caller.
func (s *Scheduler) RunNow(job Job) error {
	s.log.Info().Str("job", job.Name()).Msg("Job triggered manually")
	return job.Run()
}
