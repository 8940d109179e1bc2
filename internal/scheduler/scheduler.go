// Package scheduler drives the sweep passes on robfig/cron.
//
// The interval passes run every Config.Interval, with a first run delayed by
// Config.StartDelay. The weekly reminder passes run at a fixed weekday and
// hour computed from the wall clock, so a restart does not shift them.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/sweep"
)

// Runner executes one sweep pass. *sweep.Coordinator implements it.
type Runner interface {
	Run(ctx context.Context, pass sweep.Pass) (*lifecycle.Report, error)
}

// Config times the scheduler.
type Config struct {
	Interval   time.Duration
	StartDelay time.Duration
	WeeklyDay  time.Weekday
	WeeklyHour int
	// Location of the weekly wall-clock time; UTC when nil.
	Location *time.Location
}

var (
	// IntervalPasses run on the short interval.
	IntervalPasses = []sweep.Pass{sweep.PassListings, sweep.PassApplications, sweep.PassEmployments}
	// WeeklyPasses run once a week.
	WeeklyPasses = []sweep.Pass{sweep.PassTimesheetReminder, sweep.PassClosureReminder}
)

// Scheduler wraps robfig/cron and manages the sweep loop.
type Scheduler struct {
	cron   *cron.Cron
	runner Runner
	cfg    Config
	log    *zap.SugaredLogger

	mu    sync.Mutex
	first *time.Timer
	// firstRun tracks the delayed first run once its timer is armed.
	firstRun sync.WaitGroup
}

// New creates a Scheduler for runner.
func New(runner Runner, cfg Config, log *zap.SugaredLogger) *Scheduler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		runner: runner,
		cfg:    cfg,
		log:    log,
	}
}

// Start registers the jobs and starts the scheduler. The interval passes also
// run once after StartDelay so the first sweep does not wait a full interval.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cfg.Interval <= 0 {
		return errors.Newf("sweep interval must be positive, got %s", s.cfg.Interval)
	}
	if s.cfg.WeeklyHour < 0 || s.cfg.WeeklyHour > 23 {
		return errors.Newf("weekly hour must be within 0-23, got %d", s.cfg.WeeklyHour)
	}

	spec := fmt.Sprintf("@every %s", s.cfg.Interval)
	if _, err := s.cron.AddFunc(spec, func() { s.runPasses(ctx, IntervalPasses) }); err != nil {
		return errors.Wrap(err, "cron.AddFunc")
	}
	weekly := weeklySchedule{day: s.cfg.WeeklyDay, hour: s.cfg.WeeklyHour, loc: s.cfg.Location}
	s.cron.Schedule(weekly, cron.FuncJob(func() { s.runPasses(ctx, WeeklyPasses) }))

	s.cron.Start()
	s.log.Infow("scheduler started",
		"interval", s.cfg.Interval, "firstRunIn", s.cfg.StartDelay,
		"weekly", fmt.Sprintf("%s %02d:00 %s", s.cfg.WeeklyDay, s.cfg.WeeklyHour, s.cfg.Location),
		"nextWeekly", weekly.Next(time.Now()))

	s.mu.Lock()
	s.firstRun.Add(1)
	s.first = time.AfterFunc(s.cfg.StartDelay, func() {
		defer s.firstRun.Done()
		s.runPasses(ctx, IntervalPasses)
	})
	s.mu.Unlock()
	return nil
}

// Stop cancels the delayed first run if it has not fired yet and waits for
// running jobs, the first run included, to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.first != nil && s.first.Stop() {
		s.firstRun.Done()
	}
	s.first = nil
	s.mu.Unlock()
	<-s.cron.Stop().Done()
	s.firstRun.Wait()
	s.log.Info("scheduler stopped")
}

// runPasses runs passes one after the other. A failed pass is logged and the
// next one still runs.
func (s *Scheduler) runPasses(ctx context.Context, passes []sweep.Pass) {
	for _, p := range passes {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.runner.Run(ctx, p); err != nil {
			s.log.Errorw("sweep pass failed", "pass", p, "err", err)
		}
	}
}

// ─── Weekly schedule ─────────────────────────────────────────────────────────

// weeklySchedule fires at hour:00 on day every week.
type weeklySchedule struct {
	day  time.Weekday
	hour int
	loc  *time.Location
}

func (w weeklySchedule) Next(t time.Time) time.Time {
	return NextWeekly(t.In(w.loc), w.day, w.hour)
}

// NextWeekly returns the first instant strictly after now that falls on day
// at hour:00 in now's location.
func NextWeekly(now time.Time, day time.Weekday, hour int) time.Time {
	days := (int(day) - int(now.Weekday()) + 7) % 7
	next := time.Date(now.Year(), now.Month(), now.Day()+days, hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
