// Package sweep runs the time-driven lifecycle passes.
//
// Passes are stateless and idempotent: each one pages through its
// candidates in bounded batches, drives them through the same Engine transitions users trigger,
// and records the per-record outcome in a lifecycle.Report instead of
// stopping at the first error.
package sweep

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobmate/placement-service/internal/lifecycle"
)

// Pass names a sweep pass.
type Pass string

const (
	PassListings          Pass = "listings"
	PassApplications      Pass = "applications"
	PassEmployments       Pass = "employments"
	PassTimesheetReminder Pass = "timesheet-reminders"
	PassClosureReminder   Pass = "closure-reminders"
)

// Passes lists every pass in run order.
var Passes = []Pass{PassListings, PassApplications, PassEmployments, PassTimesheetReminder, PassClosureReminder}

// ParsePass converts a raw name to a Pass.
func ParsePass(s string) (Pass, error) {
	for _, p := range Passes {
		if string(p) == s {
			return p, nil
		}
	}
	names := make([]string, len(Passes))
	for i, p := range Passes {
		names[i] = string(p)
	}
	return "", errors.Newf("unknown sweep pass %q (want one of %s)", s, strings.Join(names, ", "))
}

// Config bounds and times the passes.
type Config struct {
	// BatchSize is the page size each step of a pass lists candidates with.
	BatchSize int
	// ListingReminderLead is how long before expiry listings start reminding.
	ListingReminderLead time.Duration
	// ListingReminderEvery is the dedup window of the listing reminder.
	ListingReminderEvery time.Duration
	// OfferReminderLead is how long before offer expiry the applicant is
	// reminded, once.
	OfferReminderLead time.Duration
	// WeeklyWindow is the dedup window of the timesheet and closure reminders.
	WeeklyWindow time.Duration
}

// DefaultConfig returns the production values.
func DefaultConfig() Config {
	return Config{
		BatchSize:            200,
		ListingReminderLead:  7 * 24 * time.Hour,
		ListingReminderEvery: 24 * time.Hour,
		OfferReminderLead:    24 * time.Hour,
		WeeklyWindow:         7 * 24 * time.Hour,
	}
}

// Coordinator owns the five passes.
type Coordinator struct {
	engine  *lifecycle.Engine
	store   lifecycle.Store
	cfg     Config
	metrics *Metrics
	log     *zap.SugaredLogger
}

// NewCoordinator returns a Coordinator. metrics may be nil.
func NewCoordinator(engine *lifecycle.Engine, store lifecycle.Store, cfg Config, metrics *Metrics, log *zap.SugaredLogger) *Coordinator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Coordinator{engine: engine, store: store, cfg: cfg, metrics: metrics, log: log}
}

// Run executes one pass and returns its report. The error is non-nil only
// when the pass could not run at all; per-record failures are in the report.
func (c *Coordinator) Run(ctx context.Context, pass Pass) (*lifecycle.Report, error) {
	var fn func(context.Context, *lifecycle.Report) error
	switch pass {
	case PassListings:
		fn = c.listings
	case PassApplications:
		fn = c.applications
	case PassEmployments:
		fn = c.employments
	case PassTimesheetReminder:
		fn = c.timesheetReminders
	case PassClosureReminder:
		fn = c.closureReminders
	default:
		return nil, errors.Newf("unknown sweep pass %q", pass)
	}

	r := lifecycle.NewReport(string(pass), c.engine.Now())
	start := time.Now()
	err := fn(ctx, r)
	r.Duration = time.Since(start)

	c.metrics.Observe(r)
	for _, e := range r.Errors {
		c.log.Warnw("sweep record failed", "pass", pass, "err", e)
	}
	if err != nil {
		c.log.Errorw("sweep pass aborted", "pass", pass, "err", err)
		return r, errors.Wrapf(err, "sweep %s", pass)
	}
	c.log.Infow("sweep pass finished",
		"pass", pass, "candidates", r.Candidates, "applied", r.Applied,
		"skipped", r.Skipped, "failed", r.Failed, "duration", r.Duration)
	return r, nil
}

// RunAll runs passes concurrently. One aborted pass does not cancel the
// others; their errors are joined.
func (c *Coordinator) RunAll(ctx context.Context, passes ...Pass) ([]*lifecycle.Report, error) {
	if len(passes) == 0 {
		passes = Passes
	}
	reports := make([]*lifecycle.Report, len(passes))
	errs := make([]error, len(passes))

	var g errgroup.Group
	for i, p := range passes {
		g.Go(func() error {
			reports[i], errs[i] = c.Run(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*lifecycle.Report, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, errors.Join(errs...)
}

// ─── Paging ──────────────────────────────────────────────────────────────────

// drain lists candidates one BatchSize page at a time, resuming after the last
// record of the previous page, and stops at the first short page. Records a
// step leaves in place (skipped or failed) therefore never hide the ones
// behind them.
func drain[T any](ctx context.Context, r *lifecycle.Report, batch int,
	list func(after *lifecycle.Cursor, limit int) ([]T, error),
	key func(T) lifecycle.Cursor,
	fn func(context.Context, T) error,
) error {
	id := func(v T) string { return key(v).ID }
	var after *lifecycle.Cursor
	for {
		page, err := list(after, batch)
		if err != nil {
			return err
		}
		lifecycle.RunLenient(ctx, r, page, id, fn)
		if len(page) < batch {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		last := key(page[len(page)-1])
		after = &last
	}
}

func (c *Coordinator) listingPages(ctx context.Context, f lifecycle.ListingFilter) func(*lifecycle.Cursor, int) ([]*lifecycle.Listing, error) {
	return func(after *lifecycle.Cursor, limit int) ([]*lifecycle.Listing, error) {
		f.After, f.Limit = after, limit
		return c.store.ListListings(ctx, f)
	}
}

func (c *Coordinator) applicationPages(ctx context.Context, f lifecycle.ApplicationFilter) func(*lifecycle.Cursor, int) ([]*lifecycle.Application, error) {
	return func(after *lifecycle.Cursor, limit int) ([]*lifecycle.Application, error) {
		f.After, f.Limit = after, limit
		return c.store.ListApplications(ctx, f)
	}
}

func (c *Coordinator) employmentPages(ctx context.Context, f lifecycle.EmploymentFilter) func(*lifecycle.Cursor, int) ([]*lifecycle.Employment, error) {
	return func(after *lifecycle.Cursor, limit int) ([]*lifecycle.Employment, error) {
		f.After, f.Limit = after, limit
		return c.store.ListEmployments(ctx, f)
	}
}

// ─── Pass 1: listings ────────────────────────────────────────────────────────

func (c *Coordinator) listings(ctx context.Context, r *lifecycle.Report) error {
	now := c.engine.Now()

	err := drain(ctx, r, c.cfg.BatchSize, c.listingPages(ctx, lifecycle.ListingFilter{
		Statuses:          []lifecycle.ListingStatus{lifecycle.ListingApproved},
		PublishOnOrBefore: &now,
	}), listingKey, func(ctx context.Context, l *lifecycle.Listing) error {
		return c.engine.AdvanceListing(ctx, l.ID, lifecycle.ActionPublishListing)
	})
	if err != nil {
		return err
	}

	err = drain(ctx, r, c.cfg.BatchSize, c.listingPages(ctx, lifecycle.ListingFilter{
		Statuses:          []lifecycle.ListingStatus{lifecycle.ListingActive},
		ExpiresOnOrBefore: &now,
	}), listingKey, func(ctx context.Context, l *lifecycle.Listing) error {
		return c.engine.AdvanceListing(ctx, l.ID, lifecycle.ActionCloseListing)
	})
	if err != nil {
		return err
	}

	horizon := now.Add(c.cfg.ListingReminderLead)
	return drain(ctx, r, c.cfg.BatchSize, c.listingPages(ctx, lifecycle.ListingFilter{
		Statuses:          []lifecycle.ListingStatus{lifecycle.ListingActive},
		ExpiresAfter:      &now,
		ExpiresOnOrBefore: &horizon,
		ReminderDue:       &lifecycle.ReminderDue{Kind: lifecycle.ReminderListingExpiring, Before: now.Add(-c.cfg.ListingReminderEvery)},
	}), listingKey, func(ctx context.Context, l *lifecycle.Listing) error {
		return c.remind(ctx, lifecycle.ReminderListingExpiring, l.ID, now, c.cfg.ListingReminderEvery, lifecycle.Notification{
			RecipientID:   l.CompanyID,
			RecipientRole: lifecycle.RoleCompany,
			Type:          lifecycle.NotifyListingExpiring,
			Title:         "Listing expiring soon",
			Body:          fmt.Sprintf("%s closes on %s.", l.Title, l.ExpiresAt.Format(time.DateOnly)),
			Data:          map[string]string{"listingId": l.ID},
		})
	})
}

// ─── Pass 2: applications ────────────────────────────────────────────────────

func (c *Coordinator) applications(ctx context.Context, r *lifecycle.Report) error {
	now := c.engine.Now()

	err := drain(ctx, r, c.cfg.BatchSize, c.applicationPages(ctx, lifecycle.ApplicationFilter{
		Statuses:       lifecycle.AwaitingCompanyStatuses,
		ValidityBefore: &now,
	}), applicationKey, func(ctx context.Context, a *lifecycle.Application) error {
		_, err := c.engine.ActOnApplication(ctx, lifecycle.System, a.ID, lifecycle.ExpireValidity{})
		return err
	})
	if err != nil {
		return err
	}

	err = drain(ctx, r, c.cfg.BatchSize, c.applicationPages(ctx, lifecycle.ApplicationFilter{
		Statuses:           []lifecycle.ApplicationStatus{lifecycle.ApplicationPendingAcceptance},
		OfferExpiresBefore: &now,
	}), applicationKey, func(ctx context.Context, a *lifecycle.Application) error {
		_, err := c.engine.ActOnApplication(ctx, lifecycle.System, a.ID, lifecycle.ExpireOffer{})
		return err
	})
	if err != nil {
		return err
	}

	horizon := now.Add(c.cfg.OfferReminderLead)
	return drain(ctx, r, c.cfg.BatchSize, c.applicationPages(ctx, lifecycle.ApplicationFilter{
		Statuses:           []lifecycle.ApplicationStatus{lifecycle.ApplicationPendingAcceptance},
		OfferExpiresAfter:  &now,
		OfferExpiresBefore: &horizon,
		OfferNotReminded:   true,
	}), applicationKey, func(ctx context.Context, a *lifecycle.Application) error {
		offer, ok := a.Offer()
		if !ok {
			return lifecycle.ErrNothingToDo
		}
		return c.remind(ctx, lifecycle.ReminderOfferExpiring, a.ID, now, 0, lifecycle.Notification{
			RecipientID:   a.ApplicantID,
			RecipientRole: lifecycle.RoleApplicant,
			Type:          lifecycle.NotifyOfferExpiring,
			Title:         "Your offer expires soon",
			Body:          "Respond before " + offer.ValidUntil.Format(time.RFC1123) + ".",
			Data:          map[string]string{"applicationId": a.ID, "listingId": a.ListingID},
		})
	})
}

// ─── Pass 3: employments ─────────────────────────────────────────────────────

func (c *Coordinator) employments(ctx context.Context, r *lifecycle.Report) error {
	now := c.engine.Now()

	steps := []struct {
		filter lifecycle.EmploymentFilter
		action lifecycle.EmploymentAction
	}{
		{lifecycle.EmploymentFilter{
			Statuses:        []lifecycle.EmploymentStatus{lifecycle.EmploymentUpcoming},
			StartOnOrBefore: &now,
		}, lifecycle.StartOnSchedule{}},
		{lifecycle.EmploymentFilter{
			Statuses:      []lifecycle.EmploymentStatus{lifecycle.EmploymentOngoing},
			EndOnOrBefore: &now,
		}, lifecycle.ReachEnd{}},
		{lifecycle.EmploymentFilter{
			Statuses: []lifecycle.EmploymentStatus{lifecycle.EmploymentClosure},
		}, lifecycle.AutoComplete{}},
	}
	for _, step := range steps {
		err := drain(ctx, r, c.cfg.BatchSize, c.employmentPages(ctx, step.filter), employmentKey,
			func(ctx context.Context, e *lifecycle.Employment) error {
				_, err := c.engine.ActOnEmployment(ctx, lifecycle.System, e.ID, step.action)
				return err
			})
		if err != nil {
			return err
		}
	}
	return nil
}

// ─── Pass 4: weekly timesheet reminder ───────────────────────────────────────

func (c *Coordinator) timesheetReminders(ctx context.Context, r *lifecycle.Report) error {
	now := c.engine.Now()
	return drain(ctx, r, c.cfg.BatchSize, c.employmentPages(ctx, lifecycle.EmploymentFilter{
		Statuses:    []lifecycle.EmploymentStatus{lifecycle.EmploymentOngoing},
		ReminderDue: &lifecycle.ReminderDue{Kind: lifecycle.ReminderTimesheet, Before: now.Add(-c.cfg.WeeklyWindow)},
	}), employmentKey, func(ctx context.Context, e *lifecycle.Employment) error {
		return c.remind(ctx, lifecycle.ReminderTimesheet, e.ID, now, c.cfg.WeeklyWindow, lifecycle.Notification{
			RecipientID:   e.ApplicantID,
			RecipientRole: lifecycle.RoleApplicant,
			Type:          lifecycle.NotifyTimesheetReminder,
			Title:         "Submit your timesheet",
			Body:          "Remember to submit this week's timesheet.",
			Data:          map[string]string{"employmentId": e.ID},
		})
	})
}

// ─── Pass 5: weekly closure reminder ─────────────────────────────────────────

func (c *Coordinator) closureReminders(ctx context.Context, r *lifecycle.Report) error {
	now := c.engine.Now()
	return drain(ctx, r, c.cfg.BatchSize, c.employmentPages(ctx, lifecycle.EmploymentFilter{
		Statuses:    []lifecycle.EmploymentStatus{lifecycle.EmploymentClosure},
		ReminderDue: &lifecycle.ReminderDue{Kind: lifecycle.ReminderClosure, Before: now.Add(-c.cfg.WeeklyWindow)},
	}), employmentKey, func(ctx context.Context, e *lifecycle.Employment) error {
		missing := e.MissingDocs()
		unresolved, err := c.store.HasUnresolvedTimesheets(ctx, e.ID, e.EndDate)
		if err != nil {
			return err
		}
		if len(missing) == 0 && !unresolved {
			return lifecycle.ErrNothingToDo
		}

		var todo []string
		if len(missing) > 0 {
			todo = append(todo, "verify documents: "+strings.Join(missing, ", "))
		}
		if unresolved {
			todo = append(todo, "approve outstanding timesheets")
		}
		return c.remind(ctx, lifecycle.ReminderClosure, e.ID, now, c.cfg.WeeklyWindow, lifecycle.Notification{
			RecipientID:   e.CompanyID,
			RecipientRole: lifecycle.RoleCompany,
			Type:          lifecycle.NotifyClosureReminder,
			Title:         "Internship awaiting closure",
			Body:          "To complete this internship, " + strings.Join(todo, "; ") + ".",
			Data:          map[string]string{"employmentId": e.ID, "applicationId": e.ApplicationID},
		})
	})
}

// remind claims the reminder stamp and, only when the claim is won, emits n.
func (c *Coordinator) remind(ctx context.Context, kind lifecycle.ReminderKind, id string, now time.Time, window time.Duration, n lifecycle.Notification) error {
	won, err := c.store.ClaimReminder(ctx, kind, id, now, window)
	if err != nil {
		return err
	}
	if !won {
		return lifecycle.ErrNothingToDo
	}
	c.engine.Emit(ctx, n)
	return nil
}

func listingKey(l *lifecycle.Listing) lifecycle.Cursor {
	return lifecycle.Cursor{CreatedAt: l.CreatedAt, ID: l.ID}
}

func applicationKey(a *lifecycle.Application) lifecycle.Cursor {
	return lifecycle.Cursor{CreatedAt: a.CreatedAt, ID: a.ID}
}

func employmentKey(e *lifecycle.Employment) lifecycle.Cursor {
	return lifecycle.Cursor{CreatedAt: e.CreatedAt, ID: e.ID}
}
