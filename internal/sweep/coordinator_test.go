package sweep_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/notify"
	"jobmate/placement-service/internal/store/memory"
	"jobmate/placement-service/internal/sweep"
)

const day = 24 * time.Hour

var (
	epoch   = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	student = lifecycle.Actor{ID: "stu-1", Role: lifecycle.RoleApplicant}
	company = lifecycle.Actor{ID: "co-1", Role: lifecycle.RoleCompany}
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type env struct {
	t       *testing.T
	ctx     context.Context
	clock   *clock
	store   *memory.Store
	sent    *notify.Recorder
	engine  *lifecycle.Engine
	metrics *sweep.Metrics
	sweeper *sweep.Coordinator
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return newEnvWith(t, sweep.DefaultConfig())
}

func newEnvWith(t *testing.T, cfg sweep.Config) *env {
	t.Helper()
	log := zaptest.NewLogger(t).Sugar()
	e := &env{
		t:       t,
		ctx:     context.Background(),
		clock:   &clock{now: epoch},
		store:   memory.New(),
		sent:    &notify.Recorder{},
		metrics: sweep.NewMetrics(prometheus.NewRegistry()),
	}
	e.engine = lifecycle.NewEngine(e.store, e.sent, e.clock, lifecycle.DefaultPolicy(), log)
	e.sweeper = sweep.NewCoordinator(e.engine, e.store, cfg, e.metrics, log)
	return e
}

func (e *env) listing(id string, status lifecycle.ListingStatus, mutate func(*lifecycle.Listing)) {
	e.t.Helper()
	now := e.clock.Now()
	l := &lifecycle.Listing{
		ID: id, CompanyID: company.ID, Title: "Data intern " + id, Status: status,
		ExpiresAt: now.Add(60 * day), StartDate: now.Add(2 * day), EndDate: now.Add(92 * day),
		CreatedAt: now, UpdatedAt: now,
	}
	if mutate != nil {
		mutate(l)
	}
	require.NoError(e.t, e.store.CreateListing(e.ctx, l))
}

func (e *env) act(actor lifecycle.Actor, id string, action lifecycle.ApplicationAction) *lifecycle.Application {
	e.t.Helper()
	app, err := e.engine.ActOnApplication(e.ctx, actor, id, action)
	require.NoError(e.t, err)
	return app
}

func (e *env) run(pass sweep.Pass) *lifecycle.Report {
	e.t.Helper()
	r, err := e.sweeper.Run(e.ctx, pass)
	require.NoError(e.t, err)
	require.NoError(e.t, r.Err())
	return r
}

// hired returns the employment of an accepted offer on listing id.
func (e *env) hired(id string) *lifecycle.Employment {
	e.t.Helper()
	app, err := e.engine.Apply(e.ctx, student, id)
	require.NoError(e.t, err)
	e.act(company, app.ID, lifecycle.Shortlist{})
	e.act(company, app.ID, lifecycle.SendOffer{})
	e.act(student, app.ID, lifecycle.AcceptOffer{})
	emp, err := e.store.GetEmploymentByApplication(e.ctx, app.ID)
	require.NoError(e.t, err)
	return emp
}

func (e *env) status(id string) lifecycle.EmploymentStatus {
	e.t.Helper()
	emp, err := e.store.GetEmployment(e.ctx, id)
	require.NoError(e.t, err)
	return emp.Status
}

func TestExpiredOffer_RejectedByApplicant(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, nil)

	app, err := e.engine.Apply(e.ctx, student, "job-1")
	require.NoError(t, err)
	e.act(company, app.ID, lifecycle.Shortlist{})
	past := e.clock.Now().Add(-time.Minute)
	e.act(company, app.ID, lifecycle.SendOffer{ValidUntil: &past})

	r := e.run(sweep.PassApplications)
	assert.Equal(t, 1, r.Applied)

	got, err := e.store.GetApplication(e.ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ApplicationRejected, got.Status)
	rej, ok := got.Rejection()
	require.True(t, ok)
	assert.Equal(t, lifecycle.RoleApplicant, rej.By)
	assert.Len(t, e.sent.OfType(lifecycle.NotifyOfferExpired), 2)

	_, err = e.engine.ActOnApplication(e.ctx, company, app.ID, lifecycle.SendOffer{})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestApplications_ValidityExpiry(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, nil)
	app, err := e.engine.Apply(e.ctx, student, "job-1")
	require.NoError(t, err)

	r := e.run(sweep.PassApplications)
	assert.Zero(t, r.Candidates, "still valid")

	e.clock.Advance(14*day + time.Second)
	r = e.run(sweep.PassApplications)
	assert.Equal(t, 1, r.Applied)

	got, err := e.store.GetApplication(e.ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ApplicationRejected, got.Status)
	rej, _ := got.Rejection()
	assert.Equal(t, lifecycle.RoleCompany, rej.By)
}

func TestApplications_IdempotentWithOfferReminder(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, nil)
	e.listing("job-2", lifecycle.ListingActive, nil)

	soon := e.clock.Now().Add(12 * time.Hour)
	app, err := e.engine.Apply(e.ctx, student, "job-1")
	require.NoError(t, err)
	e.act(company, app.ID, lifecycle.Shortlist{})
	e.act(company, app.ID, lifecycle.SendOffer{ValidUntil: &soon})

	past := e.clock.Now().Add(-time.Minute)
	lapsed, err := e.engine.Apply(e.ctx, student, "job-2")
	require.NoError(t, err)
	e.act(company, lapsed.ID, lifecycle.Shortlist{})
	e.act(company, lapsed.ID, lifecycle.SendOffer{ValidUntil: &past})

	e.run(sweep.PassApplications)
	first := len(e.sent.Sent())
	assert.Len(t, e.sent.OfType(lifecycle.NotifyOfferExpiring), 1)

	r := e.run(sweep.PassApplications)
	assert.Zero(t, r.Applied)
	assert.Len(t, e.sent.Sent(), first, "a second run sends nothing")

	got, err := e.store.GetApplication(e.ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ApplicationPendingAcceptance, got.Status)
}

func TestListings_PublishCloseRemind(t *testing.T) {
	e := newEnv(t)
	now := e.clock.Now()
	e.listing("due", lifecycle.ListingApproved, func(l *lifecycle.Listing) {
		at := now.Add(-time.Hour)
		l.PublishAt = &at
	})
	e.listing("later", lifecycle.ListingApproved, func(l *lifecycle.Listing) {
		at := now.Add(day)
		l.PublishAt = &at
	})
	e.listing("stale", lifecycle.ListingActive, func(l *lifecycle.Listing) { l.ExpiresAt = now.Add(-time.Minute) })
	e.listing("expiring", lifecycle.ListingActive, func(l *lifecycle.Listing) { l.ExpiresAt = now.Add(3 * day) })

	e.run(sweep.PassListings)

	for id, want := range map[string]lifecycle.ListingStatus{
		"due":      lifecycle.ListingActive,
		"later":    lifecycle.ListingApproved,
		"stale":    lifecycle.ListingClosed,
		"expiring": lifecycle.ListingActive,
	} {
		l, err := e.store.GetListing(e.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, l.Status, id)
	}
	assert.Len(t, e.sent.OfType(lifecycle.NotifyListingPublished), 1)
	assert.Len(t, e.sent.OfType(lifecycle.NotifyListingClosed), 1)
	assert.Len(t, e.sent.OfType(lifecycle.NotifyListingExpiring), 1)

	e.run(sweep.PassListings)
	assert.Len(t, e.sent.OfType(lifecycle.NotifyListingExpiring), 1, "reminded at most once a day")

	e.clock.Advance(day + time.Minute)
	e.run(sweep.PassListings)
	assert.Len(t, e.sent.OfType(lifecycle.NotifyListingExpiring), 2)
}

func TestEmployments_FollowTheCalendar(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, func(l *lifecycle.Listing) { l.RequiredDocs = []string{"contract"} })
	emp := e.hired("job-1")
	require.Equal(t, lifecycle.EmploymentUpcoming, emp.Status)

	r := e.run(sweep.PassEmployments)
	assert.Zero(t, r.Applied)

	e.clock.Advance(2 * day)
	e.run(sweep.PassEmployments)
	assert.Equal(t, lifecycle.EmploymentOngoing, e.status(emp.ID))

	e.clock.Advance(90 * day)
	r = e.run(sweep.PassEmployments)
	assert.Equal(t, lifecycle.EmploymentClosure, e.status(emp.ID))
	assert.Equal(t, 1, r.Applied)
	assert.Equal(t, 1, r.Skipped, "auto-complete waits for the documents")

	_, err := e.engine.ActOnEmployment(e.ctx, student, emp.ID, lifecycle.AttachDoc{Type: "contract", FileRef: "c.pdf"})
	require.NoError(t, err)
	_, err = e.engine.ActOnEmployment(e.ctx, company, emp.ID, lifecycle.VerifyDoc{Type: "contract"})
	require.NoError(t, err)

	e.run(sweep.PassEmployments)
	assert.Equal(t, lifecycle.EmploymentCompleted, e.status(emp.ID))

	r = e.run(sweep.PassEmployments)
	assert.Zero(t, r.Candidates)
}

// closing hires the student on a fresh listing and closes the internship at
// the current instant, leaving the employment in CLOSURE.
func (e *env) closing(id string, docs ...string) *lifecycle.Employment {
	e.t.Helper()
	now := e.clock.Now()
	e.listing(id, lifecycle.ListingActive, func(l *lifecycle.Listing) {
		l.StartDate = now.Add(-day)
		l.RequiredDocs = docs
	})
	emp := e.hired(id)
	_, err := e.engine.ActOnEmployment(e.ctx, company, emp.ID, lifecycle.CloseEarly{EndDate: now})
	require.NoError(e.t, err)
	require.Equal(e.t, lifecycle.EmploymentClosure, e.status(emp.ID))
	return emp
}

func TestEmployments_BlockedClosureDoesNotStarveNewer(t *testing.T) {
	cfg := sweep.DefaultConfig()
	cfg.BatchSize = 1
	e := newEnvWith(t, cfg)

	blocked := e.closing("job-1", "contract")
	e.clock.Advance(time.Minute)
	ready := e.closing("job-2")

	r := e.run(sweep.PassEmployments)
	assert.Equal(t, lifecycle.EmploymentClosure, e.status(blocked.ID))
	assert.Equal(t, lifecycle.EmploymentCompleted, e.status(ready.ID))
	assert.Equal(t, 2, r.Candidates)
	assert.Equal(t, 1, r.Applied)
	assert.Equal(t, 1, r.Skipped)
}

func TestClosureReminders_PagesPastSettledRecords(t *testing.T) {
	cfg := sweep.DefaultConfig()
	cfg.BatchSize = 1
	e := newEnvWith(t, cfg)

	e.closing("job-1")
	e.clock.Advance(time.Minute)
	e.closing("job-2")
	e.clock.Advance(time.Minute)
	waiting := e.closing("job-3", "report")

	r := e.run(sweep.PassClosureReminder)
	assert.Equal(t, 3, r.Candidates)
	assert.Equal(t, 2, r.Skipped)
	sent := e.sent.OfType(lifecycle.NotifyClosureReminder)
	require.Len(t, sent, 1)
	assert.Equal(t, waiting.ID, sent[0].Data["employmentId"])
}

func TestTimesheetReminders_Weekly(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, func(l *lifecycle.Listing) { l.StartDate = epoch.Add(-day) })
	emp := e.hired("job-1")
	require.Equal(t, lifecycle.EmploymentOngoing, emp.Status)

	e.run(sweep.PassTimesheetReminder)
	e.run(sweep.PassTimesheetReminder)
	reminders := e.sent.OfType(lifecycle.NotifyTimesheetReminder)
	require.Len(t, reminders, 1)
	assert.Equal(t, student.ID, reminders[0].RecipientID)

	e.clock.Advance(7 * day)
	e.run(sweep.PassTimesheetReminder)
	assert.Len(t, e.sent.OfType(lifecycle.NotifyTimesheetReminder), 2)
}

func TestClosureReminders(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, func(l *lifecycle.Listing) {
		l.StartDate = epoch.Add(-day)
		l.RequiredDocs = []string{"report"}
	})
	emp := e.hired("job-1")
	_, err := e.engine.ActOnEmployment(e.ctx, company, emp.ID, lifecycle.CloseEarly{EndDate: epoch})
	require.NoError(t, err)

	e.run(sweep.PassClosureReminder)
	e.run(sweep.PassClosureReminder)
	sent := e.sent.OfType(lifecycle.NotifyClosureReminder)
	require.Len(t, sent, 1)
	assert.Equal(t, company.ID, sent[0].RecipientID)
	assert.Contains(t, sent[0].Body, "report")
}

func TestClosureReminders_NothingOutstanding(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, func(l *lifecycle.Listing) { l.StartDate = epoch.Add(-day) })
	emp := e.hired("job-1")
	_, err := e.engine.ActOnEmployment(e.ctx, company, emp.ID, lifecycle.CloseEarly{EndDate: epoch})
	require.NoError(t, err)

	r := e.run(sweep.PassClosureReminder)
	assert.Equal(t, 1, r.Skipped)
	assert.Empty(t, e.sent.OfType(lifecycle.NotifyClosureReminder))

	e.store.PutTimesheet(emp.ID, memory.Timesheet{ID: "w1", PeriodEnd: epoch.Add(-time.Hour), Status: memory.TimesheetSubmitted})
	e.run(sweep.PassClosureReminder)
	sent := e.sent.OfType(lifecycle.NotifyClosureReminder)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Body, "timesheets")
}

func TestRun_Metrics(t *testing.T) {
	e := newEnv(t)
	e.listing("job-1", lifecycle.ListingActive, nil)
	app, err := e.engine.Apply(e.ctx, student, "job-1")
	require.NoError(t, err)
	e.act(company, app.ID, lifecycle.Shortlist{})
	past := e.clock.Now().Add(-time.Minute)
	e.act(company, app.ID, lifecycle.SendOffer{ValidUntil: &past})

	e.run(sweep.PassApplications)
	e.run(sweep.PassApplications)

	assert.Equal(t, 2.0, testutil.ToFloat64(e.metrics.Runs.WithLabelValues("applications")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Records.WithLabelValues("applications", "applied")))
	assert.Equal(t, 0.0, testutil.ToFloat64(e.metrics.Records.WithLabelValues("applications", "failed")))
}

func TestRunAll(t *testing.T) {
	e := newEnv(t)
	reports, err := e.sweeper.RunAll(e.ctx)
	require.NoError(t, err)
	require.Len(t, reports, len(sweep.Passes))
	for i, r := range reports {
		assert.Equal(t, string(sweep.Passes[i]), r.Pass)
	}

	_, err = e.sweeper.Run(e.ctx, "vacuum")
	assert.Error(t, err)
}

func TestParsePass(t *testing.T) {
	p, err := sweep.ParsePass("closure-reminders")
	require.NoError(t, err)
	assert.Equal(t, sweep.PassClosureReminder, p)

	_, err = sweep.ParsePass("Listings")
	assert.ErrorContains(t, err, "want one of")
}
