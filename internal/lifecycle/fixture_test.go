package lifecycle_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/notify"
	"jobmate/placement-service/internal/store/memory"
)

var (
	student = lifecycle.Actor{ID: "stu-1", Role: lifecycle.RoleApplicant}
	other   = lifecycle.Actor{ID: "stu-2", Role: lifecycle.RoleApplicant}
	company = lifecycle.Actor{ID: "co-1", Role: lifecycle.RoleCompany}
	rival   = lifecycle.Actor{ID: "co-2", Role: lifecycle.RoleCompany}
	admin   = lifecycle.Actor{ID: "adm-1", Role: lifecycle.RoleAdmin}
)

// manualClock is a lifecycle.Clock moved by hand.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	t      *testing.T
	ctx    context.Context
	clock  *manualClock
	store  *memory.Store
	sent   *notify.Recorder
	engine *lifecycle.Engine
}

var epoch = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:     t,
		ctx:   context.Background(),
		clock: &manualClock{now: epoch},
		store: memory.New(),
		sent:  &notify.Recorder{},
	}
	f.engine = lifecycle.NewEngine(f.store, f.sent, f.clock, lifecycle.DefaultPolicy(), zaptest.NewLogger(t).Sugar())
	return f
}

// listing stores an ACTIVE listing of company starting at start.
func (f *fixture) listing(id string, start time.Time, docs ...string) *lifecycle.Listing {
	f.t.Helper()
	l := &lifecycle.Listing{
		ID:           id,
		CompanyID:    company.ID,
		Title:        "Backend intern",
		Status:       lifecycle.ListingActive,
		ExpiresAt:    f.clock.Now().Add(60 * 24 * time.Hour),
		StartDate:    start,
		EndDate:      start.Add(90 * 24 * time.Hour),
		RequiredDocs: docs,
		CreatedAt:    f.clock.Now(),
		UpdatedAt:    f.clock.Now(),
	}
	require.NoError(f.t, f.store.CreateListing(f.ctx, l))
	return l
}

func (f *fixture) apply(actor lifecycle.Actor, listingID string) *lifecycle.Application {
	f.t.Helper()
	app, err := f.engine.Apply(f.ctx, actor, listingID)
	require.NoError(f.t, err)
	return app
}

func (f *fixture) act(actor lifecycle.Actor, id string, action lifecycle.ApplicationAction) *lifecycle.Application {
	f.t.Helper()
	app, err := f.engine.ActOnApplication(f.ctx, actor, id, action)
	require.NoError(f.t, err)
	return app
}

// offered walks a fresh application of student to PENDING_ACCEPTANCE.
func (f *fixture) offered(listingID string) *lifecycle.Application {
	f.t.Helper()
	app := f.apply(student, listingID)
	f.act(company, app.ID, lifecycle.Shortlist{})
	return f.act(company, app.ID, lifecycle.SendOffer{LetterKey: "offers/letter.pdf"})
}

// hired returns the employment spawned by accepting an offer on listingID.
func (f *fixture) hired(listingID string) (*lifecycle.Application, *lifecycle.Employment) {
	f.t.Helper()
	app := f.offered(listingID)
	app = f.act(student, app.ID, lifecycle.AcceptOffer{})
	emp, err := f.engine.GetEmploymentByApplication(f.ctx, admin, app.ID)
	require.NoError(f.t, err)
	return app, emp
}

func (f *fixture) employment(actor lifecycle.Actor, id string, action lifecycle.EmploymentAction) *lifecycle.Employment {
	f.t.Helper()
	emp, err := f.engine.ActOnEmployment(f.ctx, actor, id, action)
	require.NoError(f.t, err)
	return emp
}

func (f *fixture) reload(id string) *lifecycle.Application {
	f.t.Helper()
	app, err := f.store.GetApplication(f.ctx, id)
	require.NoError(f.t, err)
	return app
}

func (f *fixture) reloadEmployment(id string) *lifecycle.Employment {
	f.t.Helper()
	emp, err := f.store.GetEmployment(f.ctx, id)
	require.NoError(f.t, err)
	return emp
}
