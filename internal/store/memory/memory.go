// Package memory is an in-process lifecycle.Store.
//
// All records live behind one mutex. InTx holds that mutex for the whole
// callback and restores a snapshot when the callback fails, so a transaction
// is atomic and serialised against every other call.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"jobmate/placement-service/internal/lifecycle"
)

// TimesheetStatus of a weekly timesheet.
type TimesheetStatus string

const (
	TimesheetDraft     TimesheetStatus = "DRAFT"
	TimesheetSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetApproved  TimesheetStatus = "APPROVED"
	TimesheetRejected  TimesheetStatus = "REJECTED"
)

// Timesheet is the slice of a timesheet record the lifecycle reads.
type Timesheet struct {
	ID          string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      TimesheetStatus
}

type state struct {
	listings     map[string]*lifecycle.Listing
	applications map[string]*lifecycle.Application
	employments  map[string]*lifecycle.Employment
	requests     map[string]*lifecycle.Request
	timesheets   map[string][]Timesheet
}

// snapshot copies the maps. Stored records are never mutated in place, so
// sharing the pointers is safe.
func (st *state) snapshot() *state {
	return &state{
		listings:     copyMap(st.listings),
		applications: copyMap(st.applications),
		employments:  copyMap(st.employments),
		requests:     copyMap(st.requests),
		timesheets:   copyMap(st.timesheets),
	}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

type root struct {
	mu sync.Mutex
	st *state
}

// Store implements lifecycle.Store in memory.
type Store struct {
	root *root
	// tx is set on the view handed to an InTx callback; the mutex is
	// already held.
	tx bool
}

var _ lifecycle.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{root: &root{st: &state{
		listings:     map[string]*lifecycle.Listing{},
		applications: map[string]*lifecycle.Application{},
		employments:  map[string]*lifecycle.Employment{},
		requests:     map[string]*lifecycle.Request{},
		timesheets:   map[string][]Timesheet{},
	}}}
}

func (s *Store) lock() func() {
	if s.tx {
		return func() {}
	}
	s.root.mu.Lock()
	return s.root.mu.Unlock
}

// InTx implements lifecycle.Store. Nested calls join the outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx lifecycle.Store) error) error {
	if s.tx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return lifecycle.TransientStore(err, "begin")
	}
	s.root.mu.Lock()
	defer s.root.mu.Unlock()

	saved := s.root.st.snapshot()
	if err := fn(&Store{root: s.root, tx: true}); err != nil {
		s.root.st = saved
		return err
	}
	return nil
}

// ── Listings ────────────────────────────────────────────────────────────────

func (s *Store) CreateListing(_ context.Context, l *lifecycle.Listing) error {
	defer s.lock()()
	if _, ok := s.root.st.listings[l.ID]; ok {
		return lifecycle.DuplicateActive("listing %s already exists", l.ID)
	}
	s.root.st.listings[l.ID] = l.Clone()
	return nil
}

func (s *Store) GetListing(_ context.Context, id string) (*lifecycle.Listing, error) {
	defer s.lock()()
	l, ok := s.root.st.listings[id]
	if !ok {
		return nil, lifecycle.NotFound("listing", id)
	}
	return l.Clone(), nil
}

func (s *Store) ListListings(_ context.Context, f lifecycle.ListingFilter) ([]*lifecycle.Listing, error) {
	defer s.lock()()
	var out []*lifecycle.Listing
	for _, l := range s.root.st.listings {
		if matchListing(l, f) {
			out = append(out, l.Clone())
		}
	}
	return page(out, f.Limit, func(l *lifecycle.Listing) (time.Time, string) { return l.CreatedAt, l.ID }), nil
}

func (s *Store) UpdateListingStatus(_ context.Context, id string, from, to lifecycle.ListingStatus, at time.Time) error {
	defer s.lock()()
	cur, ok := s.root.st.listings[id]
	if !ok {
		return lifecycle.NotFound("listing", id)
	}
	if cur.Status != from {
		return lifecycle.Stale("listing", id)
	}
	next := cur.Clone()
	next.Status = to
	next.UpdatedAt = at
	s.root.st.listings[id] = next
	return nil
}

// ── Applications ────────────────────────────────────────────────────────────

func (s *Store) CreateApplication(_ context.Context, app *lifecycle.Application) error {
	defer s.lock()()
	if _, ok := s.root.st.applications[app.ID]; ok {
		return lifecycle.DuplicateActive("application %s already exists", app.ID)
	}
	if app.Status.IsActive() {
		for _, other := range s.root.st.applications {
			if other.ApplicantID == app.ApplicantID && other.ListingID == app.ListingID && other.Status.IsActive() {
				return lifecycle.DuplicateActive("applicant %s already has active application %s on listing %s",
					app.ApplicantID, other.ID, app.ListingID)
			}
		}
	}
	s.root.st.applications[app.ID] = app.Clone()
	return nil
}

func (s *Store) GetApplication(_ context.Context, id string) (*lifecycle.Application, error) {
	defer s.lock()()
	app, ok := s.root.st.applications[id]
	if !ok {
		return nil, lifecycle.NotFound("application", id)
	}
	return app.Clone(), nil
}

func (s *Store) ListApplications(_ context.Context, f lifecycle.ApplicationFilter) ([]*lifecycle.Application, error) {
	defer s.lock()()
	var out []*lifecycle.Application
	for _, app := range s.root.st.applications {
		if matchApplication(app, f) {
			out = append(out, app.Clone())
		}
	}
	return page(out, f.Limit, func(a *lifecycle.Application) (time.Time, string) { return a.CreatedAt, a.ID }), nil
}

func (s *Store) UpdateApplication(_ context.Context, app *lifecycle.Application, prev lifecycle.ApplicationStatus, _ lifecycle.HistoryEntry) error {
	defer s.lock()()
	cur, ok := s.root.st.applications[app.ID]
	if !ok {
		return lifecycle.NotFound("application", app.ID)
	}
	if cur.Status != prev || cur.Version != app.Version {
		return lifecycle.Stale("application", app.ID)
	}
	app.Version++
	next := app.Clone()
	next.OfferRemindedAt = clonePtr(cur.OfferRemindedAt)
	s.root.st.applications[app.ID] = next
	return nil
}

// ── Employments ─────────────────────────────────────────────────────────────

func (s *Store) CreateEmployment(_ context.Context, emp *lifecycle.Employment) error {
	defer s.lock()()
	for _, other := range s.root.st.employments {
		if other.ApplicationID == emp.ApplicationID {
			return lifecycle.DuplicateActive("application %s already has employment %s", emp.ApplicationID, other.ID)
		}
	}
	s.root.st.employments[emp.ID] = emp.Clone()
	return nil
}

func (s *Store) GetEmployment(_ context.Context, id string) (*lifecycle.Employment, error) {
	defer s.lock()()
	emp, ok := s.root.st.employments[id]
	if !ok {
		return nil, lifecycle.NotFound("employment", id)
	}
	return emp.Clone(), nil
}

func (s *Store) GetEmploymentByApplication(_ context.Context, applicationID string) (*lifecycle.Employment, error) {
	defer s.lock()()
	for _, emp := range s.root.st.employments {
		if emp.ApplicationID == applicationID {
			return emp.Clone(), nil
		}
	}
	return nil, lifecycle.NotFound("employment for application", applicationID)
}

func (s *Store) ListEmployments(_ context.Context, f lifecycle.EmploymentFilter) ([]*lifecycle.Employment, error) {
	defer s.lock()()
	var out []*lifecycle.Employment
	for _, emp := range s.root.st.employments {
		if matchEmployment(emp, f) {
			out = append(out, emp.Clone())
		}
	}
	return page(out, f.Limit, func(e *lifecycle.Employment) (time.Time, string) { return e.CreatedAt, e.ID }), nil
}

func (s *Store) UpdateEmployment(_ context.Context, emp *lifecycle.Employment, prev lifecycle.EmploymentStatus) error {
	defer s.lock()()
	cur, ok := s.root.st.employments[emp.ID]
	if !ok {
		return lifecycle.NotFound("employment", emp.ID)
	}
	if cur.Status != prev || cur.Version != emp.Version {
		return lifecycle.Stale("employment", emp.ID)
	}
	emp.Version++
	next := emp.Clone()
	next.TimesheetRemindedAt = clonePtr(cur.TimesheetRemindedAt)
	next.ClosureRemindedAt = clonePtr(cur.ClosureRemindedAt)
	s.root.st.employments[emp.ID] = next
	return nil
}

// ── Requests ────────────────────────────────────────────────────────────────

func (s *Store) CreateRequest(_ context.Context, req *lifecycle.Request) error {
	defer s.lock()()
	if _, ok := s.root.st.employments[req.EmploymentID]; !ok {
		return lifecycle.NotFound("employment", req.EmploymentID)
	}
	for _, other := range s.root.st.requests {
		if other.EmploymentID == req.EmploymentID && other.Kind == req.Kind && other.Status == lifecycle.RequestPending {
			return lifecycle.DuplicateActive("employment %s already has pending %s request %s",
				req.EmploymentID, req.Kind, other.ID)
		}
	}
	s.root.st.requests[req.ID] = req.Clone()
	return nil
}

func (s *Store) GetRequest(_ context.Context, id string) (*lifecycle.Request, error) {
	defer s.lock()()
	req, ok := s.root.st.requests[id]
	if !ok {
		return nil, lifecycle.NotFound("request", id)
	}
	return req.Clone(), nil
}

func (s *Store) ListRequests(_ context.Context, employmentID string) ([]*lifecycle.Request, error) {
	defer s.lock()()
	var out []*lifecycle.Request
	for _, req := range s.root.st.requests {
		if req.EmploymentID == employmentID {
			out = append(out, req.Clone())
		}
	}
	return page(out, 0, func(r *lifecycle.Request) (time.Time, string) { return r.CreatedAt, r.ID }), nil
}

func (s *Store) UpdateRequest(_ context.Context, req *lifecycle.Request, prev lifecycle.RequestStatus) error {
	defer s.lock()()
	cur, ok := s.root.st.requests[req.ID]
	if !ok {
		return lifecycle.NotFound("request", req.ID)
	}
	if cur.Status != prev {
		return lifecycle.Stale("request", req.ID)
	}
	s.root.st.requests[req.ID] = req.Clone()
	return nil
}

// ── Reminders & timesheets ──────────────────────────────────────────────────

func (s *Store) ClaimReminder(_ context.Context, kind lifecycle.ReminderKind, id string, at time.Time, window time.Duration) (bool, error) {
	defer s.lock()()
	due := func(stamp *time.Time) bool {
		return stamp == nil || (window > 0 && !stamp.After(at.Add(-window)))
	}
	st := s.root.st
	switch kind {
	case lifecycle.ReminderOfferExpiring:
		app, ok := st.applications[id]
		if !ok {
			return false, lifecycle.NotFound("application", id)
		}
		if !due(app.OfferRemindedAt) {
			return false, nil
		}
		next := app.Clone()
		next.OfferRemindedAt = &at
		st.applications[id] = next
	case lifecycle.ReminderListingExpiring:
		l, ok := st.listings[id]
		if !ok {
			return false, lifecycle.NotFound("listing", id)
		}
		if !due(l.LastExpiryReminderAt) {
			return false, nil
		}
		next := l.Clone()
		next.LastExpiryReminderAt = &at
		st.listings[id] = next
	case lifecycle.ReminderTimesheet, lifecycle.ReminderClosure:
		emp, ok := st.employments[id]
		if !ok {
			return false, lifecycle.NotFound("employment", id)
		}
		stamp := emp.TimesheetRemindedAt
		if kind == lifecycle.ReminderClosure {
			stamp = emp.ClosureRemindedAt
		}
		if !due(stamp) {
			return false, nil
		}
		next := emp.Clone()
		if kind == lifecycle.ReminderClosure {
			next.ClosureRemindedAt = &at
		} else {
			next.TimesheetRemindedAt = &at
		}
		st.employments[id] = next
	default:
		return false, lifecycle.TransientStore(errUnknownReminder(kind), "claim reminder")
	}
	return true, nil
}

func (s *Store) HasUnresolvedTimesheets(_ context.Context, employmentID string, until time.Time) (bool, error) {
	defer s.lock()()
	for _, ts := range s.root.st.timesheets[employmentID] {
		if !ts.PeriodEnd.After(until) && ts.Status != TimesheetApproved {
			return true, nil
		}
	}
	return false, nil
}

// PutTimesheet inserts or replaces a timesheet of employmentID.
func (s *Store) PutTimesheet(employmentID string, ts Timesheet) {
	defer s.lock()()
	list := slices.Clone(s.root.st.timesheets[employmentID])
	if i := slices.IndexFunc(list, func(t Timesheet) bool { return t.ID == ts.ID }); i >= 0 {
		list[i] = ts
	} else {
		list = append(list, ts)
	}
	s.root.st.timesheets[employmentID] = list
}

// ── helpers ─────────────────────────────────────────────────────────────────

// page orders records oldest first and applies limit when positive.
func page[T any](items []T, limit int, key func(T) (time.Time, string)) []T {
	slices.SortFunc(items, func(a, b T) int {
		ta, ia := key(a)
		tb, ib := key(b)
		if c := ta.Compare(tb); c != 0 {
			return c
		}
		return cmp.Compare(ia, ib)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
