package lifecycle_test

import (
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/placement-service/internal/lifecycle"
)

const day = 24 * time.Hour

func TestApply_StartsNewWithValidityWindow(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))

	app := f.apply(student, "job-1")

	assert.Equal(t, lifecycle.ApplicationNew, app.Status)
	assert.Equal(t, company.ID, app.CompanyID)
	assert.Equal(t, epoch.Add(14*day), app.ValidityUntil)
	assert.False(t, app.ValidityExtended)
	require.Len(t, app.History, 1)
	assert.Equal(t, "apply", app.History[0].Action)

	received := f.sent.OfType(lifecycle.NotifyApplicationReceived)
	require.Len(t, received, 1)
	assert.Equal(t, company.ID, received[0].RecipientID)
}

func TestApply_DuplicateActive(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))

	first := f.apply(student, "job-1")
	_, err := f.engine.Apply(f.ctx, student, "job-1")
	require.ErrorIs(t, err, lifecycle.ErrDuplicateActive)
	assert.Equal(t, lifecycle.KindDuplicateActive, lifecycle.Kind(err))

	// Another applicant is unaffected.
	f.apply(other, "job-1")

	// Once the first one is no longer active the pair is free again.
	f.act(student, first.ID, lifecycle.Withdraw{})
	f.apply(student, "job-1")
}

func TestApply_DuplicateWhilePendingAcceptance(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	f.offered("job-1")

	_, err := f.engine.Apply(f.ctx, student, "job-1")
	assert.ErrorIs(t, err, lifecycle.ErrDuplicateActive)
}

func TestApply_Guards(t *testing.T) {
	f := newFixture(t)
	l := f.listing("job-1", epoch.Add(30*day))

	_, err := f.engine.Apply(f.ctx, company, l.ID)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "companies cannot apply")

	_, err = f.engine.Apply(f.ctx, student, "missing")
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)

	closed := f.listing("job-2", epoch.Add(30*day))
	require.NoError(t, f.store.UpdateListingStatus(f.ctx, closed.ID, lifecycle.ListingActive, lifecycle.ListingClosed, epoch))
	_, err = f.engine.Apply(f.ctx, student, closed.ID)
	assert.ErrorIs(t, err, lifecycle.ErrGuardViolation)
}

func TestReject_RequiresReason(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.apply(student, "job-1")

	_, err := f.engine.ActOnApplication(f.ctx, company, app.ID, lifecycle.Reject{Reason: "   "})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)
	assert.Equal(t, lifecycle.ApplicationNew, f.reload(app.ID).Status, "failed guard must not persist")

	got := f.act(company, app.ID, lifecycle.Reject{Reason: "position filled"})
	assert.Equal(t, lifecycle.ApplicationRejected, got.Status)
	rej, ok := got.Rejection()
	require.True(t, ok)
	assert.Equal(t, lifecycle.RejectionStage{By: lifecycle.RoleCompany, Reason: "position filled"}, rej)

	rejected := f.sent.OfType(lifecycle.NotifyApplicationRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, student.ID, rejected[0].RecipientID)
}

func TestExtendValidity_OnlyOnce(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.apply(student, "job-1")

	f.clock.Advance(day)
	got := f.act(student, app.ID, lifecycle.ExtendValidity{})
	assert.True(t, got.ValidityExtended)
	assert.Equal(t, epoch.Add(28*day), got.ValidityUntil, "extends from the current deadline")

	_, err := f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.ExtendValidity{})
	assert.ErrorIs(t, err, lifecycle.ErrGuardViolation)
	assert.Equal(t, epoch.Add(28*day), f.reload(app.ID).ValidityUntil)
}

func TestInterviewFlow(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.apply(student, "job-1")
	f.act(company, app.ID, lifecycle.Shortlist{})

	_, err := f.engine.ActOnApplication(f.ctx, company, app.ID, lifecycle.ScheduleInterview{Location: "HQ"})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation, "interview time is required")

	at := epoch.Add(2 * day)
	got := f.act(company, app.ID, lifecycle.ScheduleInterview{At: at, Location: "HQ"})
	iv, ok := got.Interview()
	require.True(t, ok)
	assert.Equal(t, at, iv.At)
	assert.Equal(t, "HQ", iv.Location)

	got = f.act(student, app.ID, lifecycle.DeclineInterview{Reason: "exam"})
	assert.Equal(t, lifecycle.ApplicationShortlisted, got.Status)
	_, ok = got.Interview()
	assert.False(t, ok, "interview payload is dropped on leaving the state")
	assert.Equal(t, "outcome: declined; exam", got.History[len(got.History)-1].Note)

	f.act(company, app.ID, lifecycle.ScheduleInterview{At: at.Add(day)})
	got = f.act(company, app.ID, lifecycle.MarkNoShow{})
	assert.Equal(t, lifecycle.ApplicationNotAttending, got.Status)
}

func TestActOnApplication_RoleAndVisibility(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.apply(student, "job-1")

	_, err := f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.Shortlist{})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "applicant cannot shortlist")

	_, err = f.engine.ActOnApplication(f.ctx, rival, app.ID, lifecycle.Shortlist{})
	assert.ErrorIs(t, err, lifecycle.ErrNotFound, "other companies do not see the application")

	_, err = f.engine.ActOnApplication(f.ctx, company, app.ID, lifecycle.ExpireValidity{})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "sweep-only actions need the system actor")

	_, err = f.engine.GetApplication(f.ctx, other, app.ID)
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestDeclineOffer_ReasonPolicy(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	f.listing("job-2", epoch.Add(30*day))

	byStudent := f.offered("job-1")
	got := f.act(student, byStudent.ID, lifecycle.DeclineOffer{})
	rej, ok := got.Rejection()
	require.True(t, ok)
	assert.Equal(t, lifecycle.RoleApplicant, rej.By)
	assert.Equal(t, "offer declined by applicant", rej.Reason)

	byCompany := f.offered("job-2")
	_, err := f.engine.ActOnApplication(f.ctx, company, byCompany.ID, lifecycle.DeclineOffer{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)

	got = f.act(company, byCompany.ID, lifecycle.DeclineOffer{Reason: "budget cut"})
	rej, _ = got.Rejection()
	assert.Equal(t, lifecycle.RejectionStage{By: lifecycle.RoleCompany, Reason: "budget cut"}, rej)
}

func TestSendOffer_DefaultWindow(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))

	app := f.offered("job-1")
	offer, ok := app.Offer()
	require.True(t, ok)
	assert.Equal(t, epoch, offer.SentAt)
	assert.Equal(t, epoch.Add(7*day), offer.ValidUntil)
	assert.Equal(t, "offers/letter.pdf", offer.LetterKey)
	assert.Len(t, f.sent.OfType(lifecycle.NotifyOfferSent), 1)
}

// ── Accept offer ───────────────────────────────────────────────────────────

func TestAcceptOffer_SpawnsEmployment(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		want  lifecycle.EmploymentStatus
	}{
		{"future start", epoch.Add(30 * day), lifecycle.EmploymentUpcoming},
		{"past start", epoch.Add(-day), lifecycle.EmploymentOngoing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			l := f.listing("job-1", tc.start, "contract")

			app, emp := f.hired("job-1")
			assert.Equal(t, lifecycle.ApplicationAccepted, app.Status)
			assert.Equal(t, app.ID, emp.ApplicationID)
			assert.Equal(t, tc.want, emp.Status)
			assert.Equal(t, l.StartDate, emp.StartDate)
			assert.Equal(t, l.EndDate, emp.EndDate)
			assert.Equal(t, []string{"contract"}, emp.RequiredDocs)

			all, err := f.engine.ListEmployments(f.ctx, admin, lifecycle.EmploymentFilter{})
			require.NoError(t, err)
			assert.Len(t, all, 1)
			assert.Len(t, f.sent.OfType(lifecycle.NotifyOfferAccepted), 1)
		})
	}
}

func TestAcceptOffer_TwiceCreatesOneEmployment(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.offered("job-1")

	f.act(student, app.ID, lifecycle.AcceptOffer{})
	_, err := f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.AcceptOffer{})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

	all, err := f.engine.ListEmployments(f.ctx, admin, lifecycle.EmploymentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAcceptOffer_RaceCreatesOneEmployment(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.offered("job-1")

	const racers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
		errs []error
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.AcceptOffer{})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else {
				errs = append(errs, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	for _, err := range errs {
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	}
	all, err := f.engine.ListEmployments(f.ctx, admin, lifecycle.EmploymentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAcceptOffer_AfterExpiry(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.offered("job-1")

	f.clock.Advance(7*day + time.Minute)
	_, err := f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.AcceptOffer{})
	assert.ErrorIs(t, err, lifecycle.ErrGuardViolation)
	assert.Equal(t, lifecycle.ApplicationPendingAcceptance, f.reload(app.ID).Status)
}

// A lost conditional update is reported as stale and as an invalid transition.
func TestUpdate_StaleVersion(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app := f.apply(student, "job-1")

	old := f.reload(app.ID)
	f.act(company, app.ID, lifecycle.Shortlist{})

	err := f.store.UpdateApplication(f.ctx, old, lifecycle.ApplicationNew, lifecycle.HistoryEntry{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lifecycle.ErrStale))
	assert.True(t, errors.Is(err, lifecycle.ErrInvalidTransition))
}

// ── Withdraw ───────────────────────────────────────────────────────────────

func TestWithdraw_AcceptedTerminatesLiveEmployment(t *testing.T) {
	for _, start := range []time.Time{epoch.Add(30 * day), epoch.Add(-day)} {
		f := newFixture(t)
		f.listing("job-1", start)
		app, emp := f.hired("job-1")

		got := f.act(student, app.ID, lifecycle.Withdraw{Reason: "moving abroad"})
		assert.Equal(t, lifecycle.ApplicationWithdrawn, got.Status)

		after := f.reloadEmployment(emp.ID)
		assert.Equal(t, lifecycle.EmploymentTerminated, after.Status)
		assert.Equal(t, epoch, after.EndDate)
		assert.Len(t, f.sent.OfType(lifecycle.NotifyEmploymentTerminated), 2)
	}
}

func TestWithdraw_AfterClosureFails(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(-day), "contract")
	app, emp := f.hired("job-1")
	require.Equal(t, lifecycle.EmploymentOngoing, emp.Status)

	f.employment(student, emp.ID, lifecycle.AttachDoc{Type: "contract", FileRef: "docs/c.pdf"})
	f.employment(company, emp.ID, lifecycle.VerifyDoc{Type: "contract"})
	f.employment(company, emp.ID, lifecycle.MoveToClosure{})

	_, err := f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.Withdraw{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)
	assert.Equal(t, lifecycle.ApplicationAccepted, f.reload(app.ID).Status)
	assert.Equal(t, lifecycle.EmploymentClosure, f.reloadEmployment(emp.ID).Status)

	f.employment(company, emp.ID, lifecycle.Complete{})
	_, err = f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.Withdraw{})
	assert.ErrorIs(t, err, lifecycle.ErrGuardViolation)
}

func TestWithdraw_AfterTerminationFails(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app, emp := f.hired("job-1")

	f.employment(company, emp.ID, lifecycle.Terminate{Reason: "no show"})
	_, err := f.engine.ActOnApplication(f.ctx, student, app.ID, lifecycle.Withdraw{})
	assert.ErrorIs(t, err, lifecycle.ErrGuardViolation)
}

// ── Queries ────────────────────────────────────────────────────────────────

func TestListApplications_ScopedToActor(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	f.apply(student, "job-1")
	f.apply(other, "job-1")

	mine, err := f.engine.ListApplications(f.ctx, student, lifecycle.ApplicationFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, student.ID, mine[0].ApplicantID)

	theirs, err := f.engine.ListApplications(f.ctx, company, lifecycle.ApplicationFilter{ListingID: "job-1"})
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	none, err := f.engine.ListApplications(f.ctx, rival, lifecycle.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)
}
