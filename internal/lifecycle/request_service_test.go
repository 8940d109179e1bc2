package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/placement-service/internal/lifecycle"
)

// ongoing returns an ONGOING employment that started yesterday and ends in
// 89 days.
func (f *fixture) ongoing() *lifecycle.Employment {
	f.t.Helper()
	f.listing("job-1", epoch.Add(-day))
	_, emp := f.hired("job-1")
	require.Equal(f.t, lifecycle.EmploymentOngoing, emp.Status)
	return emp
}

func TestEarlyCompletion_ApproveMovesToClosure(t *testing.T) {
	f := newFixture(t)
	emp := f.ongoing()
	proposed := epoch.Add(30 * day)

	req, err := f.engine.CreateRequest(f.ctx, student, emp.ID, lifecycle.NewRequest{
		Kind: lifecycle.RequestEarlyCompletion, ProposedDate: proposed, Reason: "thesis deadline",
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RequestPending, req.Status)
	assert.Equal(t, lifecycle.InitiatorStudent, req.InitiatedBy)

	created := f.sent.OfType(lifecycle.NotifyRequestCreated)
	require.Len(t, created, 1)
	assert.Equal(t, company.ID, created[0].RecipientID, "the counterpart is told")

	got, err := f.engine.ActOnRequest(f.ctx, company, req.ID, lifecycle.ApproveRequest{Remark: "ok"})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RequestApproved, got.Status)
	assert.Equal(t, company.ID, got.DecidedBy)
	require.NotNil(t, got.DecidedAt)

	after := f.reloadEmployment(emp.ID)
	assert.Equal(t, lifecycle.EmploymentClosure, after.Status)
	assert.Equal(t, proposed, after.EndDate)
	assert.Len(t, f.sent.OfType(lifecycle.NotifyRequestApproved), 2)
}

func TestTermination_ApproveTerminates(t *testing.T) {
	f := newFixture(t)
	emp := f.ongoing()

	req, err := f.engine.CreateRequest(f.ctx, company, emp.ID, lifecycle.NewRequest{
		Kind: lifecycle.RequestTermination, Reason: "misconduct",
	})
	require.NoError(t, err)
	assert.Equal(t, epoch, req.ProposedDate, "termination defaults to now")
	assert.Equal(t, lifecycle.InitiatorCompany, req.InitiatedBy)

	_, err = f.engine.ActOnRequest(f.ctx, admin, req.ID, lifecycle.ApproveRequest{})
	require.NoError(t, err)

	after := f.reloadEmployment(emp.ID)
	assert.Equal(t, lifecycle.EmploymentTerminated, after.Status)
	assert.Equal(t, epoch, after.EndDate)
}

func TestRequest_RejectNeedsRemarkAndKeepsEmployment(t *testing.T) {
	f := newFixture(t)
	emp := f.ongoing()
	req, err := f.engine.CreateRequest(f.ctx, student, emp.ID, lifecycle.NewRequest{
		Kind: lifecycle.RequestTermination, Reason: "relocating",
	})
	require.NoError(t, err)

	_, err = f.engine.ActOnRequest(f.ctx, company, req.ID, lifecycle.RejectRequest{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)

	got, err := f.engine.ActOnRequest(f.ctx, company, req.ID, lifecycle.RejectRequest{Remark: "please finish the term"})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RequestRejected, got.Status)
	assert.Equal(t, "please finish the term", got.DecisionRemark)
	assert.Equal(t, lifecycle.EmploymentOngoing, f.reloadEmployment(emp.ID).Status)

	_, err = f.engine.ActOnRequest(f.ctx, company, req.ID, lifecycle.ApproveRequest{})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "resolved requests are final")
}

func TestRequest_OnePendingPerKind(t *testing.T) {
	f := newFixture(t)
	emp := f.ongoing()
	early := lifecycle.NewRequest{Kind: lifecycle.RequestEarlyCompletion, ProposedDate: epoch.Add(10 * day), Reason: "r"}

	first, err := f.engine.CreateRequest(f.ctx, student, emp.ID, early)
	require.NoError(t, err)

	_, err = f.engine.CreateRequest(f.ctx, company, emp.ID, early)
	require.ErrorIs(t, err, lifecycle.ErrDuplicateActive)

	// A different kind is a separate workflow.
	_, err = f.engine.CreateRequest(f.ctx, company, emp.ID, lifecycle.NewRequest{Kind: lifecycle.RequestTermination, Reason: "r"})
	require.NoError(t, err)

	_, err = f.engine.ActOnRequest(f.ctx, student, first.ID, lifecycle.CancelRequest{})
	require.NoError(t, err)
	_, err = f.engine.CreateRequest(f.ctx, student, emp.ID, early)
	assert.NoError(t, err)
}

func TestRequest_OnlyInitiatorCancels(t *testing.T) {
	f := newFixture(t)
	emp := f.ongoing()
	req, err := f.engine.CreateRequest(f.ctx, student, emp.ID, lifecycle.NewRequest{
		Kind: lifecycle.RequestTermination, Reason: "r",
	})
	require.NoError(t, err)

	_, err = f.engine.ActOnRequest(f.ctx, company, req.ID, lifecycle.CancelRequest{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)

	_, err = f.engine.ActOnRequest(f.ctx, student, req.ID, lifecycle.ApproveRequest{})
	require.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "applicants cannot decide")

	got, err := f.engine.ActOnRequest(f.ctx, student, req.ID, lifecycle.CancelRequest{})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RequestCancelled, got.Status)
	assert.Nil(t, got.DecidedAt)
	assert.Len(t, f.sent.OfType(lifecycle.NotifyRequestCancelled), 1)
}

func TestCreateRequest_Guards(t *testing.T) {
	f := newFixture(t)
	emp := f.ongoing()

	cases := []struct {
		name  string
		actor lifecycle.Actor
		in    lifecycle.NewRequest
		want  error
	}{
		{"admin cannot file", admin,
			lifecycle.NewRequest{Kind: lifecycle.RequestTermination, Reason: "r"}, lifecycle.ErrInvalidTransition},
		{"outsider", other,
			lifecycle.NewRequest{Kind: lifecycle.RequestTermination, Reason: "r"}, lifecycle.ErrNotFound},
		{"reason required", student,
			lifecycle.NewRequest{Kind: lifecycle.RequestTermination}, lifecycle.ErrGuardViolation},
		{"early completion needs date", student,
			lifecycle.NewRequest{Kind: lifecycle.RequestEarlyCompletion, Reason: "r"}, lifecycle.ErrGuardViolation},
		{"date before start", student,
			lifecycle.NewRequest{Kind: lifecycle.RequestEarlyCompletion, ProposedDate: epoch.Add(-2 * day), Reason: "r"}, lifecycle.ErrGuardViolation},
		{"date not before end", student,
			lifecycle.NewRequest{Kind: lifecycle.RequestEarlyCompletion, ProposedDate: emp.EndDate, Reason: "r"}, lifecycle.ErrGuardViolation},
		{"termination after end", company,
			lifecycle.NewRequest{Kind: lifecycle.RequestTermination, ProposedDate: emp.EndDate.Add(day), Reason: "r"}, lifecycle.ErrGuardViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.engine.CreateRequest(f.ctx, tc.actor, emp.ID, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateRequest_EligibleStates(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	_, emp := f.hired("job-1")
	require.Equal(t, lifecycle.EmploymentUpcoming, emp.Status)

	_, err := f.engine.CreateRequest(f.ctx, student, emp.ID, lifecycle.NewRequest{
		Kind: lifecycle.RequestEarlyCompletion, ProposedDate: epoch.Add(40 * day), Reason: "r",
	})
	require.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "early completion needs ONGOING")

	_, err = f.engine.CreateRequest(f.ctx, student, emp.ID, lifecycle.NewRequest{
		Kind: lifecycle.RequestTermination, Reason: "changed my mind",
	})
	assert.NoError(t, err, "termination is allowed before the start")
}

// An approval that lost the race to an employment change fails without
// persisting the request decision.
func TestApprove_EmploymentMovedOn(t *testing.T) {
	f := newFixture(t)
	emp := f.ongoing()
	req, err := f.engine.CreateRequest(f.ctx, student, emp.ID, lifecycle.NewRequest{
		Kind: lifecycle.RequestEarlyCompletion, ProposedDate: epoch.Add(5 * day), Reason: "r",
	})
	require.NoError(t, err)

	f.employment(company, emp.ID, lifecycle.Terminate{Reason: "closed office"})

	_, err = f.engine.ActOnRequest(f.ctx, company, req.ID, lifecycle.ApproveRequest{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)

	reqs, err := f.engine.ListRequests(f.ctx, student, emp.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, lifecycle.RequestPending, reqs[0].Status)
}
