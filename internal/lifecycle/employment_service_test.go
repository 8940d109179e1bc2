package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/store/memory"
)

func TestEmployment_ManualLifecycle(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day), "contract", "insurance")
	_, emp := f.hired("job-1")
	require.Equal(t, lifecycle.EmploymentUpcoming, emp.Status)

	emp = f.employment(company, emp.ID, lifecycle.StartNow{})
	assert.Equal(t, lifecycle.EmploymentOngoing, emp.Status)
	assert.Len(t, f.sent.OfType(lifecycle.NotifyEmploymentStarted), 1)

	_, err := f.engine.ActOnEmployment(f.ctx, company, emp.ID, lifecycle.MoveToClosure{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation, "documents are not verified yet")

	f.employment(student, emp.ID, lifecycle.AttachDoc{Type: "contract", FileRef: "docs/contract.pdf"})
	f.employment(student, emp.ID, lifecycle.AttachDoc{Type: "insurance", FileRef: "docs/ins.pdf"})
	f.employment(company, emp.ID, lifecycle.VerifyDoc{Type: "contract"})
	emp = f.employment(admin, emp.ID, lifecycle.VerifyDoc{Type: "insurance"})
	assert.Empty(t, emp.MissingDocs())
	assert.Equal(t, admin.ID, emp.Docs[1].VerifiedBy)

	emp = f.employment(company, emp.ID, lifecycle.MoveToClosure{})
	assert.Equal(t, lifecycle.EmploymentClosure, emp.Status)

	emp = f.employment(company, emp.ID, lifecycle.Complete{})
	assert.Equal(t, lifecycle.EmploymentCompleted, emp.Status)

	_, err = f.engine.ActOnEmployment(f.ctx, company, emp.ID, lifecycle.Terminate{})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "terminal states admit nothing")
}

func TestEmployment_ReattachResetsVerification(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(-day), "contract")
	_, emp := f.hired("job-1")

	f.employment(student, emp.ID, lifecycle.AttachDoc{Type: "contract", FileRef: "v1.pdf"})
	f.employment(company, emp.ID, lifecycle.VerifyDoc{Type: "contract"})
	emp = f.employment(student, emp.ID, lifecycle.AttachDoc{Type: "contract", FileRef: "v2.pdf"})

	require.Len(t, emp.Docs, 1)
	assert.Equal(t, "v2.pdf", emp.Docs[0].FileRef)
	assert.False(t, emp.Docs[0].Verified)
	assert.Equal(t, []string{"contract"}, emp.MissingDocs())
}

func TestEmployment_CompleteBlockedByTimesheets(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(-day))
	_, emp := f.hired("job-1")
	f.employment(company, emp.ID, lifecycle.MoveToClosure{})

	f.store.PutTimesheet(emp.ID, memory.Timesheet{
		ID: "ts-1", PeriodStart: epoch, PeriodEnd: epoch.Add(7 * day), Status: memory.TimesheetSubmitted,
	})
	_, err := f.engine.ActOnEmployment(f.ctx, company, emp.ID, lifecycle.Complete{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)

	f.store.PutTimesheet(emp.ID, memory.Timesheet{
		ID: "ts-1", PeriodStart: epoch, PeriodEnd: epoch.Add(7 * day), Status: memory.TimesheetApproved,
	})
	emp = f.employment(company, emp.ID, lifecycle.Complete{})
	assert.Equal(t, lifecycle.EmploymentCompleted, emp.Status)
	assert.Len(t, f.sent.OfType(lifecycle.NotifyEmploymentCompleted), 2)
}

func TestEmployment_SweepActionsCheckTime(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(2*day))
	_, emp := f.hired("job-1")

	_, err := f.engine.ActOnEmployment(f.ctx, lifecycle.System, emp.ID, lifecycle.StartOnSchedule{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)

	f.clock.Advance(2 * day)
	emp = f.employment(lifecycle.System, emp.ID, lifecycle.StartOnSchedule{})
	assert.Equal(t, lifecycle.EmploymentOngoing, emp.Status)

	_, err = f.engine.ActOnEmployment(f.ctx, lifecycle.System, emp.ID, lifecycle.ReachEnd{})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)

	f.clock.Advance(90 * day)
	emp = f.employment(lifecycle.System, emp.ID, lifecycle.ReachEnd{})
	assert.Equal(t, lifecycle.EmploymentClosure, emp.Status)

	_, err = f.engine.ActOnEmployment(f.ctx, company, emp.ID, lifecycle.AutoComplete{})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition, "users cannot call sweep actions")
}

func TestEmployment_Metadata(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	_, emp := f.hired("job-1")

	_, err := f.engine.ActOnEmployment(f.ctx, company, emp.ID, lifecycle.AddNote{Text: " "})
	require.ErrorIs(t, err, lifecycle.ErrGuardViolation)
	emp = f.employment(student, emp.ID, lifecycle.AddNote{Text: "first day on site"})
	require.Len(t, emp.Notes, 1)
	assert.Equal(t, lifecycle.RoleApplicant, emp.Notes[0].AuthorRole)

	_, err = f.engine.ActOnEmployment(f.ctx, student, emp.ID, lifecycle.UpdatePIC{Contact: lifecycle.Contact{Name: "Ana"}})
	require.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	emp = f.employment(company, emp.ID, lifecycle.UpdatePIC{Contact: lifecycle.Contact{Name: "Ana", Email: "ana@co.test"}})
	require.NotNil(t, emp.PIC)
	assert.Equal(t, "ana@co.test", emp.PIC.Email)
	assert.Equal(t, lifecycle.EmploymentUpcoming, emp.Status, "metadata actions keep the status")

	_, err = f.engine.ActOnEmployment(f.ctx, company, emp.ID, lifecycle.VerifyDoc{Type: "contract"})
	assert.ErrorIs(t, err, lifecycle.ErrGuardViolation, "nothing attached yet")
}

func TestEmployment_Visibility(t *testing.T) {
	f := newFixture(t)
	f.listing("job-1", epoch.Add(30*day))
	app, emp := f.hired("job-1")

	_, err := f.engine.GetEmployment(f.ctx, other, emp.ID)
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
	_, err = f.engine.ActOnEmployment(f.ctx, rival, emp.ID, lifecycle.Terminate{})
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)

	got, err := f.engine.GetEmploymentByApplication(f.ctx, student, app.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)

	mine, err := f.engine.ListEmployments(f.ctx, company, lifecycle.EmploymentFilter{})
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	none, err := f.engine.ListEmployments(f.ctx, other, lifecycle.EmploymentFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)
}
