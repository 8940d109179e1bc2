package postgres_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/placement-service/internal/db"
	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/store/postgres"
)

// openStore migrates a throwaway schema on TEST_DATABASE_URL and returns a
// Store bound to it. The test is skipped when the variable is unset.
func openStore(t *testing.T) (*postgres.Store, *pgxpool.Pool) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	admin, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(admin.Close)

	schema := pgx.Identifier{"placement_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")}
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema.Sanitize())
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema.Sanitize()+" CASCADE") })

	cfg, err := pgxpool.ParseConfig(url)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema[0]
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	return postgres.New(pool), pool
}

func seedListing(t *testing.T, s *postgres.Store, id string) {
	t.Helper()
	require.NoError(t, s.CreateListing(context.Background(), &lifecycle.Listing{
		ID: id, CompanyID: "co-1", Title: "Intern", Status: lifecycle.ListingActive,
		ExpiresAt: t0.Add(30 * 24 * time.Hour), StartDate: t0.Add(7 * 24 * time.Hour),
		EndDate: t0.Add(97 * 24 * time.Hour), CreatedAt: t0, UpdatedAt: t0,
	}))
}

func newApplication(id string, status lifecycle.ApplicationStatus) *lifecycle.Application {
	return &lifecycle.Application{
		ID: id, ApplicantID: "stu-1", CompanyID: "co-1", ListingID: "job-1", Status: status,
		ValidityUntil: t0.Add(14 * 24 * time.Hour), Version: 1, CreatedAt: t0, UpdatedAt: t0,
	}
}

func TestPostgres_OneActiveApplicationPerListing(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	seedListing(t, s, "job-1")

	first := newApplication("a-1", lifecycle.ApplicationNew)
	require.NoError(t, s.CreateApplication(ctx, first))
	err := s.CreateApplication(ctx, newApplication("a-2", lifecycle.ApplicationNew))
	require.ErrorIs(t, err, lifecycle.ErrDuplicateActive)

	first.Status = lifecycle.ApplicationWithdrawn
	require.NoError(t, s.UpdateApplication(ctx, first, lifecycle.ApplicationNew, lifecycle.HistoryEntry{
		At: t0, ActorID: "stu-1", ActorRole: lifecycle.RoleApplicant, Action: "withdraw",
		From: lifecycle.ApplicationNew, To: lifecycle.ApplicationWithdrawn,
	}))
	require.NoError(t, s.CreateApplication(ctx, newApplication("a-2", lifecycle.ApplicationNew)),
		"a terminal application no longer occupies the slot")

	got, err := s.GetApplication(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	require.Len(t, got.History, 1)
	assert.Equal(t, lifecycle.ApplicationWithdrawn, got.History[0].To)
}

func TestPostgres_LostUpdateIsStale(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	seedListing(t, s, "job-1")
	require.NoError(t, s.CreateApplication(ctx, newApplication("a-1", lifecycle.ApplicationNew)))

	mine, err := s.GetApplication(ctx, "a-1")
	require.NoError(t, err)
	theirs, err := s.GetApplication(ctx, "a-1")
	require.NoError(t, err)

	theirs.Status = lifecycle.ApplicationShortlisted
	require.NoError(t, s.UpdateApplication(ctx, theirs, lifecycle.ApplicationNew, lifecycle.HistoryEntry{At: t0, To: lifecycle.ApplicationShortlisted}))

	mine.Status = lifecycle.ApplicationWithdrawn
	err = s.UpdateApplication(ctx, mine, lifecycle.ApplicationNew, lifecycle.HistoryEntry{At: t0, To: lifecycle.ApplicationWithdrawn})
	require.ErrorIs(t, err, lifecycle.ErrStale)

	got, err := s.GetApplication(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ApplicationShortlisted, got.Status)
	assert.Len(t, got.History, 1)
}

func TestPostgres_OnePendingRequestPerKind(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	seedListing(t, s, "job-1")
	require.NoError(t, s.CreateApplication(ctx, newApplication("a-1", lifecycle.ApplicationAccepted)))
	require.NoError(t, s.CreateEmployment(ctx, &lifecycle.Employment{
		ID: "e-1", ApplicationID: "a-1", ApplicantID: "stu-1", CompanyID: "co-1", ListingID: "job-1",
		Status: lifecycle.EmploymentOngoing, StartDate: t0, EndDate: t0.Add(90 * 24 * time.Hour),
		Version: 1, CreatedAt: t0, UpdatedAt: t0,
	}))
	err := s.CreateEmployment(ctx, &lifecycle.Employment{
		ID: "e-2", ApplicationID: "a-1", ApplicantID: "stu-1", CompanyID: "co-1", ListingID: "job-1",
		Status: lifecycle.EmploymentUpcoming, StartDate: t0, EndDate: t0, Version: 1, CreatedAt: t0, UpdatedAt: t0,
	})
	require.ErrorIs(t, err, lifecycle.ErrDuplicateActive)

	request := func(id string, kind lifecycle.RequestKind) *lifecycle.Request {
		return &lifecycle.Request{
			ID: id, EmploymentID: "e-1", Kind: kind, InitiatedBy: lifecycle.InitiatorStudent,
			InitiatorID: "stu-1", Status: lifecycle.RequestPending, ProposedDate: t0.Add(30 * 24 * time.Hour),
			CreatedAt: t0, UpdatedAt: t0,
		}
	}
	early := request("r-1", lifecycle.RequestEarlyCompletion)
	require.NoError(t, s.CreateRequest(ctx, early))
	require.ErrorIs(t, s.CreateRequest(ctx, request("r-2", lifecycle.RequestEarlyCompletion)), lifecycle.ErrDuplicateActive)
	require.NoError(t, s.CreateRequest(ctx, request("r-3", lifecycle.RequestTermination)))

	early.Status = lifecycle.RequestCancelled
	require.NoError(t, s.UpdateRequest(ctx, early, lifecycle.RequestPending))
	require.ErrorIs(t, s.UpdateRequest(ctx, early, lifecycle.RequestPending), lifecycle.ErrStale)
	require.NoError(t, s.CreateRequest(ctx, request("r-2", lifecycle.RequestEarlyCompletion)))

	all, err := s.ListRequests(ctx, "e-1")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPostgres_ReminderClaimsAndTimesheets(t *testing.T) {
	ctx := context.Background()
	s, pool := openStore(t)
	seedListing(t, s, "job-1")
	require.NoError(t, s.CreateApplication(ctx, newApplication("a-1", lifecycle.ApplicationAccepted)))
	require.NoError(t, s.CreateEmployment(ctx, &lifecycle.Employment{
		ID: "e-1", ApplicationID: "a-1", ApplicantID: "stu-1", CompanyID: "co-1", ListingID: "job-1",
		Status: lifecycle.EmploymentClosure, StartDate: t0, EndDate: t0, Version: 1, CreatedAt: t0, UpdatedAt: t0,
	}))

	week := 7 * 24 * time.Hour
	won, err := s.ClaimReminder(ctx, lifecycle.ReminderClosure, "e-1", t0, week)
	require.NoError(t, err)
	assert.True(t, won)
	won, err = s.ClaimReminder(ctx, lifecycle.ReminderClosure, "e-1", t0.Add(time.Hour), week)
	require.NoError(t, err)
	assert.False(t, won, "inside the window")
	won, err = s.ClaimReminder(ctx, lifecycle.ReminderClosure, "e-1", t0.Add(week), week)
	require.NoError(t, err)
	assert.True(t, won)

	due, err := s.ListEmployments(ctx, lifecycle.EmploymentFilter{
		Statuses:    []lifecycle.EmploymentStatus{lifecycle.EmploymentClosure},
		ReminderDue: &lifecycle.ReminderDue{Kind: lifecycle.ReminderClosure, Before: t0},
	})
	require.NoError(t, err)
	assert.Empty(t, due)

	_, err = pool.Exec(ctx, `INSERT INTO timesheets (id, employment_id, period_start, period_end, status)
		VALUES ('w-1', 'e-1', $1, $2, 'SUBMITTED')`, t0.Add(-week), t0.Add(-time.Hour))
	require.NoError(t, err)
	unresolved, err := s.HasUnresolvedTimesheets(ctx, "e-1", t0)
	require.NoError(t, err)
	assert.True(t, unresolved)
	unresolved, err = s.HasUnresolvedTimesheets(ctx, "e-1", t0.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.False(t, unresolved)
}

func TestPostgres_StageAndCursorPaging(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	for i, id := range []string{"job-1", "job-2", "job-3"} {
		seedListing(t, s, id)
		app := newApplication("a-"+id, lifecycle.ApplicationPendingAcceptance)
		app.ListingID = id
		app.CreatedAt = t0.Add(time.Duration(i) * time.Minute)
		app.Stage = lifecycle.OfferStage{SentAt: t0, ValidUntil: t0.Add(time.Duration(i+1) * time.Hour)}
		require.NoError(t, s.CreateApplication(ctx, app))
	}

	horizon := t0.Add(150 * time.Minute)
	var seen []string
	var after *lifecycle.Cursor
	for {
		page, err := s.ListApplications(ctx, lifecycle.ApplicationFilter{
			OfferExpiresBefore: &horizon, OfferNotReminded: true, After: after, Limit: 1,
		})
		require.NoError(t, err)
		for _, a := range page {
			seen = append(seen, a.ID)
			offer, ok := a.Offer()
			require.True(t, ok)
			assert.True(t, offer.SentAt.Equal(t0))
		}
		if len(page) < 1 {
			break
		}
		last := page[len(page)-1]
		after = &lifecycle.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	assert.Equal(t, []string{"a-job-1", "a-job-2"}, seen)
}
