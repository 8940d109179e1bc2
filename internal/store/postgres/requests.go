package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"jobmate/placement-service/internal/lifecycle"
)

const requestColumns = `id, employment_id, kind, initiated_by, initiator_id, status, proposed_date, reason,
	decision_remark, decided_by, decided_at, created_at, updated_at`

func scanRequest(row pgx.Row) (*lifecycle.Request, error) {
	var r lifecycle.Request
	if err := row.Scan(
		&r.ID, &r.EmploymentID, &r.Kind, &r.InitiatedBy, &r.InitiatorID, &r.Status, &r.ProposedDate, &r.Reason,
		&r.DecisionRemark, &r.DecidedBy, &r.DecidedAt, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRequest relies on the partial unique index over PENDING requests.
func (s *Store) CreateRequest(ctx context.Context, r *lifecycle.Request) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO employment_requests (id, employment_id, kind, initiated_by, initiator_id, status,
		                                  proposed_date, reason, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.EmploymentID, r.Kind, r.InitiatedBy, r.InitiatorID, r.Status,
		r.ProposedDate, r.Reason, r.CreatedAt, r.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return lifecycle.DuplicateActive("employment %s already has a pending %s request", r.EmploymentID, r.Kind)
	}
	return lifecycle.TransientStore(err, "insert request")
}

func (s *Store) GetRequest(ctx context.Context, id string) (*lifecycle.Request, error) {
	r, err := scanRequest(s.q.QueryRow(ctx, `SELECT `+requestColumns+` FROM employment_requests WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "request", id)
	}
	return r, nil
}

func (s *Store) ListRequests(ctx context.Context, employmentID string) ([]*lifecycle.Request, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+requestColumns+` FROM employment_requests WHERE employment_id = $1 ORDER BY created_at, id`,
		employmentID)
	if err != nil {
		return nil, lifecycle.TransientStore(err, "list requests")
	}
	defer rows.Close()

	out := make([]*lifecycle.Request, 0)
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, lifecycle.TransientStore(err, "scan request")
		}
		out = append(out, r)
	}
	return out, lifecycle.TransientStore(rows.Err(), "list requests")
}

func (s *Store) UpdateRequest(ctx context.Context, r *lifecycle.Request, prev lifecycle.RequestStatus) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE employment_requests
		 SET status = $1, decision_remark = $2, decided_by = $3, decided_at = $4, updated_at = $5
		 WHERE id = $6 AND status = $7`,
		r.Status, r.DecisionRemark, r.DecidedBy, r.DecidedAt, r.UpdatedAt,
		r.ID, prev,
	)
	if err != nil {
		return lifecycle.TransientStore(err, "update request")
	}
	if tag.RowsAffected() == 0 {
		return lifecycle.Stale("request", r.ID)
	}
	return nil
}

// ─── Reminders & timesheets ──────────────────────────────────────────────────

var reminderColumn = map[lifecycle.ReminderKind]struct{ table, column string }{
	lifecycle.ReminderOfferExpiring:   {"applications", "offer_reminded_at"},
	lifecycle.ReminderListingExpiring: {"job_listings", "last_expiry_reminder_at"},
	lifecycle.ReminderTimesheet:       {"employments", "timesheet_reminded_at"},
	lifecycle.ReminderClosure:         {"employments", "closure_reminded_at"},
}

// ClaimReminder is a conditional UPDATE on the stamp column, so two sweeps
// racing on the same record send one reminder.
func (s *Store) ClaimReminder(ctx context.Context, kind lifecycle.ReminderKind, id string, at time.Time, window time.Duration) (bool, error) {
	c, ok := reminderColumn[kind]
	if !ok {
		return false, lifecycle.TransientStore(errUnknownReminder(kind), "claim reminder")
	}
	var threshold *time.Time
	if window > 0 {
		t := at.Add(-window)
		threshold = &t
	}
	tag, err := s.q.Exec(ctx,
		`UPDATE `+c.table+` SET `+c.column+` = $1
		 WHERE id = $2 AND (`+c.column+` IS NULL OR `+c.column+` <= $3)`,
		at, id, threshold,
	)
	if err != nil {
		return false, lifecycle.TransientStore(err, "claim reminder")
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) HasUnresolvedTimesheets(ctx context.Context, employmentID string, until time.Time) (bool, error) {
	var unresolved bool
	err := s.q.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM timesheets
		   WHERE employment_id = $1 AND period_end <= $2 AND status <> 'APPROVED'
		 )`,
		employmentID, until,
	).Scan(&unresolved)
	if err != nil {
		return false, lifecycle.TransientStore(err, "check timesheets")
	}
	return unresolved, nil
}
