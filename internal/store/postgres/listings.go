package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"jobmate/placement-service/internal/lifecycle"
)

const listingColumns = `id, company_id, title, status, publish_at, expires_at, start_date, end_date,
	required_docs, last_expiry_reminder_at, created_at, updated_at`

func scanListing(row pgx.Row) (*lifecycle.Listing, error) {
	var l lifecycle.Listing
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.Title, &l.Status, &l.PublishAt, &l.ExpiresAt, &l.StartDate, &l.EndDate,
		&l.RequiredDocs, &l.LastExpiryReminderAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) CreateListing(ctx context.Context, l *lifecycle.Listing) error {
	docs := l.RequiredDocs
	if docs == nil {
		docs = []string{}
	}
	_, err := s.q.Exec(ctx,
		`INSERT INTO job_listings (id, company_id, title, status, publish_at, expires_at, start_date, end_date,
		                           required_docs, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.CompanyID, l.Title, l.Status, l.PublishAt, l.ExpiresAt, l.StartDate, l.EndDate,
		docs, l.CreatedAt, l.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return lifecycle.DuplicateActive("listing %s already exists", l.ID)
	}
	return lifecycle.TransientStore(err, "insert listing")
}

func (s *Store) GetListing(ctx context.Context, id string) (*lifecycle.Listing, error) {
	l, err := scanListing(s.q.QueryRow(ctx, `SELECT `+listingColumns+` FROM job_listings WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "listing", id)
	}
	return l, nil
}

func listingWhere(f lifecycle.ListingFilter) *where {
	w := new(where)
	if len(f.Statuses) > 0 {
		w.add("status = ANY($%d)", stringsOf(f.Statuses))
	}
	if f.PublishOnOrBefore != nil {
		w.add("publish_at <= $%d", *f.PublishOnOrBefore)
	}
	if f.ExpiresOnOrBefore != nil {
		w.add("expires_at <= $%d", *f.ExpiresOnOrBefore)
	}
	if f.ExpiresAfter != nil {
		w.add("expires_at > $%d", *f.ExpiresAfter)
	}
	if f.ReminderDue != nil {
		w.add("(last_expiry_reminder_at IS NULL OR last_expiry_reminder_at <= $%d)", f.ReminderDue.Before)
	}
	w.after(f.After)
	return w
}

func (s *Store) ListListings(ctx context.Context, f lifecycle.ListingFilter) ([]*lifecycle.Listing, error) {
	w := listingWhere(f)

	rows, err := s.q.Query(ctx,
		`SELECT `+listingColumns+` FROM job_listings`+w.String()+` ORDER BY created_at, id`+limitClause(f.Limit),
		w.args...)
	if err != nil {
		return nil, lifecycle.TransientStore(err, "list listings")
	}
	defer rows.Close()

	out := make([]*lifecycle.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, lifecycle.TransientStore(err, "scan listing")
		}
		out = append(out, l)
	}
	return out, lifecycle.TransientStore(rows.Err(), "list listings")
}

func (s *Store) UpdateListingStatus(ctx context.Context, id string, from, to lifecycle.ListingStatus, at time.Time) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE job_listings SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, at, id, from,
	)
	if err != nil {
		return lifecycle.TransientStore(err, "update listing")
	}
	if tag.RowsAffected() == 0 {
		return lifecycle.Stale("listing", id)
	}
	return nil
}
