package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"jobmate/placement-service/internal/lifecycle"
)

const applicationColumns = `id, applicant_id, company_id, listing_id, status, validity_until, validity_extended,
	stage, offer_reminded_at, history, version, created_at, updated_at`

func scanApplication(row pgx.Row) (*lifecycle.Application, error) {
	var (
		a       lifecycle.Application
		stage   []byte
		history []byte
	)
	if err := row.Scan(
		&a.ID, &a.ApplicantID, &a.CompanyID, &a.ListingID, &a.Status, &a.ValidityUntil, &a.ValidityExtended,
		&stage, &a.OfferRemindedAt, &history, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	st, err := decodeStage(stage)
	if err != nil {
		return nil, err
	}
	a.Stage = st
	if len(history) > 0 {
		if err := json.Unmarshal(history, &a.History); err != nil {
			return nil, err
		}
	}
	return &a, nil
}

func (s *Store) CreateApplication(ctx context.Context, app *lifecycle.Application) error {
	stage, offerUntil, err := encodeStage(app.Stage)
	if err != nil {
		return lifecycle.TransientStore(err, "encode stage")
	}
	history, err := jsonb(app.History)
	if err != nil {
		return lifecycle.TransientStore(err, "encode history")
	}
	_, err = s.q.Exec(ctx,
		`INSERT INTO applications (id, applicant_id, company_id, listing_id, status, validity_until,
		                           validity_extended, stage, offer_valid_until, history, version,
		                           created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		app.ID, app.ApplicantID, app.CompanyID, app.ListingID, app.Status, app.ValidityUntil,
		app.ValidityExtended, stage, offerUntil, history, app.Version, app.CreatedAt, app.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return lifecycle.DuplicateActive("applicant %s already has an active application on listing %s",
			app.ApplicantID, app.ListingID)
	}
	return lifecycle.TransientStore(err, "insert application")
}

func (s *Store) GetApplication(ctx context.Context, id string) (*lifecycle.Application, error) {
	a, err := scanApplication(s.q.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "application", id)
	}
	return a, nil
}

func applicationWhere(f lifecycle.ApplicationFilter) *where {
	w := new(where)
	if f.ApplicantID != "" {
		w.add("applicant_id = $%d", f.ApplicantID)
	}
	if f.CompanyID != "" {
		w.add("company_id = $%d", f.CompanyID)
	}
	if f.ListingID != "" {
		w.add("listing_id = $%d", f.ListingID)
	}
	if len(f.Statuses) > 0 {
		w.add("status = ANY($%d)", stringsOf(f.Statuses))
	}
	if f.ValidityBefore != nil {
		w.add("validity_until < $%d", *f.ValidityBefore)
	}
	if f.OfferExpiresBefore != nil || f.OfferExpiresAfter != nil || f.OfferNotReminded {
		w.add("status = $%d", lifecycle.ApplicationPendingAcceptance)
	}
	if f.OfferExpiresBefore != nil {
		w.add("offer_valid_until < $%d", *f.OfferExpiresBefore)
	}
	if f.OfferExpiresAfter != nil {
		w.add("offer_valid_until >= $%d", *f.OfferExpiresAfter)
	}
	if f.OfferNotReminded {
		w.raw("offer_reminded_at IS NULL")
	}
	w.after(f.After)
	return w
}

func (s *Store) ListApplications(ctx context.Context, f lifecycle.ApplicationFilter) ([]*lifecycle.Application, error) {
	w := applicationWhere(f)

	rows, err := s.q.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications`+w.String()+` ORDER BY created_at, id`+limitClause(f.Limit),
		w.args...)
	if err != nil {
		return nil, lifecycle.TransientStore(err, "list applications")
	}
	defer rows.Close()

	out := make([]*lifecycle.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, lifecycle.TransientStore(err, "scan application")
		}
		out = append(out, a)
	}
	return out, lifecycle.TransientStore(rows.Err(), "list applications")
}

// UpdateApplication appends entry to the stored history with jsonb ||, so a
// concurrent writer can never drop a line of the audit log.
func (s *Store) UpdateApplication(ctx context.Context, app *lifecycle.Application, prev lifecycle.ApplicationStatus, entry lifecycle.HistoryEntry) error {
	stage, offerUntil, err := encodeStage(app.Stage)
	if err != nil {
		return lifecycle.TransientStore(err, "encode stage")
	}
	line, err := json.Marshal([]lifecycle.HistoryEntry{entry})
	if err != nil {
		return lifecycle.TransientStore(err, "encode history")
	}
	tag, err := s.q.Exec(ctx,
		`UPDATE applications
		 SET status = $1, validity_until = $2, validity_extended = $3, stage = $4,
		     offer_valid_until = $5, history = history || $6::jsonb,
		     version = version + 1, updated_at = $7
		 WHERE id = $8 AND status = $9 AND version = $10`,
		app.Status, app.ValidityUntil, app.ValidityExtended, stage,
		offerUntil, line, app.UpdatedAt,
		app.ID, prev, app.Version,
	)
	if err != nil {
		return lifecycle.TransientStore(err, "update application")
	}
	if tag.RowsAffected() == 0 {
		return lifecycle.Stale("application", app.ID)
	}
	app.Version++
	return nil
}
