package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"jobmate/placement-service/internal/lifecycle"
)

const employmentColumns = `id, application_id, applicant_id, company_id, listing_id, status, start_date, end_date,
	required_docs, docs, notes, pic, timesheet_reminded_at, closure_reminded_at, version, created_at, updated_at`

func scanEmployment(row pgx.Row) (*lifecycle.Employment, error) {
	var (
		e                lifecycle.Employment
		docs, notes, pic []byte
	)
	if err := row.Scan(
		&e.ID, &e.ApplicationID, &e.ApplicantID, &e.CompanyID, &e.ListingID, &e.Status, &e.StartDate, &e.EndDate,
		&e.RequiredDocs, &docs, &notes, &pic, &e.TimesheetRemindedAt, &e.ClosureRemindedAt,
		&e.Version, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		if err := json.Unmarshal(docs, &e.Docs); err != nil {
			return nil, err
		}
	}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &e.Notes); err != nil {
			return nil, err
		}
	}
	if len(pic) > 0 && string(pic) != "null" {
		e.PIC = &lifecycle.Contact{}
		if err := json.Unmarshal(pic, e.PIC); err != nil {
			return nil, err
		}
	}
	return &e, nil
}

type employmentDocs struct {
	docs, notes, pic []byte
}

func encodeEmployment(e *lifecycle.Employment) (employmentDocs, error) {
	var (
		out employmentDocs
		err error
	)
	if out.docs, err = jsonb(e.Docs); err != nil {
		return out, err
	}
	if out.notes, err = jsonb(e.Notes); err != nil {
		return out, err
	}
	if e.PIC != nil {
		out.pic, err = json.Marshal(e.PIC)
	}
	return out, err
}

func (s *Store) CreateEmployment(ctx context.Context, e *lifecycle.Employment) error {
	enc, err := encodeEmployment(e)
	if err != nil {
		return lifecycle.TransientStore(err, "encode employment")
	}
	required := e.RequiredDocs
	if required == nil {
		required = []string{}
	}
	_, err = s.q.Exec(ctx,
		`INSERT INTO employments (id, application_id, applicant_id, company_id, listing_id, status,
		                          start_date, end_date, required_docs, docs, notes, pic, version,
		                          created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		e.ID, e.ApplicationID, e.ApplicantID, e.CompanyID, e.ListingID, e.Status,
		e.StartDate, e.EndDate, required, enc.docs, enc.notes, enc.pic, e.Version,
		e.CreatedAt, e.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return lifecycle.DuplicateActive("application %s already has an employment", e.ApplicationID)
	}
	return lifecycle.TransientStore(err, "insert employment")
}

func (s *Store) GetEmployment(ctx context.Context, id string) (*lifecycle.Employment, error) {
	e, err := scanEmployment(s.q.QueryRow(ctx, `SELECT `+employmentColumns+` FROM employments WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, "employment", id)
	}
	return e, nil
}

func (s *Store) GetEmploymentByApplication(ctx context.Context, applicationID string) (*lifecycle.Employment, error) {
	e, err := scanEmployment(s.q.QueryRow(ctx,
		`SELECT `+employmentColumns+` FROM employments WHERE application_id = $1`, applicationID))
	if err != nil {
		return nil, readErr(err, "employment for application", applicationID)
	}
	return e, nil
}

func employmentWhere(f lifecycle.EmploymentFilter) *where {
	w := new(where)
	if f.ApplicantID != "" {
		w.add("applicant_id = $%d", f.ApplicantID)
	}
	if f.CompanyID != "" {
		w.add("company_id = $%d", f.CompanyID)
	}
	if len(f.Statuses) > 0 {
		w.add("status = ANY($%d)", stringsOf(f.Statuses))
	}
	if f.StartOnOrBefore != nil {
		w.add("start_date <= $%d", *f.StartOnOrBefore)
	}
	if f.EndOnOrBefore != nil {
		w.add("end_date <= $%d", *f.EndOnOrBefore)
	}
	if r := f.ReminderDue; r != nil {
		col := "timesheet_reminded_at"
		if r.Kind == lifecycle.ReminderClosure {
			col = "closure_reminded_at"
		}
		w.add("("+col+" IS NULL OR "+col+" <= $%d)", r.Before)
	}
	w.after(f.After)
	return w
}

func (s *Store) ListEmployments(ctx context.Context, f lifecycle.EmploymentFilter) ([]*lifecycle.Employment, error) {
	w := employmentWhere(f)

	rows, err := s.q.Query(ctx,
		`SELECT `+employmentColumns+` FROM employments`+w.String()+` ORDER BY created_at, id`+limitClause(f.Limit),
		w.args...)
	if err != nil {
		return nil, lifecycle.TransientStore(err, "list employments")
	}
	defer rows.Close()

	out := make([]*lifecycle.Employment, 0)
	for rows.Next() {
		e, err := scanEmployment(rows)
		if err != nil {
			return nil, lifecycle.TransientStore(err, "scan employment")
		}
		out = append(out, e)
	}
	return out, lifecycle.TransientStore(rows.Err(), "list employments")
}

func (s *Store) UpdateEmployment(ctx context.Context, e *lifecycle.Employment, prev lifecycle.EmploymentStatus) error {
	enc, err := encodeEmployment(e)
	if err != nil {
		return lifecycle.TransientStore(err, "encode employment")
	}
	tag, err := s.q.Exec(ctx,
		`UPDATE employments
		 SET status = $1, end_date = $2, docs = $3, notes = $4, pic = $5,
		     version = version + 1, updated_at = $6
		 WHERE id = $7 AND status = $8 AND version = $9`,
		e.Status, e.EndDate, enc.docs, enc.notes, enc.pic, e.UpdatedAt,
		e.ID, prev, e.Version,
	)
	if err != nil {
		return lifecycle.TransientStore(err, "update employment")
	}
	if tag.RowsAffected() == 0 {
		return lifecycle.Stale("employment", e.ID)
	}
	e.Version++
	return nil
}
