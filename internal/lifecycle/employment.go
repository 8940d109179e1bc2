package lifecycle

import (
	"fmt"
	"slices"
	"time"
)

// EmploymentStatus is monotonic along UPCOMING → ONGOING → CLOSURE → COMPLETED,
// with a one-way escape to TERMINATED from any of the first three.
type EmploymentStatus string

const (
	EmploymentUpcoming   EmploymentStatus = "UPCOMING"
	EmploymentOngoing    EmploymentStatus = "ONGOING"
	EmploymentClosure    EmploymentStatus = "CLOSURE"
	EmploymentCompleted  EmploymentStatus = "COMPLETED"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
)

var employmentRank = map[EmploymentStatus]int{
	EmploymentUpcoming:   0,
	EmploymentOngoing:    1,
	EmploymentClosure:    2,
	EmploymentCompleted:  3,
	EmploymentTerminated: 4,
}

// LiveEmploymentStatuses are the non-terminal statuses.
var LiveEmploymentStatuses = []EmploymentStatus{EmploymentUpcoming, EmploymentOngoing, EmploymentClosure}

// ParseEmploymentStatus converts a raw string to an EmploymentStatus.
func ParseEmploymentStatus(s string) (EmploymentStatus, error) {
	st := EmploymentStatus(s)
	if _, ok := employmentRank[st]; !ok {
		return "", fmt.Errorf("unknown employment status %q", s)
	}
	return st, nil
}

// AtLeast orders statuses by phase; TERMINATED ranks above every other.
func (s EmploymentStatus) AtLeast(other EmploymentStatus) bool {
	return employmentRank[s] >= employmentRank[other]
}

// IsTerminal reports COMPLETED or TERMINATED.
func (s EmploymentStatus) IsTerminal() bool {
	return s == EmploymentCompleted || s == EmploymentTerminated
}

// Document is an uploaded file reference; bytes live in object storage.
type Document struct {
	Type       string     `json:"type"`
	FileRef    string     `json:"fileRef"`
	UploadedAt time.Time  `json:"uploadedAt"`
	Verified   bool       `json:"verified"`
	VerifiedBy string     `json:"verifiedBy,omitempty"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
}

// Note is a free-text remark on an employment.
type Note struct {
	At         time.Time `json:"at"`
	AuthorID   string    `json:"authorId"`
	AuthorRole Role      `json:"authorRole"`
	Text       string    `json:"text"`
}

// Contact is the company's person in charge for an employment.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Employment is the placement created when an applicant accepts an offer.
type Employment struct {
	ID                  string
	ApplicationID       string
	ApplicantID         string
	CompanyID           string
	ListingID           string
	Status              EmploymentStatus
	StartDate           time.Time
	EndDate             time.Time
	RequiredDocs        []string
	Docs                []Document
	Notes               []Note
	PIC                 *Contact
	TimesheetRemindedAt *time.Time
	ClosureRemindedAt   *time.Time
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MissingDocs lists required document types without a verified upload.
func (e *Employment) MissingDocs() []string {
	var missing []string
	for _, t := range e.RequiredDocs {
		if !slices.ContainsFunc(e.Docs, func(d Document) bool { return d.Type == t && d.Verified }) {
			missing = append(missing, t)
		}
	}
	return missing
}

// Clone returns a deep copy safe to mutate.
func (e *Employment) Clone() *Employment {
	c := *e
	c.RequiredDocs = slices.Clone(e.RequiredDocs)
	c.Docs = make([]Document, len(e.Docs))
	for i, d := range e.Docs {
		c.Docs[i] = d
		if d.VerifiedAt != nil {
			t := *d.VerifiedAt
			c.Docs[i].VerifiedAt = &t
		}
	}
	c.Notes = slices.Clone(e.Notes)
	if e.PIC != nil {
		p := *e.PIC
		c.PIC = &p
	}
	c.TimesheetRemindedAt = clonePtr(e.TimesheetRemindedAt)
	c.ClosureRemindedAt = clonePtr(e.ClosureRemindedAt)
	return &c
}

// newEmployment builds the record spawned by an accepted offer. The initial
// status compares the listing's start date with now.
func newEmployment(id string, app *Application, listing *Listing, now time.Time) *Employment {
	status := EmploymentUpcoming
	if !listing.StartDate.After(now) {
		status = EmploymentOngoing
	}
	return &Employment{
		ID:            id,
		ApplicationID: app.ID,
		ApplicantID:   app.ApplicantID,
		CompanyID:     app.CompanyID,
		ListingID:     app.ListingID,
		Status:        status,
		StartDate:     listing.StartDate,
		EndDate:       listing.EndDate,
		RequiredDocs:  slices.Clone(listing.RequiredDocs),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
