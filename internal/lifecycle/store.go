package lifecycle

import (
	"context"
	"time"
)

// ApplicationFilter selects applications. Zero fields do not filter.
type ApplicationFilter struct {
	ApplicantID string
	CompanyID   string
	ListingID   string
	Statuses    []ApplicationStatus
	// ValidityBefore matches validityUntil < t.
	ValidityBefore *time.Time
	// OfferExpiresBefore matches an offer validUntil < t.
	OfferExpiresBefore *time.Time
	// OfferExpiresAfter matches an offer validUntil >= t.
	OfferExpiresAfter *time.Time
	// OfferNotReminded matches offers whose expiry reminder is unsent.
	OfferNotReminded bool
	After            *Cursor
	Limit            int
}

// EmploymentFilter selects employments. Zero fields do not filter.
type EmploymentFilter struct {
	ApplicantID string
	CompanyID   string
	Statuses    []EmploymentStatus
	// StartOnOrBefore matches startDate <= t.
	StartOnOrBefore *time.Time
	// EndOnOrBefore matches endDate <= t.
	EndOnOrBefore *time.Time
	// ReminderDue matches a reminder field that is unset or <= Before.
	ReminderDue *ReminderDue
	After       *Cursor
	Limit       int
}

// ListingFilter selects listings. Zero fields do not filter.
type ListingFilter struct {
	Statuses []ListingStatus
	// PublishOnOrBefore matches publishAt <= t.
	PublishOnOrBefore *time.Time
	// ExpiresOnOrBefore matches expiresAt <= t.
	ExpiresOnOrBefore *time.Time
	// ExpiresAfter matches expiresAt > t.
	ExpiresAfter *time.Time
	ReminderDue  *ReminderDue
	After        *Cursor
	Limit        int
}

// Cursor is a position in the (CreatedAt, ID) order every List method
// returns. A filter with After set matches only records strictly past it.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// ReminderKind names a deduplicated reminder stamp on an entity.
type ReminderKind string

const (
	ReminderOfferExpiring   ReminderKind = "offer_expiring"
	ReminderListingExpiring ReminderKind = "listing_expiring"
	ReminderTimesheet       ReminderKind = "timesheet"
	ReminderClosure         ReminderKind = "closure"
)

// ReminderDue restricts candidates to those whose Kind stamp is unset or not
// after Before.
type ReminderDue struct {
	Kind   ReminderKind
	Before time.Time
}

// Store is the persistence port of the lifecycle. Every status change goes
// through a conditional update that fails with Stale when the stored record
// no longer matches the expected prior state.
type Store interface {
	// InTx runs fn against a transactional view. Effects of fn are discarded
	// when it returns an error.
	InTx(ctx context.Context, fn func(tx Store) error) error

	CreateListing(ctx context.Context, l *Listing) error
	GetListing(ctx context.Context, id string) (*Listing, error)
	ListListings(ctx context.Context, f ListingFilter) ([]*Listing, error)
	// UpdateListingStatus moves id from → to, or returns Stale.
	UpdateListingStatus(ctx context.Context, id string, from, to ListingStatus, at time.Time) error

	// CreateApplication fails with DuplicateActive when an active application
	// exists for the same applicant and listing.
	CreateApplication(ctx context.Context, app *Application) error
	GetApplication(ctx context.Context, id string) (*Application, error)
	ListApplications(ctx context.Context, f ApplicationFilter) ([]*Application, error)
	// UpdateApplication persists app when the stored row still has status prev
	// and version app.Version, appends entry to the history and bumps
	// app.Version.
	UpdateApplication(ctx context.Context, app *Application, prev ApplicationStatus, entry HistoryEntry) error

	// CreateEmployment fails with DuplicateActive when the application already
	// has an employment.
	CreateEmployment(ctx context.Context, emp *Employment) error
	GetEmployment(ctx context.Context, id string) (*Employment, error)
	GetEmploymentByApplication(ctx context.Context, applicationID string) (*Employment, error)
	ListEmployments(ctx context.Context, f EmploymentFilter) ([]*Employment, error)
	// UpdateEmployment persists emp when the stored row still has status prev
	// and version emp.Version, then bumps emp.Version.
	UpdateEmployment(ctx context.Context, emp *Employment, prev EmploymentStatus) error

	// CreateRequest fails with DuplicateActive while a request of the same
	// kind is PENDING for the employment.
	CreateRequest(ctx context.Context, req *Request) error
	GetRequest(ctx context.Context, id string) (*Request, error)
	ListRequests(ctx context.Context, employmentID string) ([]*Request, error)
	// UpdateRequest persists req when the stored row still has status prev.
	UpdateRequest(ctx context.Context, req *Request, prev RequestStatus) error

	// ClaimReminder stamps the kind reminder of entity id with at, provided the
	// stamp is unset or, when window > 0, not after at-window. It reports
	// whether this call won the claim. Reminder stamps are written only here;
	// the Update methods leave them untouched.
	ClaimReminder(ctx context.Context, kind ReminderKind, id string, at time.Time, window time.Duration) (bool, error)

	// HasUnresolvedTimesheets reports timesheets of the employment whose period
	// ends on or before until and that are not yet approved.
	HasUnresolvedTimesheets(ctx context.Context, employmentID string, until time.Time) (bool, error)
}
