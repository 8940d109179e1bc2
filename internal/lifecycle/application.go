package lifecycle

import (
	"fmt"
	"slices"
	"time"
)

// ApplicationStatus values mirror the status column of the applications table.
//
//	NEW ──► SHORTLISTED ◄──► INTERVIEW_SCHEDULED ──► NOT_ATTENDING
//	 │           │                   │
//	 │           └──────► PENDING_ACCEPTANCE ◄──┘
//	 │                           │
//	 └──► REJECTED ◄─────────────┤
//	                             └──► ACCEPTED ──► WITHDRAWN
//
// REJECTED, WITHDRAWN, NOT_ATTENDING and ACCEPTED are permanent markers;
// ACCEPTED only admits withdraw.
type ApplicationStatus string

const (
	ApplicationNew                ApplicationStatus = "NEW"
	ApplicationShortlisted        ApplicationStatus = "SHORTLISTED"
	ApplicationInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationPendingAcceptance  ApplicationStatus = "PENDING_ACCEPTANCE"
	ApplicationAccepted           ApplicationStatus = "ACCEPTED"
	ApplicationRejected           ApplicationStatus = "REJECTED"
	ApplicationWithdrawn          ApplicationStatus = "WITHDRAWN"
	ApplicationNotAttending       ApplicationStatus = "NOT_ATTENDING"
)

// ActiveApplicationStatuses is the status set covered by the one-active-
// application-per-(applicant, listing) constraint.
var ActiveApplicationStatuses = []ApplicationStatus{
	ApplicationNew,
	ApplicationShortlisted,
	ApplicationInterviewScheduled,
	ApplicationPendingAcceptance,
}

// AwaitingCompanyStatuses are the statuses during which validityUntil runs.
var AwaitingCompanyStatuses = []ApplicationStatus{
	ApplicationNew,
	ApplicationShortlisted,
	ApplicationInterviewScheduled,
}

// ParseApplicationStatus converts a raw string to an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationNew, ApplicationShortlisted, ApplicationInterviewScheduled,
		ApplicationPendingAcceptance, ApplicationAccepted, ApplicationRejected,
		ApplicationWithdrawn, ApplicationNotAttending:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsActive reports membership in ActiveApplicationStatuses.
func (s ApplicationStatus) IsActive() bool {
	return slices.Contains(ActiveApplicationStatuses, s)
}

// Stage is the state-specific payload of an Application. Only the variant
// matching the current status is ever attached.
type Stage interface {
	stageOf() ApplicationStatus
}

// InterviewStage is attached while INTERVIEW_SCHEDULED.
type InterviewStage struct {
	At       time.Time
	Location string
}

// OfferStage is attached while PENDING_ACCEPTANCE.
type OfferStage struct {
	SentAt     time.Time
	ValidUntil time.Time
	LetterKey  string
}

// RejectionStage is attached on entry into REJECTED.
type RejectionStage struct {
	By     Role
	Reason string
}

func (InterviewStage) stageOf() ApplicationStatus { return ApplicationInterviewScheduled }
func (OfferStage) stageOf() ApplicationStatus     { return ApplicationPendingAcceptance }
func (RejectionStage) stageOf() ApplicationStatus { return ApplicationRejected }

// HistoryEntry is one append-only line of an application's audit log.
type HistoryEntry struct {
	At        time.Time         `json:"at"`
	ActorID   string            `json:"actorId"`
	ActorRole Role              `json:"actorRole"`
	Action    string            `json:"action"`
	From      ApplicationStatus `json:"from,omitempty"`
	To        ApplicationStatus `json:"to"`
	Note      string            `json:"note,omitempty"`
}

// Application is an applicant's candidacy for one job listing.
type Application struct {
	ID               string
	ApplicantID      string
	CompanyID        string
	ListingID        string
	Status           ApplicationStatus
	ValidityUntil    time.Time
	ValidityExtended bool
	Stage            Stage
	OfferRemindedAt  *time.Time
	History          []HistoryEntry
	// Version is bumped by every successful conditional update.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interview returns the interview payload while INTERVIEW_SCHEDULED.
func (a *Application) Interview() (InterviewStage, bool) {
	s, ok := a.Stage.(InterviewStage)
	return s, ok && a.Status == ApplicationInterviewScheduled
}

// Offer returns the offer payload while PENDING_ACCEPTANCE.
func (a *Application) Offer() (OfferStage, bool) {
	s, ok := a.Stage.(OfferStage)
	return s, ok && a.Status == ApplicationPendingAcceptance
}

// Rejection returns the rejection attribution once REJECTED.
func (a *Application) Rejection() (RejectionStage, bool) {
	s, ok := a.Stage.(RejectionStage)
	return s, ok && a.Status == ApplicationRejected
}

// Clone returns a deep copy safe to mutate.
func (a *Application) Clone() *Application {
	c := *a
	c.History = slices.Clone(a.History)
	if a.OfferRemindedAt != nil {
		t := *a.OfferRemindedAt
		c.OfferRemindedAt = &t
	}
	return &c
}
