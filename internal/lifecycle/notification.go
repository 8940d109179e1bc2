package lifecycle

import "context"

// Notification types produced by the engine and the sweep passes.
const (
	NotifyApplicationReceived  = "application_received"
	NotifyShortlisted          = "shortlisted"
	NotifyInterviewScheduled   = "interview_scheduled"
	NotifyInterviewCancelled   = "interview_cancelled"
	NotifyInterviewDeclined    = "interview_declined"
	NotifyNoShow               = "interview_no_show"
	NotifyOfferSent            = "offer_sent"
	NotifyOfferAccepted        = "offer_accepted"
	NotifyOfferDeclined        = "offer_declined"
	NotifyApplicationRejected  = "application_rejected"
	NotifyApplicationWithdrawn = "application_withdrawn"
	NotifyApplicationExpired   = "application_expired"
	NotifyOfferExpired         = "offer_expired"
	NotifyOfferExpiring        = "offer_expiring"
	NotifyEmploymentStarted    = "employment_started"
	NotifyEmploymentClosure    = "employment_closure"
	NotifyEmploymentCompleted  = "employment_completed"
	NotifyEmploymentTerminated = "employment_terminated"
	NotifyRequestCreated       = "request_created"
	NotifyRequestCancelled     = "request_cancelled"
	NotifyRequestApproved      = "request_approved"
	NotifyRequestRejected      = "request_rejected"
	NotifyListingPublished     = "listing_published"
	NotifyListingClosed        = "listing_closed"
	NotifyListingExpiring      = "listing_expiring"
	NotifyTimesheetReminder    = "timesheet_reminder"
	NotifyClosureReminder      = "closure_reminder"
)

// Notification is a fire-and-forget message for the notification gateway.
type Notification struct {
	RecipientID   string            `json:"recipientId"`
	RecipientRole Role              `json:"recipientRole"`
	Type          string            `json:"type"`
	Title         string            `json:"title"`
	Body          string            `json:"body"`
	Data          map[string]string `json:"data,omitempty"`
}

// Notifier delivers notifications. Implementations must not block for long;
// the engine logs and drops any error.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error { return f(ctx, n) }

func toApplicant(id, typ, title, body string, data map[string]string) Notification {
	return Notification{RecipientID: id, RecipientRole: RoleApplicant, Type: typ, Title: title, Body: body, Data: data}
}

func toCompany(id, typ, title, body string, data map[string]string) Notification {
	return Notification{RecipientID: id, RecipientRole: RoleCompany, Type: typ, Title: title, Body: body, Data: data}
}
