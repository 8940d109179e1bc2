package lifecycle

import (
	"slices"
	"strings"
	"time"
)

// ApplicationActionKind names an application action on the wire.
type ApplicationActionKind string

const (
	ActionShortlist           ApplicationActionKind = "shortlist"
	ActionScheduleInterview   ApplicationActionKind = "scheduleInterview"
	ActionRescheduleInterview ApplicationActionKind = "rescheduleInterview"
	ActionCancelInterview     ApplicationActionKind = "cancelInterview"
	ActionDeclineInterview    ApplicationActionKind = "declineInterview"
	ActionMarkNoShow          ApplicationActionKind = "markNoShow"
	ActionSendOffer           ApplicationActionKind = "sendOffer"
	ActionAcceptOffer         ApplicationActionKind = "acceptOffer"
	ActionDeclineOffer        ApplicationActionKind = "declineOffer"
	ActionReject              ApplicationActionKind = "reject"
	ActionWithdraw            ApplicationActionKind = "withdraw"
	ActionExtendValidity      ApplicationActionKind = "extendValidity"

	// Sweep-only; not reachable through the transition request protocol.
	ActionExpireValidity ApplicationActionKind = "expireValidity"
	ActionExpireOffer    ApplicationActionKind = "expireOffer"
)

const (
	reasonValidityExpired  = "expired: no action"
	reasonOfferExpired     = "offer expired"
	reasonApplicantDecline = "offer declined by applicant"
)

// ApplicationAction is the closed set of actions an Application accepts.
type ApplicationAction interface {
	Kind() ApplicationActionKind
	applicationAction()
}

type (
	Shortlist         struct{}
	ScheduleInterview struct {
		At       time.Time
		Location string
	}
	RescheduleInterview struct {
		At       time.Time
		Location string
	}
	CancelInterview  struct{ Reason string }
	DeclineInterview struct{ Reason string }
	MarkNoShow       struct{}
	// SendOffer uses the policy offer window when ValidUntil is nil.
	SendOffer struct {
		ValidUntil *time.Time
		LetterKey  string
	}
	AcceptOffer    struct{}
	DeclineOffer   struct{ Reason string }
	Reject         struct{ Reason string }
	Withdraw       struct{ Reason string }
	ExtendValidity struct{}
	ExpireValidity struct{}
	ExpireOffer    struct{}
)

func (Shortlist) Kind() ApplicationActionKind           { return ActionShortlist }
func (ScheduleInterview) Kind() ApplicationActionKind   { return ActionScheduleInterview }
func (RescheduleInterview) Kind() ApplicationActionKind { return ActionRescheduleInterview }
func (CancelInterview) Kind() ApplicationActionKind     { return ActionCancelInterview }
func (DeclineInterview) Kind() ApplicationActionKind    { return ActionDeclineInterview }
func (MarkNoShow) Kind() ApplicationActionKind          { return ActionMarkNoShow }
func (SendOffer) Kind() ApplicationActionKind           { return ActionSendOffer }
func (AcceptOffer) Kind() ApplicationActionKind         { return ActionAcceptOffer }
func (DeclineOffer) Kind() ApplicationActionKind        { return ActionDeclineOffer }
func (Reject) Kind() ApplicationActionKind              { return ActionReject }
func (Withdraw) Kind() ApplicationActionKind            { return ActionWithdraw }
func (ExtendValidity) Kind() ApplicationActionKind      { return ActionExtendValidity }
func (ExpireValidity) Kind() ApplicationActionKind      { return ActionExpireValidity }
func (ExpireOffer) Kind() ApplicationActionKind         { return ActionExpireOffer }

func (Shortlist) applicationAction()           {}
func (ScheduleInterview) applicationAction()   {}
func (RescheduleInterview) applicationAction() {}
func (CancelInterview) applicationAction()     {}
func (DeclineInterview) applicationAction()    {}
func (MarkNoShow) applicationAction()          {}
func (SendOffer) applicationAction()           {}
func (AcceptOffer) applicationAction()         {}
func (DeclineOffer) applicationAction()        {}
func (Reject) applicationAction()              {}
func (Withdraw) applicationAction()            {}
func (ExtendValidity) applicationAction()      {}
func (ExpireValidity) applicationAction()      {}
func (ExpireOffer) applicationAction()         {}

type applicationRule struct {
	roles []Role
	from  []ApplicationStatus
	to    ApplicationStatus
}

var (
	rolesCompany   = []Role{RoleCompany}
	rolesApplicant = []Role{RoleApplicant}
	rolesSystem    = []Role{RoleSystem}
	preOffer       = []ApplicationStatus{ApplicationShortlisted, ApplicationInterviewScheduled}
	interviewOnly  = []ApplicationStatus{ApplicationInterviewScheduled}
)

// applicationRules is the single transition table shared by user actions and
// the sweep.
var applicationRules = map[ApplicationActionKind]applicationRule{
	ActionShortlist:           {rolesCompany, []ApplicationStatus{ApplicationNew}, ApplicationShortlisted},
	ActionScheduleInterview:   {rolesCompany, preOffer, ApplicationInterviewScheduled},
	ActionRescheduleInterview: {rolesCompany, preOffer, ApplicationInterviewScheduled},
	ActionCancelInterview:     {rolesCompany, interviewOnly, ApplicationShortlisted},
	ActionDeclineInterview:    {rolesApplicant, interviewOnly, ApplicationShortlisted},
	ActionMarkNoShow:          {rolesCompany, interviewOnly, ApplicationNotAttending},
	ActionSendOffer:           {rolesCompany, preOffer, ApplicationPendingAcceptance},
	ActionAcceptOffer:         {rolesApplicant, []ApplicationStatus{ApplicationPendingAcceptance}, ApplicationAccepted},
	ActionDeclineOffer: {
		[]Role{RoleApplicant, RoleCompany},
		[]ApplicationStatus{ApplicationPendingAcceptance},
		ApplicationRejected,
	},
	ActionReject: {rolesCompany, AwaitingCompanyStatuses, ApplicationRejected},
	ActionWithdraw: {
		rolesApplicant,
		[]ApplicationStatus{
			ApplicationNew, ApplicationShortlisted, ApplicationInterviewScheduled,
			ApplicationPendingAcceptance, ApplicationAccepted,
		},
		ApplicationWithdrawn,
	},
	ActionExtendValidity: {rolesApplicant, []ApplicationStatus{ApplicationNew}, ApplicationNew},
	ActionExpireValidity: {rolesSystem, AwaitingCompanyStatuses, ApplicationRejected},
	ActionExpireOffer:    {rolesSystem, []ApplicationStatus{ApplicationPendingAcceptance}, ApplicationRejected},
}

// ApplicationTransition returns the target status of kind from status, and
// whether the table permits it at all.
func ApplicationTransition(from ApplicationStatus, kind ApplicationActionKind) (ApplicationStatus, bool) {
	rule, ok := applicationRules[kind]
	if !ok || !slices.Contains(rule.from, from) {
		return "", false
	}
	return rule.to, true
}

// Policy holds the configurable time windows of the application machine.
type Policy struct {
	ApplicationValidity time.Duration
	OfferValidity       time.Duration
}

// DefaultPolicy is 14 days to act on an application and 7 to accept an offer.
func DefaultPolicy() Policy {
	return Policy{
		ApplicationValidity: 14 * 24 * time.Hour,
		OfferValidity:       7 * 24 * time.Hour,
	}
}

type applicationEnv struct {
	now    time.Time
	policy Policy
	// employment is the linked record, loaded only when withdrawing an
	// ACCEPTED application.
	employment *Employment
}

type applicationOutcome struct {
	from              ApplicationStatus
	entry             HistoryEntry
	notifications     []Notification
	spawnEmployment   bool
	releaseEmployment bool
}

// transitionApplication validates action against app and mutates app in
// place. Callers pass a clone and persist it with a conditional update.
func transitionApplication(app *Application, actor Actor, action ApplicationAction, env applicationEnv) (applicationOutcome, error) {
	kind := action.Kind()
	rule, ok := applicationRules[kind]
	if !ok || !slices.Contains(rule.from, app.Status) {
		return applicationOutcome{}, invalidTransition("application", app.Status, string(kind))
	}
	if !actor.is(rule.roles...) {
		return applicationOutcome{}, forbiddenActor("application", actor, string(kind))
	}

	out := applicationOutcome{from: app.Status}
	now := env.now
	data := map[string]string{"applicationId": app.ID, "listingId": app.ListingID}
	var note string

	switch act := action.(type) {
	case Shortlist:
		app.Stage = nil
		out.notifications = append(out.notifications, toApplicant(app.ApplicantID, NotifyShortlisted,
			"You have been shortlisted", "A company shortlisted your application.", data))

	case ScheduleInterview:
		if err := setInterview(app, act.At, act.Location); err != nil {
			return out, err
		}
		out.notifications = append(out.notifications, interviewNotice(app, data))

	case RescheduleInterview:
		if err := setInterview(app, act.At, act.Location); err != nil {
			return out, err
		}
		note = "rescheduled"
		out.notifications = append(out.notifications, interviewNotice(app, data))

	case CancelInterview:
		app.Stage = nil
		note = strings.TrimSpace(act.Reason)
		out.notifications = append(out.notifications, toApplicant(app.ApplicantID, NotifyInterviewCancelled,
			"Interview cancelled", "The company cancelled your interview.", data))

	case DeclineInterview:
		app.Stage = nil
		note = joinNote("outcome: declined", act.Reason)
		out.notifications = append(out.notifications, toCompany(app.CompanyID, NotifyInterviewDeclined,
			"Interview declined", "The applicant declined the interview.", data))

	case MarkNoShow:
		app.Stage = nil
		note = "outcome: no show"
		out.notifications = append(out.notifications, toApplicant(app.ApplicantID, NotifyNoShow,
			"Interview missed", "You were marked as not attending the interview.", data))

	case SendOffer:
		validUntil := now.Add(env.policy.OfferValidity)
		if act.ValidUntil != nil {
			validUntil = *act.ValidUntil
		}
		app.Stage = OfferStage{SentAt: now, ValidUntil: validUntil, LetterKey: act.LetterKey}
		out.notifications = append(out.notifications, toApplicant(app.ApplicantID, NotifyOfferSent,
			"You received an offer", "Respond before "+validUntil.Format(time.RFC1123)+".", data))

	case AcceptOffer:
		offer, _ := app.Offer()
		if now.After(offer.ValidUntil) {
			return out, guardViolation("offer expired at %s", offer.ValidUntil.Format(time.RFC3339))
		}
		app.Stage = nil
		out.spawnEmployment = true
		out.notifications = append(out.notifications, toCompany(app.CompanyID, NotifyOfferAccepted,
			"Offer accepted", "The applicant accepted your offer.", data))

	case DeclineOffer:
		reason := strings.TrimSpace(act.Reason)
		if reason == "" {
			if actor.Role == RoleCompany {
				return out, guardViolation("a reason is required when the company withdraws an offer")
			}
			reason = reasonApplicantDecline
		}
		app.Stage = RejectionStage{By: actor.Role, Reason: reason}
		if actor.Role == RoleCompany {
			out.notifications = append(out.notifications, toApplicant(app.ApplicantID, NotifyOfferDeclined,
				"Offer withdrawn", reason, data))
		} else {
			out.notifications = append(out.notifications, toCompany(app.CompanyID, NotifyOfferDeclined,
				"Offer declined", reason, data))
		}

	case Reject:
		reason := strings.TrimSpace(act.Reason)
		if reason == "" {
			return out, guardViolation("a rejection reason is required")
		}
		app.Stage = RejectionStage{By: RoleCompany, Reason: reason}
		out.notifications = append(out.notifications, toApplicant(app.ApplicantID, NotifyApplicationRejected,
			"Application rejected", reason, data))

	case Withdraw:
		if app.Status == ApplicationAccepted && env.employment != nil {
			if env.employment.Status.AtLeast(EmploymentClosure) {
				return out, guardViolation("employment %s is already %s", env.employment.ID, env.employment.Status)
			}
			out.releaseEmployment = true
		}
		app.Stage = nil
		note = strings.TrimSpace(act.Reason)
		out.notifications = append(out.notifications, toCompany(app.CompanyID, NotifyApplicationWithdrawn,
			"Application withdrawn", "The applicant withdrew their application.", data))

	case ExtendValidity:
		if app.ValidityExtended {
			return out, guardViolation("validity of application %s was already extended", app.ID)
		}
		base := app.ValidityUntil
		if now.After(base) {
			base = now
		}
		app.ValidityUntil = base.Add(env.policy.ApplicationValidity)
		app.ValidityExtended = true
		note = "validity until " + app.ValidityUntil.Format(time.RFC3339)

	case ExpireValidity:
		if !now.After(app.ValidityUntil) {
			return out, guardViolation("application %s is valid until %s", app.ID, app.ValidityUntil.Format(time.RFC3339))
		}
		app.Stage = RejectionStage{By: RoleCompany, Reason: reasonValidityExpired}
		out.notifications = append(out.notifications,
			toApplicant(app.ApplicantID, NotifyApplicationExpired, "Application expired",
				"The company did not act on your application in time.", data),
			toCompany(app.CompanyID, NotifyApplicationExpired, "Application expired",
				"An application expired without action.", data))

	case ExpireOffer:
		offer, _ := app.Offer()
		if !now.After(offer.ValidUntil) {
			return out, guardViolation("offer on application %s is valid until %s", app.ID, offer.ValidUntil.Format(time.RFC3339))
		}
		app.Stage = RejectionStage{By: RoleApplicant, Reason: reasonOfferExpired}
		out.notifications = append(out.notifications,
			toApplicant(app.ApplicantID, NotifyOfferExpired, "Offer expired", "Your offer expired.", data),
			toCompany(app.CompanyID, NotifyOfferExpired, "Offer expired", "An offer expired unanswered.", data))

	default:
		return out, invalidTransition("application", app.Status, string(kind))
	}

	app.Status = rule.to
	app.UpdatedAt = now
	out.entry = HistoryEntry{
		At:        now,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    string(kind),
		From:      out.from,
		To:        rule.to,
		Note:      note,
	}
	app.History = append(app.History, out.entry)
	return out, nil
}

func setInterview(app *Application, at time.Time, location string) error {
	if at.IsZero() {
		return guardViolation("interview time is required")
	}
	app.Stage = InterviewStage{At: at, Location: strings.TrimSpace(location)}
	return nil
}

func interviewNotice(app *Application, data map[string]string) Notification {
	iv := app.Stage.(InterviewStage)
	body := "Interview on " + iv.At.Format(time.RFC1123)
	if iv.Location != "" {
		body += " at " + iv.Location
	}
	return toApplicant(app.ApplicantID, NotifyInterviewScheduled, "Interview scheduled", body+".", data)
}

func joinNote(prefix, extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return prefix
	}
	return prefix + "; " + extra
}
