package lifecycle

import (
	"slices"
	"strings"
	"time"
)

// EmploymentActionKind names an employment action on the wire.
type EmploymentActionKind string

const (
	ActionStartNow      EmploymentActionKind = "startNow"
	ActionMoveToClosure EmploymentActionKind = "moveToClosure"
	ActionComplete      EmploymentActionKind = "complete"
	ActionTerminate     EmploymentActionKind = "terminate"
	ActionAttachDoc     EmploymentActionKind = "attachDoc"
	ActionVerifyDoc     EmploymentActionKind = "verifyDoc"
	ActionAddNote       EmploymentActionKind = "addNote"
	ActionUpdatePIC     EmploymentActionKind = "updatePIC"

	// Sweep-only.
	ActionStartOnSchedule EmploymentActionKind = "startOnSchedule"
	ActionReachEnd        EmploymentActionKind = "reachEnd"
	ActionAutoComplete    EmploymentActionKind = "autoComplete"

	// Applied by an approved early-completion request.
	ActionCloseEarly EmploymentActionKind = "closeEarly"
)

// EmploymentAction is the closed set of actions an Employment accepts.
type EmploymentAction interface {
	Kind() EmploymentActionKind
	employmentAction()
}

type (
	StartNow      struct{}
	MoveToClosure struct{}
	Complete      struct{}
	// Terminate ends the employment at EndDate, or now when nil.
	Terminate struct {
		EndDate *time.Time
		Reason  string
	}
	AttachDoc struct {
		Type    string
		FileRef string
	}
	VerifyDoc       struct{ Type string }
	AddNote         struct{ Text string }
	UpdatePIC       struct{ Contact Contact }
	StartOnSchedule struct{}
	ReachEnd        struct{}
	AutoComplete    struct{}
	CloseEarly      struct{ EndDate time.Time }
)

func (StartNow) Kind() EmploymentActionKind        { return ActionStartNow }
func (MoveToClosure) Kind() EmploymentActionKind   { return ActionMoveToClosure }
func (Complete) Kind() EmploymentActionKind        { return ActionComplete }
func (Terminate) Kind() EmploymentActionKind       { return ActionTerminate }
func (AttachDoc) Kind() EmploymentActionKind       { return ActionAttachDoc }
func (VerifyDoc) Kind() EmploymentActionKind       { return ActionVerifyDoc }
func (AddNote) Kind() EmploymentActionKind         { return ActionAddNote }
func (UpdatePIC) Kind() EmploymentActionKind       { return ActionUpdatePIC }
func (StartOnSchedule) Kind() EmploymentActionKind { return ActionStartOnSchedule }
func (ReachEnd) Kind() EmploymentActionKind        { return ActionReachEnd }
func (AutoComplete) Kind() EmploymentActionKind    { return ActionAutoComplete }
func (CloseEarly) Kind() EmploymentActionKind      { return ActionCloseEarly }

func (StartNow) employmentAction()        {}
func (MoveToClosure) employmentAction()   {}
func (Complete) employmentAction()        {}
func (Terminate) employmentAction()       {}
func (AttachDoc) employmentAction()       {}
func (VerifyDoc) employmentAction()       {}
func (AddNote) employmentAction()         {}
func (UpdatePIC) employmentAction()       {}
func (StartOnSchedule) employmentAction() {}
func (ReachEnd) employmentAction()        {}
func (AutoComplete) employmentAction()    {}
func (CloseEarly) employmentAction()      {}

type employmentRule struct {
	roles []Role
	from  []EmploymentStatus
	// to is empty for metadata actions that keep the status.
	to EmploymentStatus
}

var (
	upcomingOnly = []EmploymentStatus{EmploymentUpcoming}
	ongoingOnly  = []EmploymentStatus{EmploymentOngoing}
	closureOnly  = []EmploymentStatus{EmploymentClosure}
	deciders     = []Role{RoleCompany, RoleAdmin}
)

var employmentRules = map[EmploymentActionKind]employmentRule{
	ActionStartNow:        {rolesCompany, upcomingOnly, EmploymentOngoing},
	ActionMoveToClosure:   {rolesCompany, ongoingOnly, EmploymentClosure},
	ActionComplete:        {rolesCompany, closureOnly, EmploymentCompleted},
	ActionTerminate:       {[]Role{RoleCompany, RoleAdmin, RoleSystem}, LiveEmploymentStatuses, EmploymentTerminated},
	ActionAttachDoc:       {[]Role{RoleCompany, RoleApplicant}, LiveEmploymentStatuses, ""},
	ActionVerifyDoc:       {deciders, LiveEmploymentStatuses, ""},
	ActionAddNote:         {[]Role{RoleCompany, RoleApplicant, RoleAdmin}, LiveEmploymentStatuses, ""},
	ActionUpdatePIC:       {rolesCompany, LiveEmploymentStatuses, ""},
	ActionStartOnSchedule: {rolesSystem, upcomingOnly, EmploymentOngoing},
	ActionReachEnd:        {rolesSystem, ongoingOnly, EmploymentClosure},
	ActionAutoComplete:    {rolesSystem, closureOnly, EmploymentCompleted},
	ActionCloseEarly:      {deciders, ongoingOnly, EmploymentClosure},
}

// EmploymentTransition returns the target status of kind from status. Metadata
// actions return from unchanged.
func EmploymentTransition(from EmploymentStatus, kind EmploymentActionKind) (EmploymentStatus, bool) {
	rule, ok := employmentRules[kind]
	if !ok || !slices.Contains(rule.from, from) {
		return "", false
	}
	if rule.to == "" {
		return from, true
	}
	return rule.to, true
}

type employmentEnv struct {
	now time.Time
	// unresolvedTimesheets is only consulted by complete and autoComplete.
	unresolvedTimesheets bool
}

type employmentOutcome struct {
	from          EmploymentStatus
	notifications []Notification
}

// needsTimesheetCheck reports whether the guard of kind reads timesheets.
func needsTimesheetCheck(kind EmploymentActionKind) bool {
	return kind == ActionComplete || kind == ActionAutoComplete
}

// transitionEmployment is the one guard-and-mutate function behind both the
// manual and the sweep variants of every employment transition.
func transitionEmployment(emp *Employment, actor Actor, action EmploymentAction, env employmentEnv) (employmentOutcome, error) {
	kind := action.Kind()
	rule, ok := employmentRules[kind]
	if !ok || !slices.Contains(rule.from, emp.Status) {
		return employmentOutcome{}, invalidTransition("employment", emp.Status, string(kind))
	}
	if !actor.is(rule.roles...) {
		return employmentOutcome{}, forbiddenActor("employment", actor, string(kind))
	}

	out := employmentOutcome{from: emp.Status}
	now := env.now
	data := map[string]string{"employmentId": emp.ID, "applicationId": emp.ApplicationID}

	switch act := action.(type) {
	case StartNow:
		out.notifications = append(out.notifications, startedNotice(emp, data))

	case StartOnSchedule:
		if emp.StartDate.After(now) {
			return out, guardViolation("employment %s starts at %s", emp.ID, emp.StartDate.Format(time.RFC3339))
		}
		out.notifications = append(out.notifications, startedNotice(emp, data))

	case MoveToClosure:
		if missing := emp.MissingDocs(); len(missing) > 0 {
			return out, guardViolation("required documents not verified: %s", strings.Join(missing, ", "))
		}
		out.notifications = append(out.notifications, closureNotice(emp, data))

	case ReachEnd:
		if emp.EndDate.After(now) {
			return out, guardViolation("employment %s ends at %s", emp.ID, emp.EndDate.Format(time.RFC3339))
		}
		out.notifications = append(out.notifications, closureNotice(emp, data))

	case CloseEarly:
		if act.EndDate.IsZero() {
			return out, guardViolation("an end date is required")
		}
		emp.EndDate = act.EndDate
		out.notifications = append(out.notifications, closureNotice(emp, data))

	case Complete, AutoComplete:
		if missing := emp.MissingDocs(); len(missing) > 0 {
			return out, guardViolation("required documents not verified: %s", strings.Join(missing, ", "))
		}
		if env.unresolvedTimesheets {
			return out, guardViolation("employment %s has unresolved timesheets", emp.ID)
		}
		out.notifications = append(out.notifications,
			toApplicant(emp.ApplicantID, NotifyEmploymentCompleted, "Internship completed",
				"Your internship has been completed.", data),
			toCompany(emp.CompanyID, NotifyEmploymentCompleted, "Internship completed",
				"An internship has been completed.", data))

	case Terminate:
		end := now
		if act.EndDate != nil {
			end = *act.EndDate
		}
		emp.EndDate = end
		body := "The internship was terminated."
		if r := strings.TrimSpace(act.Reason); r != "" {
			body = r
		}
		out.notifications = append(out.notifications,
			toApplicant(emp.ApplicantID, NotifyEmploymentTerminated, "Internship terminated", body, data),
			toCompany(emp.CompanyID, NotifyEmploymentTerminated, "Internship terminated", body, data))

	case AttachDoc:
		typ, ref := strings.TrimSpace(act.Type), strings.TrimSpace(act.FileRef)
		if typ == "" || ref == "" {
			return out, guardViolation("document type and file reference are required")
		}
		doc := Document{Type: typ, FileRef: ref, UploadedAt: now}
		if i := slices.IndexFunc(emp.Docs, func(d Document) bool { return d.Type == typ }); i >= 0 {
			emp.Docs[i] = doc
		} else {
			emp.Docs = append(emp.Docs, doc)
		}

	case VerifyDoc:
		i := slices.IndexFunc(emp.Docs, func(d Document) bool { return d.Type == act.Type })
		if i < 0 {
			return out, guardViolation("no %q document has been attached", act.Type)
		}
		at := now
		emp.Docs[i].Verified = true
		emp.Docs[i].VerifiedBy = actor.ID
		emp.Docs[i].VerifiedAt = &at

	case AddNote:
		text := strings.TrimSpace(act.Text)
		if text == "" {
			return out, guardViolation("note text is required")
		}
		emp.Notes = append(emp.Notes, Note{At: now, AuthorID: actor.ID, AuthorRole: actor.Role, Text: text})

	case UpdatePIC:
		if strings.TrimSpace(act.Contact.Name) == "" {
			return out, guardViolation("person in charge needs a name")
		}
		pic := act.Contact
		emp.PIC = &pic

	default:
		return out, invalidTransition("employment", emp.Status, string(kind))
	}

	if rule.to != "" {
		emp.Status = rule.to
	}
	emp.UpdatedAt = now
	return out, nil
}

func startedNotice(emp *Employment, data map[string]string) Notification {
	return toApplicant(emp.ApplicantID, NotifyEmploymentStarted, "Internship started",
		"Your internship is now ongoing.", data)
}

func closureNotice(emp *Employment, data map[string]string) Notification {
	return toCompany(emp.CompanyID, NotifyEmploymentClosure, "Internship in closure",
		"Verify the required documents and timesheets to complete the internship.", data)
}
