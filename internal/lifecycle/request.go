package lifecycle

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// RequestKind distinguishes the two employment change workflows.
type RequestKind string

const (
	RequestEarlyCompletion RequestKind = "EARLY_COMPLETION"
	RequestTermination     RequestKind = "TERMINATION"
)

// ParseRequestKind converts a raw string to a RequestKind.
func ParseRequestKind(s string) (RequestKind, error) {
	k := RequestKind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case RequestEarlyCompletion, RequestTermination:
		return k, nil
	}
	return "", fmt.Errorf("unknown request kind %q", s)
}

// eligibleFrom lists the employment statuses in which a request may be filed.
func (k RequestKind) eligibleFrom() []EmploymentStatus {
	if k == RequestEarlyCompletion {
		return []EmploymentStatus{EmploymentOngoing}
	}
	return []EmploymentStatus{EmploymentUpcoming, EmploymentOngoing}
}

// RequestStatus of an early-completion or termination request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCancelled RequestStatus = "CANCELLED"
)

// Initiator is the side of the placement that filed a request.
type Initiator string

const (
	InitiatorStudent Initiator = "student"
	InitiatorCompany Initiator = "company"
)

func initiatorFor(r Role) (Initiator, bool) {
	switch r {
	case RoleApplicant:
		return InitiatorStudent, true
	case RoleCompany:
		return InitiatorCompany, true
	}
	return "", false
}

// Request proposes a change to an Employment; approval applies it.
type Request struct {
	ID             string
	EmploymentID   string
	Kind           RequestKind
	InitiatedBy    Initiator
	InitiatorID    string
	Status         RequestStatus
	ProposedDate   time.Time
	Reason         string
	DecisionRemark string
	DecidedBy      string
	DecidedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone returns a copy safe to mutate.
func (r *Request) Clone() *Request {
	c := *r
	c.DecidedAt = clonePtr(r.DecidedAt)
	return &c
}

// RequestActionKind names a request action on the wire.
type RequestActionKind string

const (
	ActionCreateRequest  RequestActionKind = "create"
	ActionCancelRequest  RequestActionKind = "cancel"
	ActionApproveRequest RequestActionKind = "approve"
	ActionRejectRequest  RequestActionKind = "reject"
)

// RequestAction is the closed set of actions on an existing Request.
type RequestAction interface {
	Kind() RequestActionKind
	requestAction()
}

type (
	CancelRequest  struct{}
	ApproveRequest struct{ Remark string }
	RejectRequest  struct{ Remark string }
)

func (CancelRequest) Kind() RequestActionKind  { return ActionCancelRequest }
func (ApproveRequest) Kind() RequestActionKind { return ActionApproveRequest }
func (RejectRequest) Kind() RequestActionKind  { return ActionRejectRequest }

func (CancelRequest) requestAction()  {}
func (ApproveRequest) requestAction() {}
func (RejectRequest) requestAction()  {}

type requestRule struct {
	roles []Role
	to    RequestStatus
}

// Every request action starts from PENDING.
var requestRules = map[RequestActionKind]requestRule{
	ActionCancelRequest:  {[]Role{RoleApplicant, RoleCompany}, RequestCancelled},
	ActionApproveRequest: {deciders, RequestApproved},
	ActionRejectRequest:  {deciders, RequestRejected},
}

type requestOutcome struct {
	from          RequestStatus
	employment    EmploymentAction
	notifications []Notification
}

// transitionRequest validates action against req and mutates req in place.
// On approval it names the employment action to apply in the same
// transaction.
func transitionRequest(req *Request, emp *Employment, actor Actor, action RequestAction, now time.Time) (requestOutcome, error) {
	kind := action.Kind()
	rule, ok := requestRules[kind]
	if !ok || req.Status != RequestPending {
		return requestOutcome{}, invalidTransition("request", req.Status, string(kind))
	}
	if !actor.is(rule.roles...) {
		return requestOutcome{}, forbiddenActor("request", actor, string(kind))
	}

	out := requestOutcome{from: req.Status}
	data := map[string]string{"requestId": req.ID, "employmentId": req.EmploymentID, "kind": string(req.Kind)}

	switch act := action.(type) {
	case CancelRequest:
		if initiator, _ := initiatorFor(actor.Role); initiator != req.InitiatedBy || actor.ID != req.InitiatorID {
			return out, guardViolation("only the initiator may cancel request %s", req.ID)
		}
		out.notifications = append(out.notifications, counterpartNotice(req, emp, NotifyRequestCancelled,
			"Request cancelled", "A pending request was cancelled by its initiator.", data))

	case ApproveRequest:
		if !slices.Contains(req.Kind.eligibleFrom(), emp.Status) && !(req.Kind == RequestTermination && emp.Status == EmploymentClosure) {
			return out, guardViolation("employment %s is %s and can no longer take this request", emp.ID, emp.Status)
		}
		end := req.ProposedDate
		if req.Kind == RequestEarlyCompletion {
			out.employment = CloseEarly{EndDate: end}
		} else {
			out.employment = Terminate{EndDate: &end, Reason: req.Reason}
		}
		req.DecisionRemark = strings.TrimSpace(act.Remark)
		out.notifications = append(out.notifications, decisionNotices(req, emp, NotifyRequestApproved, "Request approved", data)...)

	case RejectRequest:
		remark := strings.TrimSpace(act.Remark)
		if remark == "" {
			return out, guardViolation("a decision remark is required to reject a request")
		}
		req.DecisionRemark = remark
		out.notifications = append(out.notifications, decisionNotices(req, emp, NotifyRequestRejected, "Request rejected", data)...)

	default:
		return out, invalidTransition("request", req.Status, string(kind))
	}

	if kind != ActionCancelRequest {
		at := now
		req.DecidedBy = actor.ID
		req.DecidedAt = &at
	}
	req.Status = rule.to
	req.UpdatedAt = now
	return out, nil
}

// counterpartNotice addresses the side that did not initiate req.
func counterpartNotice(req *Request, emp *Employment, typ, title, body string, data map[string]string) Notification {
	if req.InitiatedBy == InitiatorStudent {
		return toCompany(emp.CompanyID, typ, title, body, data)
	}
	return toApplicant(emp.ApplicantID, typ, title, body, data)
}

func decisionNotices(req *Request, emp *Employment, typ, title string, data map[string]string) []Notification {
	body := title + "."
	if req.DecisionRemark != "" {
		body = req.DecisionRemark
	}
	return []Notification{
		toApplicant(emp.ApplicantID, typ, title, body, data),
		toCompany(emp.CompanyID, typ, title, body, data),
	}
}
