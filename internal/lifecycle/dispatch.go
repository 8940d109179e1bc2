package lifecycle

import (
	"context"
	"strings"
	"time"
)

// Entity types of the transition request protocol.
const (
	EntityApplication = "application"
	EntityEmployment  = "employment"
	EntityRequest     = "request"
)

// TransitionRequest is the uniform mutation shape used by every caller.
//
// Creation is expressed on the parent: "apply" on an application carries the
// listing id in EntityID, "create" on a request carries the employment id.
// Times in Payload are RFC 3339 strings.
type TransitionRequest struct {
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Action     string         `json:"action"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Result carries the entity a dispatched transition produced.
type Result struct {
	Application *Application
	Employment  *Employment
	Request     *Request
}

// Dispatch decodes req into a typed action and runs it. Unknown actions and
// the sweep-only transitions fail with ErrInvalidTransition.
func (e *Engine) Dispatch(ctx context.Context, actor Actor, req TransitionRequest) (Result, error) {
	p := payload(req.Payload)
	if strings.TrimSpace(req.EntityID) == "" {
		return Result{}, invalidPayload("entityId is required")
	}

	switch req.EntityType {
	case EntityApplication:
		if req.Action == "apply" {
			app, err := e.Apply(ctx, actor, req.EntityID)
			return Result{Application: app}, err
		}
		action, err := DecodeApplicationAction(req.Action, p)
		if err != nil {
			return Result{}, err
		}
		app, err := e.ActOnApplication(ctx, actor, req.EntityID, action)
		return Result{Application: app}, err

	case EntityEmployment:
		action, err := DecodeEmploymentAction(req.Action, p)
		if err != nil {
			return Result{}, err
		}
		emp, err := e.ActOnEmployment(ctx, actor, req.EntityID, action)
		return Result{Employment: emp}, err

	case EntityRequest:
		if RequestActionKind(req.Action) == ActionCreateRequest {
			in, err := decodeNewRequest(p)
			if err != nil {
				return Result{}, err
			}
			r, err := e.CreateRequest(ctx, actor, req.EntityID, in)
			return Result{Request: r}, err
		}
		action, err := DecodeRequestAction(req.Action, p)
		if err != nil {
			return Result{}, err
		}
		r, err := e.ActOnRequest(ctx, actor, req.EntityID, action)
		return Result{Request: r}, err
	}
	return Result{}, invalidPayload("unknown entity type %q", req.EntityType)
}

// DecodeApplicationAction maps a user-facing action name and its payload to
// an ApplicationAction.
func DecodeApplicationAction(name string, raw map[string]any) (ApplicationAction, error) {
	p := payload(raw)
	switch ApplicationActionKind(name) {
	case ActionShortlist:
		return Shortlist{}, nil
	case ActionScheduleInterview:
		at, err := p.when("at")
		if err != nil {
			return nil, err
		}
		loc, err := p.str("location")
		return ScheduleInterview{At: at, Location: loc}, err
	case ActionRescheduleInterview:
		at, err := p.when("at")
		if err != nil {
			return nil, err
		}
		loc, err := p.str("location")
		return RescheduleInterview{At: at, Location: loc}, err
	case ActionCancelInterview:
		r, err := p.str("reason")
		return CancelInterview{Reason: r}, err
	case ActionDeclineInterview:
		r, err := p.str("reason")
		return DeclineInterview{Reason: r}, err
	case ActionMarkNoShow:
		return MarkNoShow{}, nil
	case ActionSendOffer:
		var act SendOffer
		if p.has("validUntil") {
			t, err := p.when("validUntil")
			if err != nil {
				return nil, err
			}
			act.ValidUntil = &t
		}
		key, err := p.str("letterKey")
		act.LetterKey = key
		return act, err
	case ActionAcceptOffer:
		return AcceptOffer{}, nil
	case ActionDeclineOffer:
		r, err := p.str("reason")
		return DeclineOffer{Reason: r}, err
	case ActionReject:
		r, err := p.str("reason")
		return Reject{Reason: r}, err
	case ActionWithdraw:
		r, err := p.str("reason")
		return Withdraw{Reason: r}, err
	case ActionExtendValidity:
		return ExtendValidity{}, nil
	}
	return nil, unknownAction(EntityApplication, name)
}

// DecodeEmploymentAction maps a user-facing action name and its payload to
// an EmploymentAction.
func DecodeEmploymentAction(name string, raw map[string]any) (EmploymentAction, error) {
	p := payload(raw)
	switch EmploymentActionKind(name) {
	case ActionStartNow:
		return StartNow{}, nil
	case ActionMoveToClosure:
		return MoveToClosure{}, nil
	case ActionComplete:
		return Complete{}, nil
	case ActionTerminate:
		var act Terminate
		if p.has("endDate") {
			t, err := p.when("endDate")
			if err != nil {
				return nil, err
			}
			act.EndDate = &t
		}
		r, err := p.str("reason")
		act.Reason = r
		return act, err
	case ActionAttachDoc:
		typ, err := p.str("type")
		if err != nil {
			return nil, err
		}
		ref, err := p.str("fileRef")
		return AttachDoc{Type: typ, FileRef: ref}, err
	case ActionVerifyDoc:
		typ, err := p.str("type")
		return VerifyDoc{Type: typ}, err
	case ActionAddNote:
		text, err := p.str("text")
		return AddNote{Text: text}, err
	case ActionUpdatePIC:
		var c Contact
		var err error
		if c.Name, err = p.str("name"); err != nil {
			return nil, err
		}
		if c.Email, err = p.str("email"); err != nil {
			return nil, err
		}
		c.Phone, err = p.str("phone")
		return UpdatePIC{Contact: c}, err
	}
	return nil, unknownAction(EntityEmployment, name)
}

// DecodeRequestAction maps an action name on an existing request.
func DecodeRequestAction(name string, raw map[string]any) (RequestAction, error) {
	p := payload(raw)
	switch RequestActionKind(name) {
	case ActionCancelRequest:
		return CancelRequest{}, nil
	case ActionApproveRequest:
		r, err := p.str("remark")
		return ApproveRequest{Remark: r}, err
	case ActionRejectRequest:
		r, err := p.str("remark")
		return RejectRequest{Remark: r}, err
	}
	return nil, unknownAction(EntityRequest, name)
}

func decodeNewRequest(p payload) (NewRequest, error) {
	raw, err := p.str("kind")
	if err != nil {
		return NewRequest{}, err
	}
	kind, err := ParseRequestKind(raw)
	if err != nil {
		return NewRequest{}, invalidPayload("%v", err)
	}
	in := NewRequest{Kind: kind}
	if p.has("proposedDate") {
		if in.ProposedDate, err = p.when("proposedDate"); err != nil {
			return NewRequest{}, err
		}
	}
	in.Reason, err = p.str("reason")
	return in, err
}

// payload is the loosely typed body of a TransitionRequest.
type payload map[string]any

func (p payload) has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// str returns the value of key, or "" when absent.
func (p payload) str(key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidPayload("payload field %q must be a string, got %T", key, v)
	}
	return s, nil
}

// when parses key as RFC 3339. Absent keys yield the zero time.
func (p payload) when(key string) (time.Time, error) {
	s, err := p.str(key)
	if err != nil || s == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalidPayload("payload field %q is not an RFC 3339 time: %v", key, err)
	}
	return t.UTC(), nil
}
