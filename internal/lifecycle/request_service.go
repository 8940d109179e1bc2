package lifecycle

import (
	"context"
	"slices"
	"strings"
	"time"
)

// NewRequest is the payload of a request creation.
type NewRequest struct {
	Kind RequestKind
	// ProposedDate is the new end date. Termination defaults to now.
	ProposedDate time.Time
	Reason       string
}

// CreateRequest files an early-completion or termination request against
// employmentID. It fails with ErrDuplicateActive while a request of the same
// kind is still PENDING.
func (e *Engine) CreateRequest(ctx context.Context, actor Actor, employmentID string, in NewRequest) (*Request, error) {
	emp, err := e.store.GetEmployment(ctx, employmentID)
	if err != nil {
		return nil, err
	}
	if !actor.canSee(emp.ApplicantID, emp.CompanyID) {
		return nil, NotFound("employment", employmentID)
	}
	initiator, ok := initiatorFor(actor.Role)
	if !ok {
		return nil, forbiddenActor("request", actor, string(ActionCreateRequest))
	}
	if !slices.Contains(in.Kind.eligibleFrom(), emp.Status) {
		return nil, invalidTransition("employment", emp.Status, strings.ToLower(string(in.Kind))+" request")
	}

	now := e.clock.Now()
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, guardViolation("a reason is required")
	}
	proposed := in.ProposedDate
	switch in.Kind {
	case RequestEarlyCompletion:
		if proposed.IsZero() {
			return nil, guardViolation("early completion needs a proposed end date")
		}
		if proposed.Before(emp.StartDate) || !proposed.Before(emp.EndDate) {
			return nil, guardViolation("proposed end date must fall within %s and %s",
				emp.StartDate.Format(time.DateOnly), emp.EndDate.Format(time.DateOnly))
		}
	case RequestTermination:
		if proposed.IsZero() {
			proposed = now
		}
		if proposed.After(emp.EndDate) {
			return nil, guardViolation("termination date is after the scheduled end %s", emp.EndDate.Format(time.DateOnly))
		}
	}

	req := &Request{
		ID:           e.newID(),
		EmploymentID: emp.ID,
		Kind:         in.Kind,
		InitiatedBy:  initiator,
		InitiatorID:  actor.ID,
		Status:       RequestPending,
		ProposedDate: proposed,
		Reason:       reason,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := e.store.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	data := map[string]string{"requestId": req.ID, "employmentId": emp.ID, "kind": string(req.Kind)}
	e.emit(ctx, []Notification{counterpartNotice(req, emp, NotifyRequestCreated,
		"New request", reason, data)})
	return req, nil
}

// ActOnRequest cancels, approves or rejects request id. Approval mutates the
// Employment in the same store transaction.
func (e *Engine) ActOnRequest(ctx context.Context, actor Actor, id string, action RequestAction) (*Request, error) {
	current, err := e.store.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := e.store.GetEmployment(ctx, current.EmploymentID)
	if err != nil {
		return nil, err
	}
	if !actor.canSee(owner.ApplicantID, owner.CompanyID) {
		return nil, NotFound("request", id)
	}

	var (
		next          *Request
		notifications []Notification
	)
	err = e.store.InTx(ctx, func(tx Store) error {
		now := e.clock.Now()
		emp, err := tx.GetEmployment(ctx, current.EmploymentID)
		if err != nil {
			return err
		}

		next = current.Clone()
		out, err := transitionRequest(next, emp, actor, action, now)
		if err != nil {
			return err
		}
		if err := tx.UpdateRequest(ctx, next, out.from); err != nil {
			return err
		}
		notifications = out.notifications

		if out.employment != nil {
			nextEmp := emp.Clone()
			eo, err := transitionEmployment(nextEmp, actor, out.employment, employmentEnv{now: now})
			if err != nil {
				return err
			}
			if err := tx.UpdateEmployment(ctx, nextEmp, eo.from); err != nil {
				return err
			}
			notifications = append(notifications, eo.notifications...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Infow("request transition",
		"requestId", id, "kind", current.Kind, "action", action.Kind(), "actor", actor.String(),
		"to", next.Status)
	e.emit(ctx, notifications)
	return next, nil
}

// ListRequests lists the requests of employmentID if actor may see it.
func (e *Engine) ListRequests(ctx context.Context, actor Actor, employmentID string) ([]*Request, error) {
	if _, err := e.GetEmployment(ctx, actor, employmentID); err != nil {
		return nil, err
	}
	return e.store.ListRequests(ctx, employmentID)
}
