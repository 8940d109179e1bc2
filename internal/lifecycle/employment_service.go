package lifecycle

import (
	"context"
)

// ActOnEmployment applies action to employment id on behalf of actor. The
// sweep calls it with System and the sweep-only actions; users call it with
// the manual variants. Both share transitionEmployment.
func (e *Engine) ActOnEmployment(ctx context.Context, actor Actor, id string, action EmploymentAction) (*Employment, error) {
	current, err := e.store.GetEmployment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canSee(current.ApplicantID, current.CompanyID) {
		return nil, NotFound("employment", id)
	}

	var (
		next *Employment
		out  employmentOutcome
	)
	err = e.store.InTx(ctx, func(tx Store) error {
		env := employmentEnv{now: e.clock.Now()}
		if needsTimesheetCheck(action.Kind()) {
			unresolved, err := tx.HasUnresolvedTimesheets(ctx, id, current.EndDate)
			if err != nil {
				return err
			}
			env.unresolvedTimesheets = unresolved
		}

		next = current.Clone()
		var err error
		out, err = transitionEmployment(next, actor, action, env)
		if err != nil {
			return err
		}
		return tx.UpdateEmployment(ctx, next, out.from)
	})
	if err != nil {
		return nil, err
	}

	if next.Status != out.from {
		e.log.Infow("employment transition",
			"employmentId", id, "action", action.Kind(), "actor", actor.String(),
			"from", out.from, "to", next.Status)
	}
	e.emit(ctx, out.notifications)
	return next, nil
}

// GetEmployment returns employment id if actor may see it.
func (e *Engine) GetEmployment(ctx context.Context, actor Actor, id string) (*Employment, error) {
	emp, err := e.store.GetEmployment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canSee(emp.ApplicantID, emp.CompanyID) {
		return nil, NotFound("employment", id)
	}
	return emp, nil
}

// GetEmploymentByApplication returns the employment spawned by applicationID.
func (e *Engine) GetEmploymentByApplication(ctx context.Context, actor Actor, applicationID string) (*Employment, error) {
	emp, err := e.store.GetEmploymentByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !actor.canSee(emp.ApplicantID, emp.CompanyID) {
		return nil, NotFound("employment", emp.ID)
	}
	return emp, nil
}

// ListEmployments lists employments matching f, narrowed to what actor may
// see.
func (e *Engine) ListEmployments(ctx context.Context, actor Actor, f EmploymentFilter) ([]*Employment, error) {
	switch actor.Role {
	case RoleApplicant:
		f.ApplicantID = actor.ID
	case RoleCompany:
		f.CompanyID = actor.ID
	case RoleAdmin, RoleSystem:
	default:
		return nil, nil
	}
	return e.store.ListEmployments(ctx, f)
}
