package lifecycle

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Apply files a NEW application of the acting applicant on listingID.
// validityUntil starts at now + Policy.ApplicationValidity.
func (e *Engine) Apply(ctx context.Context, actor Actor, listingID string) (*Application, error) {
	if actor.Role != RoleApplicant {
		return nil, forbiddenActor("application", actor, "apply")
	}
	listing, err := e.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != ListingActive {
		return nil, guardViolation("listing %s is %s and not accepting applications", listing.ID, listing.Status)
	}

	now := e.clock.Now()
	entry := HistoryEntry{At: now, ActorID: actor.ID, ActorRole: actor.Role, Action: "apply", To: ApplicationNew}
	app := &Application{
		ID:            e.newID(),
		ApplicantID:   actor.ID,
		CompanyID:     listing.CompanyID,
		ListingID:     listing.ID,
		Status:        ApplicationNew,
		ValidityUntil: now.Add(e.policy.ApplicationValidity),
		History:       []HistoryEntry{entry},
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.store.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	e.emit(ctx, []Notification{toCompany(app.CompanyID, NotifyApplicationReceived, "New application",
		"A new application arrived for "+listing.Title+".",
		map[string]string{"applicationId": app.ID, "listingId": app.ListingID})})
	return app, nil
}

// ActOnApplication applies action to application id on behalf of actor.
//
// Accepting an offer creates the Employment and withdrawing an accepted
// application terminates it, both in the same store transaction as the
// application update. A concurrent duplicate loses the conditional update and
// gets an error marked ErrStale and ErrInvalidTransition.
func (e *Engine) ActOnApplication(ctx context.Context, actor Actor, id string, action ApplicationAction) (*Application, error) {
	current, err := e.store.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canSee(current.ApplicantID, current.CompanyID) {
		return nil, NotFound("application", id)
	}

	var (
		next          *Application
		notifications []Notification
	)
	err = e.store.InTx(ctx, func(tx Store) error {
		env := applicationEnv{now: e.clock.Now(), policy: e.policy}
		if current.Status == ApplicationAccepted {
			emp, err := tx.GetEmploymentByApplication(ctx, id)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
			env.employment = emp
		}

		next = current.Clone()
		out, err := transitionApplication(next, actor, action, env)
		if err != nil {
			return err
		}
		if err := tx.UpdateApplication(ctx, next, out.from, out.entry); err != nil {
			return err
		}
		notifications = out.notifications

		if out.spawnEmployment {
			ns, err := e.spawnEmployment(ctx, tx, next, env)
			if err != nil {
				return err
			}
			notifications = append(notifications, ns...)
		}
		if out.releaseEmployment {
			ns, err := e.releaseEmployment(ctx, tx, env.employment, env)
			if err != nil {
				return err
			}
			notifications = append(notifications, ns...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Infow("application transition",
		"applicationId", id, "action", action.Kind(), "actor", actor.String(),
		"from", current.Status, "to", next.Status)
	e.emit(ctx, notifications)
	return next, nil
}

// spawnEmployment creates the Employment of an accepted application. The
// unique application id on employments makes this effect happen once.
func (e *Engine) spawnEmployment(ctx context.Context, tx Store, app *Application, env applicationEnv) ([]Notification, error) {
	listing, err := tx.GetListing(ctx, app.ListingID)
	if err != nil {
		return nil, err
	}
	emp := newEmployment(e.newID(), app, listing, env.now)
	if err := tx.CreateEmployment(ctx, emp); err != nil {
		return nil, err
	}
	if emp.Status == EmploymentOngoing {
		data := map[string]string{"employmentId": emp.ID, "applicationId": app.ID}
		return []Notification{startedNotice(emp, data)}, nil
	}
	return nil, nil
}

// releaseEmployment terminates the live Employment of a withdrawn application.
func (e *Engine) releaseEmployment(ctx context.Context, tx Store, emp *Employment, env applicationEnv) ([]Notification, error) {
	next := emp.Clone()
	out, err := transitionEmployment(next, System, Terminate{Reason: "The applicant withdrew from the internship."},
		employmentEnv{now: env.now})
	if err != nil {
		return nil, err
	}
	if err := tx.UpdateEmployment(ctx, next, out.from); err != nil {
		return nil, err
	}
	return out.notifications, nil
}

// GetApplication returns application id if actor may see it.
func (e *Engine) GetApplication(ctx context.Context, actor Actor, id string) (*Application, error) {
	app, err := e.store.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.canSee(app.ApplicantID, app.CompanyID) {
		return nil, NotFound("application", id)
	}
	return app, nil
}

// ListApplications lists applications matching f, narrowed to what actor may
// see.
func (e *Engine) ListApplications(ctx context.Context, actor Actor, f ApplicationFilter) ([]*Application, error) {
	switch actor.Role {
	case RoleApplicant:
		f.ApplicantID = actor.ID
	case RoleCompany:
		f.CompanyID = actor.ID
	case RoleAdmin, RoleSystem:
	default:
		return nil, nil
	}
	return e.store.ListApplications(ctx, f)
}
