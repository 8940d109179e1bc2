package lifecycle

import (
	"github.com/cockroachdb/errors"
)

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// Every error returned by the engine is marked with exactly one of these so
// callers classify with errors.Is, whatever message wraps it.
var (
	// ErrInvalidTransition: the action is not permitted from the current status.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrGuardViolation: the transition matched but a precondition failed.
	ErrGuardViolation = errors.New("guard violation")
	// ErrDuplicateActive: an active application or pending request already exists.
	ErrDuplicateActive = errors.New("duplicate active entity")
	// ErrNotFound: the entity is missing or outside the actor's visibility.
	ErrNotFound = errors.New("not found")
	// ErrTransientStore: read/write infrastructure failure.
	ErrTransientStore = errors.New("transient store error")
	// ErrInvalidPayload: a transition request could not be decoded.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrStale is returned by a conditional update that matched zero rows.
	// It is also marked ErrInvalidTransition.
	ErrStale = errors.New("transition no longer applicable")
)

func invalidTransition(entity string, status any, action string) error {
	return errors.Mark(
		errors.Newf("%s in status %s does not accept action %q", entity, status, action),
		ErrInvalidTransition,
	)
}

func unknownAction(entity, action string) error {
	return errors.Mark(errors.Newf("%s has no action %q", entity, action), ErrInvalidTransition)
}

func forbiddenActor(entity string, actor Actor, action string) error {
	return errors.Mark(
		errors.Newf("%s action %q is not available to role %s", entity, action, actor.Role),
		ErrInvalidTransition,
	)
}

func guardViolation(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrGuardViolation)
}

func invalidPayload(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidPayload)
}

// NotFound builds an ErrNotFound-marked error for entity id.
func NotFound(entity, id string) error {
	return errors.Mark(errors.Newf("%s %s not found", entity, id), ErrNotFound)
}

// DuplicateActive builds an ErrDuplicateActive-marked error.
func DuplicateActive(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrDuplicateActive)
}

// Stale reports a lost conditional update on entity id.
func Stale(entity, id string) error {
	return errors.Mark(errors.Wrapf(ErrStale, "%s %s", entity, id), ErrInvalidTransition)
}

// TransientStore wraps an infrastructure failure from a store adapter.
func TransientStore(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, op), ErrTransientStore)
}

// ErrorKind names the taxonomy bucket of an error.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindInvalidTransition ErrorKind = "InvalidTransition"
	KindGuardViolation    ErrorKind = "GuardViolation"
	KindDuplicateActive   ErrorKind = "DuplicateActiveEntity"
	KindNotFound          ErrorKind = "NotFound"
	KindTransientStore    ErrorKind = "TransientStoreError"
	KindInvalidPayload    ErrorKind = "InvalidPayload"
	KindUnknown           ErrorKind = "Unknown"
)

// Kind classifies err. Unmarked errors are KindUnknown.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrGuardViolation):
		return KindGuardViolation
	case errors.Is(err, ErrDuplicateActive):
		return KindDuplicateActive
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrTransientStore):
		return KindTransientStore
	case errors.Is(err, ErrInvalidPayload):
		return KindInvalidPayload
	}
	return KindUnknown
}
