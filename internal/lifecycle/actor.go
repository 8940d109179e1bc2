package lifecycle

import (
	"fmt"
	"slices"
	"time"
)

// Role identifies who is acting on an entity.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
	RoleSystem    Role = "system"
)

// ParseRole converts a raw string to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleApplicant, RoleCompany, RoleAdmin, RoleSystem:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Actor is the caller of an engine operation.
type Actor struct {
	ID   string
	Role Role
}

// System is the actor used by sweep passes.
var System = Actor{ID: "system", Role: RoleSystem}

func (a Actor) String() string { return string(a.Role) + ":" + a.ID }

// canSee reports whether the actor may observe an entity owned by the given
// applicant and company.
func (a Actor) canSee(applicantID, companyID string) bool {
	switch a.Role {
	case RoleAdmin, RoleSystem:
		return true
	case RoleApplicant:
		return a.ID == applicantID
	case RoleCompany:
		return a.ID == companyID
	}
	return false
}

func (a Actor) is(roles ...Role) bool { return slices.Contains(roles, a.Role) }

// Clock supplies the current time. Engine and sweeps never call time.Now
// directly.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })
