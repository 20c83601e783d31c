// Package guard decides whether an identity may view a route.
package guard

import (
	"strings"

	"github.com/baseldt/lms/core/user"
)

const LoginPath = "/login"

// Outcome of a guard evaluation.
type Outcome int

// Outcomes
const (
	Allow Outcome = iota
	RedirectLogin
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	}
	return "unknown"
}

// Decision is the result of Evaluate. Location is empty when access is allowed.
type Decision struct {
	Outcome  Outcome
	Location string
}

func (d Decision) Allowed() bool { return d.Outcome == Allow }

// Requirement lists the roles accepted by a route. The zero value accepts any authenticated identity.
type Requirement struct {
	roles []user.Role
}

// Any accepts every authenticated identity.
var Any = Requirement{}

func Roles(roles ...user.Role) Requirement {
	rs := make([]user.Role, len(roles))
	copy(rs, roles)
	return Requirement{roles: rs}
}

func (r Requirement) IsAny() bool { return len(r.roles) == 0 }

func (r Requirement) Accepts(role user.Role) bool {
	if r.IsAny() {
		return true
	}
	for _, rr := range r.roles {
		if rr == role {
			return true
		}
	}
	return false
}

func (r Requirement) String() string {
	if r.IsAny() {
		return "any"
	}
	names := make([]string, 0, len(r.roles))
	for _, role := range r.roles {
		names = append(names, role.String())
	}
	return strings.Join(names, "|")
}

// Evaluate is pure: the same identity and requirement always yield the same decision.
func Evaluate(ident *user.Identity, req Requirement) Decision {
	if ident == nil {
		return Decision{Outcome: RedirectLogin, Location: LoginPath}
	}
	if !req.Accepts(ident.Role) {
		return Decision{Outcome: RedirectHome, Location: HomePath(ident.Role)}
	}
	return Decision{Outcome: Allow}
}

// HomePath is the dashboard of role.
func HomePath(role user.Role) string {
	switch role {
	case user.RoleStudent:
		return "/student/dashboard"
	case user.RoleInstructor:
		return "/instructor/dashboard"
	}
	return LoginPath
}
