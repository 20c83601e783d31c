package user

import "github.com/pkg/errors"

// Role distinguishes learner-facing from instructor-facing capabilities.
type Role int

// Roles
const (
	RoleStudent Role = iota + 1 // learner
	RoleInstructor
)

var (
	AllRoles = []Role{RoleStudent, RoleInstructor}

	ErrInvalidRole = errors.New("invalid role")
)

// ParseRole maps the wire text of a role ("student" | "instructor") to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "student":
		return RoleStudent, nil
	case "instructor":
		return RoleInstructor, nil
	}
	return 0, errors.Wrapf(ErrInvalidRole, "%q", s)
}

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleInstructor:
		return "instructor"
	}
	return "unknown"
}

// Label is the human readable name of the role.
func (r Role) Label() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleInstructor:
		return "Instructor"
	}
	return "Unknown"
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor:
		return true
	}
	return false
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, errors.Wrapf(ErrInvalidRole, "%d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// RoleInfo describes a role for clients (eg. the register form).
type RoleInfo struct {
	Name  string `json:"name"`
	Value Role   `json:"value"`
}

func RoleInfos() []RoleInfo {
	infos := make([]RoleInfo, 0, len(AllRoles))
	for _, r := range AllRoles {
		infos = append(infos, RoleInfo{Name: r.Label(), Value: r})
	}
	return infos
}
