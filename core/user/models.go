package user

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
)

var errIncompleteIdentity = errors.New("identity is missing its id or email")

// Identity is the public profile of an authenticated user.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Validate checks that a decoded Identity is usable as a session.
func (i Identity) Validate() error {
	if i.ID == "" || i.Email == "" {
		return errIncompleteIdentity
	}
	if !i.Role.IsValid() {
		return errors.Wrapf(ErrInvalidRole, "%d", int(i.Role))
	}
	return nil
}

func (i Identity) IsStudent() bool    { return i.Role == RoleStudent }
func (i Identity) IsInstructor() bool { return i.Role == RoleInstructor }

// Credential pairs an Identity with its plaintext secret.
// Secrets are compared for equality only; there is no hashing in this mocked environment.
type Credential struct {
	Identity
	Secret string
}

// NewUser contains information needed to register a new user.
type NewUser struct {
	Name            string `json:"name" validate:"required,notblank"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,role"`
}

// Validate cleans & validates nu. Emails are kept as typed: lookups are case-sensitive.
func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = core.CleanString(nu.Name)
	return validate.Struct(nu)
}

// ParsedRole must only be called after a successful Validate.
func (nu *NewUser) ParsedRole() Role {
	role, _ := ParseRole(nu.Role)
	return role
}
