package testutil

import (
	"context"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/session"
	"github.com/baseldt/lms/core/user"
)

// Validator returns a validator with every custom rule and its english message registered.
func Validator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)
	return validate, translator
}

// Login logs store in as the mock user with that email.
func Login(t *testing.T, store *session.Store, email string) user.Identity {
	t.Helper()
	pending := store.Login(email, user.MockPassword)
	ok, err := pending.WaitContext(context.Background())
	if err != nil || !ok {
		t.Fatalf("Login(%s) failed: ok %v, err %v", email, ok, err)
	}
	return *pending.Identity()
}
