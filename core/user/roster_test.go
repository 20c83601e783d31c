package user

import (
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseldt/lms/core"
)

func TestRoster_Authenticate(t *testing.T) {
	r := NewSeededRoster()

	tests := []struct {
		name    string
		email   string
		secret  string
		wantID  string
		wantErr error
	}{
		{name: "instructor", email: "instructor@example.com", secret: MockPassword, wantID: MockInstructorID},
		{name: "student", email: "student@example.com", secret: MockPassword, wantID: MockStudentID},
		{name: "wrong secret", email: "student@example.com", secret: "nope", wantErr: ErrInvalidCredentials},
		{name: "upper-cased email", email: "STUDENT@example.com", secret: MockPassword, wantErr: ErrInvalidCredentials},
		{name: "unknown", email: "x@example.com", secret: MockPassword, wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident, err := r.Authenticate(tt.email, tt.secret)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Zero(t, ident)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, ident.ID)
		})
	}
}

func TestRoster_Register(t *testing.T) {
	r := NewSeededRoster()

	ident, err := r.Register("Ada", "ada@example.com", "pwd", RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: "3", Name: "Ada", Email: "ada@example.com", Role: RoleInstructor}, ident)
	assert.True(t, r.EmailExists("ada@example.com"))

	got, err := r.Authenticate("ada@example.com", "pwd")
	require.NoError(t, err)
	assert.Equal(t, ident, got)

	_, err = r.Register("Ada 2", "ada@example.com", "other", RoleStudent)
	assert.Equal(t, ErrEmailExists, err)

	_, err = r.Register("Nobody", "nobody@example.com", "x", Role(0))
	assert.True(t, errors.Is(err, ErrInvalidRole))
	assert.Equal(t, 3, r.Len())

	byID, err := r.GetByID("3")
	require.NoError(t, err)
	assert.Equal(t, ident, byID)
	_, err = r.GetByID("42")
	assert.Equal(t, ErrNotFound, err)
}

func TestRoster_Register_concurrent(t *testing.T) {
	r := NewRoster()
	emails := []string{"a@x.y", "b@x.y", "c@x.y", "d@x.y", "e@x.y", "a@x.y", "b@x.y"}

	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			_, _ = r.Register("N", email, "s", RoleStudent)
		}(email)
	}
	wg.Wait()

	idents := r.Identities()
	require.Len(t, idents, 5)
	ids := make(map[string]bool)
	for _, ident := range idents {
		assert.False(t, ids[ident.ID], "duplicate id %s", ident.ID)
		ids[ident.ID] = true
	}
}

func TestRoster_Observe(t *testing.T) {
	tests := []struct {
		name     string
		observed []string
		wantID   string
	}{
		{name: "nothing observed", wantID: "3"},
		{name: "seeded id", observed: []string{"2"}, wantID: "3"},
		{name: "restored registration", observed: []string{"3"}, wantID: "4"},
		{name: "highest wins", observed: []string{"7", "5"}, wantID: "8"},
		{name: "non-numeric ignored", observed: []string{"abc", ""}, wantID: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewSeededRoster()
			for _, id := range tt.observed {
				r.Observe(id)
			}
			ident, err := r.Register("New Person", "new@example.com", "s3cret", RoleStudent)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, ident.ID)

			next, err := r.Register("Other", "other@example.com", "s3cret", RoleStudent)
			require.NoError(t, err)
			assert.NotEqual(t, ident.ID, next.ID)
		})
	}
}

func TestMockCredentials_isCopy(t *testing.T) {
	creds := MockCredentials()
	creds[0].Secret = "changed"
	assert.Equal(t, MockPassword, MockCredentials()[0].Secret)

	r := NewRoster(creds...)
	creds[1].Email = "changed@example.com"
	assert.True(t, r.EmailExists("student@example.com"))
}

func TestNewUser_Validate(t *testing.T) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)

	valid := func() NewUser {
		return NewUser{
			Name:            "  Ada Lovelace ",
			Email:           "ada@example.com",
			Password:        "pwd",
			PasswordConfirm: "pwd",
			Role:            "student",
		}
	}

	tests := []struct {
		name       string
		mutate     func(nu *NewUser)
		wantFields map[string]string
	}{
		{name: "valid", mutate: func(*NewUser) {}},
		{
			name:       "blank name",
			mutate:     func(nu *NewUser) { nu.Name = "   " },
			wantFields: map[string]string{"name": "this field is required"},
		},
		{
			name:       "bad email",
			mutate:     func(nu *NewUser) { nu.Email = "not-an-email" },
			wantFields: map[string]string{"email": "email must be a valid email address"},
		},
		{
			name:       "password mismatch",
			mutate:     func(nu *NewUser) { nu.PasswordConfirm = "other" },
			wantFields: map[string]string{"password_confirm": "password_confirm does not match"},
		},
		{
			name:       "bad role",
			mutate:     func(nu *NewUser) { nu.Role = "admin" },
			wantFields: map[string]string{"role": roleText},
		},
		{
			name: "everything missing",
			mutate: func(nu *NewUser) { *nu = NewUser{} },
			wantFields: map[string]string{
				"name":             "this field is required",
				"email":            "this field is required",
				"password":         "this field is required",
				"password_confirm": "this field is required",
				"role":             "this field is required",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nu := valid()
			tt.mutate(&nu)

			err := nu.Validate(validate)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "Ada Lovelace", nu.Name)
				assert.Equal(t, RoleStudent, nu.ParsedRole())
				return
			}
			var vErrs validator.ValidationErrors
			require.True(t, errors.As(err, &vErrs), "got %v", err)
			assert.Equal(t, tt.wantFields, core.TranslateFields(vErrs, translator))
		})
	}
}
