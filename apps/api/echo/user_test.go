package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseldt/lms/core/user"
	inmemkv "github.com/baseldt/lms/storage/kv/inmem"
)

func Test_sessionApi_login(t *testing.T) {
	c := newClient(setup(t))

	c.run(t, []httpTest{
		{name: "welcome", path: "/api", wantCode: http.StatusOK, wantData: marchallObj(t, SuccessResponse{Success: "Welcome to the BaseLdt API!"})},
		{name: "anonymous me", path: "/api/auth/me", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, httpErr{Error: "user not authenticated"})},
		{
			name: "missing fields", method: http.MethodPost, path: "/api/auth/login", body: []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": "this field is required", "password": "this field is required"}),
		},
		{
			name: "wrong password", method: http.MethodPost, path: "/api/auth/login",
			body:     marchallObj(t, LoginRequest{Email: "instructor@example.com", Password: "nope"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Invalid email or password"}),
		},
		{
			name: "email is case-sensitive", method: http.MethodPost, path: "/api/auth/login",
			body:     marchallObj(t, LoginRequest{Email: "INSTRUCTOR@example.com", Password: user.MockPassword}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Invalid email or password"}),
		},
		{name: "still anonymous", path: "/api/auth/me", wantCode: http.StatusUnauthorized},
		{
			name: "valid credentials", method: http.MethodPost, path: "/api/auth/login",
			body:     marchallObj(t, LoginRequest{Email: "instructor@example.com", Password: user.MockPassword}),
			wantCode: http.StatusOK, wantData: marchallObj(t, instructor),
		},
		{name: "me", path: "/api/auth/me", wantCode: http.StatusOK, wantData: marchallObj(t, instructor)},
	})

	assert.Equal(t, []string{"Login failed", "Login failed", "Login successful"}, c.notifications(t))
	assert.Empty(t, c.notifications(t), "notifications are drained")
}

func Test_sessionApi_register(t *testing.T) {
	c := newClient(setup(t))
	newUser := user.NewUser{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "s3cret",
		PasswordConfirm: "s3cret",
		Role:            "instructor",
	}
	ada := user.Identity{ID: "3", Name: "Ada Lovelace", Email: "ada@example.com", Role: user.RoleInstructor}
	dup := newUser
	dup.Email = "student@example.com"

	c.run(t, []httpTest{
		{
			name: "invalid data", method: http.MethodPost, path: "/api/auth/register",
			body:     []byte(`{"name":" ","email":"nope","password":"a","password_confirm":"b","role":"admin"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"name":             "this field is required",
				"email":            "email must be a valid email address",
				"password_confirm": "password_confirm does not match",
				"role":             "role must be one of: student, instructor",
			}),
		},
		{
			name: "existing email", method: http.MethodPost, path: "/api/auth/register", body: marchallObj(t, dup),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Email already exists"}),
		},
		{
			name: "fresh email", method: http.MethodPost, path: "/api/auth/register", body: marchallObj(t, newUser),
			wantCode: http.StatusCreated, wantData: marchallObj(t, ada),
		},
		{name: "logged in", path: "/dashboard", wantCode: http.StatusFound, wantLoc: "/instructor/dashboard"},
		{
			name: "taken now", method: http.MethodPost, path: "/api/auth/register", body: marchallObj(t, newUser),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "Email already exists"}),
		},
		{name: "still logged in", path: "/api/auth/me", wantCode: http.StatusOK, wantData: marchallObj(t, ada)},
		{name: "logout", method: http.MethodPost, path: "/api/auth/logout", wantCode: http.StatusOK},
		{
			name: "log back in", method: http.MethodPost, path: "/api/auth/login",
			body:     marchallObj(t, LoginRequest{Email: "ada@example.com", Password: "s3cret"}),
			wantCode: http.StatusOK, wantData: marchallObj(t, ada),
		},
	})

	assert.Equal(t, []string{
		"Registration failed",
		"Registration successful",
		"Registration failed",
		"Logged out",
		"Login successful",
	}, c.notifications(t))
}

func Test_sessionApi_logout(t *testing.T) {
	c := newClient(setup(t))
	c.login(t, "student@example.com")

	c.run(t, []httpTest{
		{
			name: "logout", method: http.MethodPost, path: "/api/auth/logout", wantCode: http.StatusOK,
			wantData: marchallObj(t, SuccessResponse{Success: "You have been logged out successfully"}),
		},
		{name: "anonymous", path: "/api/auth/me", wantCode: http.StatusUnauthorized},
		{name: "logout again", method: http.MethodPost, path: "/api/auth/logout", wantCode: http.StatusOK},
		{name: "guarded", path: "/student/dashboard", wantCode: http.StatusFound, wantLoc: "/login"},
	})
}

func TestBrowserContexts(t *testing.T) {
	srv := setup(t)
	jane, john, anon := newClient(srv), newClient(srv), newClient(srv)

	jane.login(t, "student@example.com")
	john.login(t, "instructor@example.com")

	jane.run(t, []httpTest{{name: "jane", path: "/api/auth/me", wantCode: http.StatusOK, wantData: marchallObj(t, student)}})
	john.run(t, []httpTest{{name: "john", path: "/api/auth/me", wantCode: http.StatusOK, wantData: marchallObj(t, instructor)}})
	anon.run(t, []httpTest{{name: "anonymous", path: "/api/auth/me", wantCode: http.StatusUnauthorized}})

	require.NotNil(t, jane.cookie)
	require.NotNil(t, john.cookie)
	assert.NotEqual(t, jane.cookie.Value, john.cookie.Value)
	assert.Equal(t, 3, srv.deps.Sessions.Len())
}

func TestBrowserContexts_invalidCookie(t *testing.T) {
	c := newClient(setup(t))
	c.cookie = &http.Cookie{Name: "lms-context", Value: "forged"}

	rec := c.do(http.MethodGet, "/api/auth/me")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, c.cookie)
	assert.NotEqual(t, "forged", c.cookie.Value, "a new context is issued")

	id, err := parseContextToken(testConfig(), c.cookie.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	other := testConfig()
	other.SecretKey = "other"
	_, err = parseContextToken(other, c.cookie.Value)
	assert.Error(t, err)
}

func TestBrowserContexts_restart(t *testing.T) {
	storage := inmemkv.NewStore()
	c := newClient(setup(t, storage))
	c.login(t, "instructor@example.com")

	// a new process over the same durable storage restores the session of the context
	c.srv = setup(t, storage)
	c.run(t, []httpTest{
		{name: "restored", path: "/api/auth/me", wantCode: http.StatusOK, wantData: marchallObj(t, instructor)},
	})
	assert.Empty(t, c.notifications(t), "restoring does not notify")
}

func TestBrowserContexts_idleAreReaped(t *testing.T) {
	srv := setup(t)
	c := newClient(srv)
	c.login(t, "instructor@example.com")

	// clients ignoring the cookie get a new context on every request
	for i := 0; i < 20; i++ {
		rec := newClient(srv).do(http.MethodGet, "/dashboard")
		require.Equal(t, http.StatusFound, rec.Code)
	}
	require.Equal(t, 21, srv.deps.Sessions.Len())

	assert.Equal(t, 21, srv.deps.Sessions.Reap(0))
	assert.Zero(t, srv.deps.Sessions.Len())

	c.run(t, []httpTest{
		{name: "restored after eviction", path: "/api/auth/me", wantCode: http.StatusOK, wantData: marchallObj(t, instructor)},
	})
	assert.Equal(t, 1, srv.deps.Sessions.Len())
}
