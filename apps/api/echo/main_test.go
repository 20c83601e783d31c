package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/session"
	"github.com/baseldt/lms/core/user"
	"github.com/baseldt/lms/storage/kv"
	inmemkv "github.com/baseldt/lms/storage/kv/inmem"
	"github.com/baseldt/lms/tests"
)

var (
	instructor = user.Identity{ID: "1", Name: "John Instructor", Email: "instructor@example.com", Role: user.RoleInstructor}
	student    = user.Identity{ID: "2", Name: "Jane Student", Email: "student@example.com", Role: user.RoleStudent}
)

func testConfig() *core.Config {
	conf := &core.Config{AppName: "BaseLdt", Env: "TEST", TestMode: true, SecretKey: "secret"}
	conf.Server.DisableReqLogs = true
	conf.Session.CookieName = "lms-context"
	conf.Session.CookieExpires = time.Hour
	return conf
}

func setup(t *testing.T, storage ...kv.Store) *Server {
	t.Helper()
	var store kv.Store = inmemkv.NewStore()
	if len(storage) > 0 {
		store = storage[0]
	}

	validate, translator := testutil.Validator()
	catalog := course.NewSeededCatalog()
	return NewServer(ServerDeps{
		Conf:       testConfig(),
		Logger:     core.NopLogger,
		Sessions:   session.NewManager(user.NewSeededRoster(), store, session.Options{}),
		Catalog:    catalog,
		Progress:   course.NewSeededProgress(catalog),
		Validate:   validate,
		Translator: translator,
	})
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	wantLoc  string
}

// client plays a browser: it keeps the context cookie between requests.
type client struct {
	srv    *Server
	cookie *http.Cookie
}

func newClient(srv *Server) *client {
	return &client{srv: srv}
}

func (c *client) do(method, path string, data ...[]byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.srv.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "lms-context" {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) login(t *testing.T, email string) {
	t.Helper()
	rec := c.do(http.MethodPost, "/api/auth/login", marchallObj(t, LoginRequest{Email: email, Password: user.MockPassword}))
	if rec.Code != http.StatusOK {
		t.Fatalf("login(%s) failed: %v %s", email, rec.Code, rec.Body.String())
	}
}

// notifications drains the outbox and returns the titles.
func (c *client) notifications(t *testing.T) []string {
	t.Helper()
	rec := c.do(http.MethodGet, "/api/notifications")
	var notes []core.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &notes); err != nil {
		t.Fatalf("notifications() failed: %v", err)
	}
	titles := make([]string, 0, len(notes))
	for _, n := range notes {
		titles = append(titles, n.Title)
	}
	return titles
}

func (c *client) run(t *testing.T, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			rec := c.do(method, tt.path, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantLoc != "" {
		if loc := rec.Header().Get("Location"); loc != tt.wantLoc {
			t.Errorf("failed! location = %q; wantLoc %q", loc, tt.wantLoc)
		}
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
