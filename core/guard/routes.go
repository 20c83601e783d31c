package guard

import (
	"net/http"
	"strings"

	"github.com/baseldt/lms/core/user"
)

// Route is a client-visible path and what it requires.
type Route struct {
	Method      string
	Path        string // segments starting with ':' match anything
	Public      bool
	Requirement Requirement
}

// Routes is the view route table, shared by the HTTP service and the terminal client.
var Routes = []Route{
	{Method: http.MethodGet, Path: "/login", Public: true},
	{Method: http.MethodGet, Path: "/register", Public: true},
	{Method: http.MethodGet, Path: "/dashboard", Requirement: Any},
	{Method: http.MethodGet, Path: "/student/dashboard", Requirement: Roles(user.RoleStudent)},
	{Method: http.MethodGet, Path: "/instructor/dashboard", Requirement: Roles(user.RoleInstructor)},
	{Method: http.MethodGet, Path: "/courses/browse", Requirement: Any},
	{Method: http.MethodGet, Path: "/courses/create", Requirement: Roles(user.RoleInstructor)},
	{Method: http.MethodPost, Path: "/courses/create", Requirement: Roles(user.RoleInstructor)},
	{Method: http.MethodGet, Path: "/courses/:id", Requirement: Any},
	{Method: http.MethodPost, Path: "/courses/:id/enroll", Requirement: Roles(user.RoleStudent)},
	{Method: http.MethodPost, Path: "/courses/:id/lessons/:lessonId/complete", Requirement: Roles(user.RoleStudent)},
}

// Lookup finds the route matching method and path. Static routes win over parameterized ones.
func Lookup(method, path string) (Route, map[string]string, bool) {
	path = strings.TrimSuffix(strings.SplitN(path, "?", 2)[0], "/")
	if path == "" {
		path = "/"
	}

	var (
		found  Route
		params map[string]string
		ok     bool
	)
	for _, r := range Routes {
		if r.Method != method {
			continue
		}
		p, match := matchPath(r.Path, path)
		if !match {
			continue
		}
		if len(p) == 0 {
			return r, nil, true
		}
		if !ok {
			found, params, ok = r, p, true
		}
	}
	return found, params, ok
}

// Check evaluates the route for ident. Public routes always allow.
func (r Route) Check(ident *user.Identity) Decision {
	if r.Public {
		return Decision{Outcome: Allow}
	}
	return Evaluate(ident, r.Requirement)
}

func matchPath(pattern, path string) (map[string]string, bool) {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	ss := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(ss) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range ps {
		if strings.HasPrefix(seg, ":") {
			if ss[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:]] = ss[i]
			continue
		}
		if seg != ss[i] {
			return nil, false
		}
	}
	return params, true
}
