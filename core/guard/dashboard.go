package guard

import "github.com/baseldt/lms/core/user"

// DashboardState is what the generic dashboard shows: a loading placeholder, or a redirect
// to the role dashboard.
type DashboardState struct {
	Loading  bool
	Location string
}

// Dashboard redirects an identity to its role dashboard. Without one it stays loading.
func Dashboard(ident *user.Identity) DashboardState {
	if ident == nil {
		return DashboardState{Loading: true}
	}
	switch ident.Role {
	case user.RoleStudent, user.RoleInstructor:
		return DashboardState{Location: HomePath(ident.Role)}
	}
	return DashboardState{Loading: true}
}
