package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/guard"
	"github.com/baseldt/lms/core/user"
)

var errNoIdentity = errors.New("guarded view reached without an identity")

type viewApi struct {
	catalog  *course.Catalog
	progress *course.Progress
	validate *validator.Validate
}

// newViewHandlers maps "METHOD path" of every guard.Routes entry to its handler.
func newViewHandlers(deps ServerDeps) map[string]echo.HandlerFunc {
	api := viewApi{
		catalog:  deps.Catalog,
		progress: deps.Progress,
		validate: deps.Validate,
	}
	return map[string]echo.HandlerFunc{
		"GET /login":                                   api.loginView,
		"GET /register":                                api.registerView,
		"GET /dashboard":                               api.dashboard,
		"GET /student/dashboard":                       api.studentDashboard,
		"GET /instructor/dashboard":                    api.instructorDashboard,
		"GET /courses/browse":                          api.browse,
		"GET /courses/create":                          api.createView,
		"POST /courses/create":                         api.create,
		"GET /courses/:id":                             api.detail,
		"POST /courses/:id/enroll":                     api.enroll,
		"POST /courses/:id/lessons/:lessonId/complete": api.complete,
	}
}

// Handlers

func (api *viewApi) loginView(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ViewResponse{
		View:          "login",
		Authenticated: contextSession(ctx).IsAuthenticated(),
		Fields:        []string{"email", "password"},
	})
}

func (api *viewApi) registerView(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ViewResponse{
		View:          "register",
		Authenticated: contextSession(ctx).IsAuthenticated(),
		Fields:        []string{"name", "email", "password", "password_confirm", "role"},
		Roles:         user.RoleInfos(),
	})
}

func (api *viewApi) dashboard(ctx echo.Context) error {
	state := guard.Dashboard(contextSession(ctx).Identity())
	if state.Location != "" {
		return ctx.Redirect(http.StatusFound, state.Location)
	}
	return ctx.JSON(http.StatusOK, DashboardResponse{Loading: state.Loading})
}

func (api *viewApi) studentDashboard(ctx echo.Context) error {
	ident, err := viewIdentity(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.progress.StudentDashboard(ident))
}

func (api *viewApi) instructorDashboard(ctx echo.Context) error {
	ident, err := viewIdentity(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.catalog.InstructorDashboard(ident))
}

func (api *viewApi) browse(ctx echo.Context) error {
	filter := course.Filter{
		Search:   ctx.QueryParam("search"),
		Category: ctx.QueryParam("category"),
	}
	return ctx.JSON(http.StatusOK, BrowseResponse{
		Categories: api.catalog.Categories(),
		Courses:    api.catalog.Browse(filter),
	})
}

func (api *viewApi) createView(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ViewResponse{
		View:          "create-course",
		Authenticated: true,
		Fields:        []string{"title", "description", "category"},
		Categories:    course.FormCategories,
	})
}

func (api *viewApi) create(ctx echo.Context) error {
	ident, err := viewIdentity(ctx)
	if err != nil {
		return err
	}

	var data course.NewCourse
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.catalog.Create(ident, data, contextBrowser(ctx).Notifier)
	if err != nil {
		if errors.Cause(err) == course.ErrNotInstructor {
			return errHttpForbidden
		}
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *viewApi) detail(ctx echo.Context) error {
	ident, err := viewIdentity(ctx)
	if err != nil {
		return err
	}

	d, err := api.progress.Detail(ident, ctx.Param("id"))
	if err != nil {
		return courseError(err, "retrieving course")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *viewApi) enroll(ctx echo.Context) error {
	ident, err := viewIdentity(ctx)
	if err != nil {
		return err
	}

	if _, err = api.progress.Enroll(ident, ctx.Param("id"), contextBrowser(ctx).Notifier); err != nil {
		return courseError(err, "enrolling")
	}
	d, err := api.progress.Detail(ident, ctx.Param("id"))
	if err != nil {
		return courseError(err, "retrieving course")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *viewApi) complete(ctx echo.Context) error {
	ident, err := viewIdentity(ctx)
	if err != nil {
		return err
	}

	pct, err := api.progress.MarkComplete(ident, ctx.Param("id"), ctx.Param("lessonId"), contextBrowser(ctx).Notifier)
	if err != nil {
		return courseError(err, "marking lesson as completed")
	}
	return ctx.JSON(http.StatusOK, ProgressResponse{Progress: pct})
}

// viewIdentity is the identity let through by the guard.
func viewIdentity(ctx echo.Context) (user.Identity, error) {
	ident, ok := contextSession(ctx).Current()
	if !ok {
		return user.Identity{}, errNoIdentity
	}
	return ident, nil
}

func courseError(err error, msg string) error {
	switch errors.Cause(err) {
	case course.ErrNotFound, course.ErrLessonNotFound:
		return errHttpNotFound
	case course.ErrNotEnrolled:
		return core.NewValidationError(err)
	}
	return errors.Wrap(err, msg)
}

type (
	ViewResponse struct {
		View          string          `json:"view"`
		Authenticated bool            `json:"authenticated"`
		Fields        []string        `json:"fields"`
		Roles         []user.RoleInfo `json:"roles,omitempty"`
		Categories    []string        `json:"categories,omitempty"`
	}

	DashboardResponse struct {
		Loading bool `json:"loading"`
	}

	BrowseResponse struct {
		Categories []string        `json:"categories"`
		Courses    []course.Course `json:"courses"`
	}

	ProgressResponse struct {
		Progress int `json:"progress"`
	}
)
