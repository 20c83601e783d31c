package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baseldt/lms/core/guard"
)

// guardMiddleware redirects the request when the route rejects the session identity.
func (s *Server) guardMiddleware(r guard.Route) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			d := r.Check(contextSession(ctx).Identity())
			s.deps.Metrics.ObserveDecision(d)
			if !d.Allowed() {
				return ctx.Redirect(http.StatusFound, d.Location)
			}
			return next(ctx)
		}
	}
}
