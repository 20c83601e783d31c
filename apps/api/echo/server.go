package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/guard"
	"github.com/baseldt/lms/core/session"
	"github.com/baseldt/lms/services/metrics"
)

type ServerDeps struct {
	Conf       *core.Config
	Logger     core.Logger
	Sessions   *session.Manager
	Catalog    *course.Catalog
	Progress   *course.Progress
	Metrics    *metrics.Metrics
	Validate   *validator.Validate
	Translator ut.Translator
}

type Server struct {
	deps     ServerDeps
	app      *echo.Echo
	errors   chan error
	shutdown chan os.Signal
}

func NewServer(deps ServerDeps) *Server {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	bctx := s.browserContextMiddleware

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// the group claims every /api route: register its root afterwards
	registerSessionAPI(s.app.Group("/api", bctx), s.deps)
	s.app.GET("/api", welcome)

	s.registerViews(bctx)
}

// registerViews mounts every route of the guard table, behind the guard unless public.
func (s *Server) registerViews(bctx echo.MiddlewareFunc) {
	views := newViewHandlers(s.deps)
	for _, r := range guard.Routes {
		h, ok := views[r.Method+" "+r.Path]
		if !ok {
			panic("echoapi: no handler for view " + r.Method + " " + r.Path)
		}
		mws := []echo.MiddlewareFunc{bctx}
		if !r.Public {
			mws = append(mws, s.guardMiddleware(r))
		}
		s.app.Add(r.Method, r.Path, h, mws...)
	}
}

// Start listens until the server is shut down. Any other failure is sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signaled
	}
}

func home(ctx echo.Context) error {
	return ctx.Redirect(http.StatusFound, "/dashboard")
}

func welcome(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Welcome to the BaseLdt API!"})
}
