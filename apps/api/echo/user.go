package echoapi

import (
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/user"
	"github.com/baseldt/lms/services/metrics"
)

var (
	errInvalidCredentials = errors.New("Invalid email or password")
	errEmailExists        = errors.New("Email already exists")
)

type sessionApi struct {
	metrics    *metrics.Metrics
	validate   *validator.Validate
	translator ut.Translator
}

func registerSessionAPI(g *echo.Group, deps ServerDeps) {
	api := sessionApi{
		metrics:    deps.Metrics,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/register", api.register)
	ag.POST("/logout", api.logout)
	ag.GET("/me", api.me)

	g.GET("/notifications", api.notifications)
}

// Handlers

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	start := time.Now()
	pending := contextSession(ctx).Login(data.Email, data.Password)
	ok, err := pending.WaitContext(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "waiting for login")
	}
	api.metrics.ObserveAuth(metrics.OpLogin, ok, start)
	if !ok {
		return core.NewValidationError(errInvalidCredentials)
	}
	return ctx.JSON(http.StatusOK, pending.Identity())
}

func (api *sessionApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	start := time.Now()
	pending := contextSession(ctx).Register(data.Name, data.Email, data.Password, data.ParsedRole())
	ok, err := pending.WaitContext(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "waiting for registration")
	}
	api.metrics.ObserveAuth(metrics.OpRegister, ok, start)
	if !ok {
		return core.NewValidationError(errEmailExists)
	}
	return ctx.JSON(http.StatusCreated, pending.Identity())
}

func (api *sessionApi) logout(ctx echo.Context) error {
	start := time.Now()
	contextSession(ctx).Logout(ctx.Request().Context())
	api.metrics.ObserveAuth(metrics.OpLogout, true, start)
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "You have been logged out successfully"})
}

func (api *sessionApi) me(ctx echo.Context) error {
	ident, ok := contextSession(ctx).Current()
	if !ok {
		return errUnauthorized
	}
	return ctx.JSON(http.StatusOK, ident)
}

func (api *sessionApi) notifications(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, contextBrowser(ctx).Outbox.Drain())
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)
