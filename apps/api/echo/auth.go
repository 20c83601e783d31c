package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/session"
)

const browserKey = "browser"

var errInvalidContextToken = errors.New("invalid browser context token")

// ContextClaims identify a browser context. The subject is the context id.
type ContextClaims struct {
	jwt.StandardClaims
}

// NewContextToken signs a token for the browser context id.
func NewContextToken(conf *core.Config, id string) (string, error) {
	now := time.Now()
	claims := &ContextClaims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   id,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(conf.Session.CookieExpires).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// parseContextToken returns the context id carried by a valid token.
func parseContextToken(conf *core.Config, ss string) (string, error) {
	claims := new(ContextClaims)
	token, err := jwt.ParseWithClaims(ss, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidContextToken
		}
		return []byte(conf.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidContextToken
	}
	if _, err = uuid.Parse(claims.Subject); err != nil {
		return "", errInvalidContextToken
	}
	return claims.Subject, nil
}

// browserContextMiddleware attaches the browser context of the request, issuing a new one
// when the cookie is missing or invalid. Handlers reach its session through the request context.
func (s *Server) browserContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		conf := s.deps.Conf

		var id string
		if cookie, err := ctx.Cookie(conf.Session.CookieName); err == nil {
			id, _ = parseContextToken(conf, cookie.Value)
		}
		if id == "" {
			id = uuid.New().String()
			ss, err := NewContextToken(conf, id)
			if err != nil {
				return errors.Wrap(err, "issuing browser context")
			}
			ctx.SetCookie(&http.Cookie{
				Name:     conf.Session.CookieName,
				Value:    ss,
				Path:     "/",
				Expires:  time.Now().Add(conf.Session.CookieExpires),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		req := ctx.Request()
		b := s.deps.Sessions.Browser(req.Context(), id)
		s.deps.Metrics.SetBrowserContexts(s.deps.Sessions.Len())

		ctx.Set(browserKey, b)
		ctx.SetRequest(req.WithContext(session.NewContext(req.Context(), b.Store)))
		return next(ctx)
	}
}

// contextBrowser returns the browser context attached by browserContextMiddleware.
func contextBrowser(ctx echo.Context) *session.Browser {
	b, ok := ctx.Get(browserKey).(*session.Browser)
	if !ok {
		panic("echoapi: browser context accessed outside its middleware")
	}
	return b
}

// contextSession returns the session store of the request.
func contextSession(ctx echo.Context) *session.Store {
	return session.FromContext(ctx.Request().Context())
}
