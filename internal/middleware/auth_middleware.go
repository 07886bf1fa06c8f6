package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"ChecklistAPI/internal/logging"
	"ChecklistAPI/internal/model"
)

// AuthHeader is the request header carrying the raw session token.
const AuthHeader = "x-auth"

const (
	userKey  = "auth_user"
	tokenKey = "auth_token"
)

// TokenVerifier resolves a raw token string to a user, rejecting
// anything unsigned, badly signed, or revoked.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenString string) (*model.User, error)
}

// Authenticate returns an echo middleware that gates a route on a valid
// session token. On success the resolved user and the raw token are
// attached to the context; on any failure the request is answered 401
// with an empty body and the handler never runs.
func Authenticate(verifier TokenVerifier, log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.Request().Header.Get(AuthHeader)
			if tokenString == "" {
				return c.NoContent(http.StatusUnauthorized)
			}
			user, err := verifier.Verify(c.Request().Context(), tokenString)
			if err != nil {
				log.Warn(c.Request().Context(), "token rejected", "path", c.Path())
				return c.NoContent(http.StatusUnauthorized)
			}
			c.Set(userKey, user)
			c.Set(tokenKey, tokenString)
			return next(c)
		}
	}
}

// AuthUser returns the user attached by Authenticate, or nil.
func AuthUser(c echo.Context) *model.User {
	if u, ok := c.Get(userKey).(*model.User); ok {
		return u
	}
	return nil
}

// AuthToken returns the raw token the caller presented, or "".
func AuthToken(c echo.Context) string {
	if t, ok := c.Get(tokenKey).(string); ok {
		return t
	}
	return ""
}
