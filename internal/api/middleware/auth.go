package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// UserContextKey is the echo context key holding the authenticated user.
const UserContextKey = "auth_user"

// Auth is the enforcement layer: it validates the bearer token against the
// session store and re-reads the authoritative user record on every request.
// Role and identity are never taken from client-supplied fields.
func Auth(sessions ports.SessionStore, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				return err
			}

			userID, err := sessions.Validate(c.Request().Context(), token)
			if err != nil {
				// Expired and never-issued tokens are indistinguishable.
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// UserFromContext returns the authenticated user injected by Auth.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	return user, ok
}
