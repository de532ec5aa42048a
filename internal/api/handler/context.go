package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/api/middleware"
	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware.
// Its presence proves the middleware ran; handlers behind Auth fail fast
// with 401 when it is missing.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
