package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/api/metrics"
	"github.com/UtsavYadav1/empowerher/internal/api/middleware"
	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/gate"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
	users       ports.UserRepository
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, users ports.UserRepository) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, users: users}
}

// Register creates a new account with no role assigned.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Village:  req.Village,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return fail(c, http.StatusConflict, "user already exists")
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return fail(c, http.StatusBadRequest, "name, phone and password are required")
		}
		return err
	}

	return respond(c, http.StatusCreated, toSnapshot(user))
}

// Login authenticates by phone or email and mints a bearer session token.
// The client must persist token and user snapshot together and clear them
// together on logout.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	identifier := req.Phone
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		return fail(c, http.StatusBadRequest, "phone or email is required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), identifier, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return fail(c, http.StatusUnauthorized, "Invalid phone or password")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsCreatedTotal.Inc()

	return respond(c, http.StatusOK, loginResponse{
		Token:     token,
		User:      toSnapshot(user),
		Dashboard: user.Role.DashboardPath(),
	})
}

// Logout revokes the server-side session for the presented bearer token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.Inc()
	return respond(c, http.StatusOK, map[string]string{"message": "logged out"})
}

// Gate evaluates the routing decision for a page path so clients do not
// duplicate the redirect table. It is a routing convenience, not an
// enforcement point: it may be called without a token.
//
// @Summary      Evaluate the page routing gate
// @Tags         auth
// @Produce      json
// @Param        path  query     string  true   "Page path, e.g. /women/dashboard"
// @Param        open  query     bool    false  "Mark the page as not role-scoped"
// @Success      200   {object}  successResponse
// @Router       /api/auth/gate [get]
func (h *AuthHandler) Gate(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return fail(c, http.StatusBadRequest, "path is required")
	}

	in := gate.Input{
		Path:         path,
		RequiresRole: c.QueryParam("open") != "true",
	}

	// Resolve the caller's identity when a token is presented; a bad token
	// is treated as no token so the gate redirects to login.
	if token, err := middleware.BearerToken(c); err == nil {
		if userID, err := h.sessions.Validate(c.Request().Context(), token); err == nil {
			if user, err := h.users.FindByID(c.Request().Context(), userID); err == nil {
				in.TokenPresent = true
				in.Role = user.Role
			}
		}
	}

	return respond(c, http.StatusOK, gate.Evaluate(in))
}
