package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/api/metrics"
	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type setVerifiedRequest struct {
	Verified bool `json:"verified"`
}

// Me returns the authoritative snapshot of the acting user so the client can
// refresh its cached copy after server-side changes.
//
// @Summary      Current user snapshot
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toSnapshot(actor))
}

// AssignRole performs the one-time no-role → has-role transition (or an
// admin override). The response carries the updated snapshot and the new
// dashboard path so the client overwrites its cache and routes in one step.
//
// @Summary      Assign a role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      assignRoleRequest  true  "Target role"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) AssignRole(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.AssignRole(c.Request().Context(), actor, c.Param("id"), req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return fail(c, http.StatusBadRequest, "invalid role")
		}
		return err
	}

	metrics.RoleAssignmentsTotal.WithLabelValues(string(updated.Role)).Inc()

	return respond(c, http.StatusOK, map[string]any{
		"user":      toSnapshot(updated),
		"dashboard": updated.Role.DashboardPath(),
	})
}

// SetVerified toggles the administrative verification flag.
//
// @Summary      Set a user's verified flag
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "User ID"
// @Param        body  body      setVerifiedRequest  true  "Verified flag"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/verify [patch]
func (h *UserHandler) SetVerified(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req setVerifiedRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.userService.SetVerified(c.Request().Context(), actor, c.Param("id"), req.Verified)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toSnapshot(updated))
}

// List returns all users, optionally filtered by role. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Role filter"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	users, err := h.userService.List(c.Request().Context(), actor, c.QueryParam("role"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return fail(c, http.StatusBadRequest, "invalid role filter")
		}
		return err
	}

	snapshots := make([]userSnapshot, 0, len(users))
	for i := range users {
		snapshots = append(snapshots, toSnapshot(&users[i]))
	}
	return respond(c, http.StatusOK, snapshots)
}
