package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/api/metrics"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type WorkshopHandler struct {
	workshopService ports.WorkshopService
}

func NewWorkshopHandler(workshopService ports.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshopService: workshopService}
}

type workshopRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Village     string    `json:"village"`
	Date        time.Time `json:"date"        validate:"required"`
	Capacity    int       `json:"capacity"    validate:"min=0"`
}

func (r workshopRequest) toInput() ports.WorkshopInput {
	return ports.WorkshopInput{
		Title:       r.Title,
		Description: r.Description,
		Village:     r.Village,
		Date:        r.Date,
		Capacity:    r.Capacity,
	}
}

// Create schedules a workshop.
//
// @Summary      Create a workshop
// @Tags         workshops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      workshopRequest  true  "Workshop details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/workshops [post]
func (h *WorkshopHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req workshopRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	workshop, err := h.workshopService.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, workshop)
}

// Get returns a single workshop.
//
// @Summary      Get a workshop
// @Tags         workshops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Workshop ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/workshops/{id} [get]
func (h *WorkshopHandler) Get(c echo.Context) error {
	workshop, err := h.workshopService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, workshop)
}

// Update edits a workshop.
//
// @Summary      Update a workshop
// @Tags         workshops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Workshop ID"
// @Param        body  body      workshopRequest  true  "Workshop details"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/workshops/{id} [put]
func (h *WorkshopHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req workshopRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	workshop, err := h.workshopService.Update(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, workshop)
}

// Delete cancels a workshop.
//
// @Summary      Delete a workshop
// @Tags         workshops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Workshop ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/workshops/{id} [delete]
func (h *WorkshopHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.workshopService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "workshop deleted"})
}

// List returns workshops, optionally filtered by village.
//
// @Summary      List workshops
// @Tags         workshops
// @Produce      json
// @Security     BearerAuth
// @Param        village  query     string  false  "Village filter"
// @Success      200      {object}  successResponse
// @Router       /api/workshops [get]
func (h *WorkshopHandler) List(c echo.Context) error {
	workshops, err := h.workshopService.List(c.Request().Context(), c.QueryParam("village"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, workshops)
}

// Register signs the acting girl or woman up for a workshop.
//
// @Summary      Register for a workshop
// @Tags         workshops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Workshop ID"
// @Success      201  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/workshops/{id}/register [post]
func (h *WorkshopHandler) Register(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	reg, err := h.workshopService.Register(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.WorkshopRegistrationsTotal.Inc()
	return respond(c, http.StatusCreated, reg)
}

// ListRegistrations returns the sign-ups for a workshop.
//
// @Summary      List workshop registrations
// @Tags         workshops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Workshop ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/workshops/{id}/registrations [get]
func (h *WorkshopHandler) ListRegistrations(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	regs, err := h.workshopService.ListRegistrations(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, regs)
}
