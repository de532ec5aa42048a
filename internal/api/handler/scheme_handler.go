package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type SchemeHandler struct {
	schemeService ports.SchemeService
}

func NewSchemeHandler(schemeService ports.SchemeService) *SchemeHandler {
	return &SchemeHandler{schemeService: schemeService}
}

type schemeRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"    validate:"required,oneof=education finance health livelihood"`
	Eligibility string `json:"eligibility"`
	ApplyURL    string `json:"apply_url"`
}

func (r schemeRequest) toInput() ports.SchemeInput {
	return ports.SchemeInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Eligibility: r.Eligibility,
		ApplyURL:    r.ApplyURL,
	}
}

// Create adds a scheme entry. Admin only.
//
// @Summary      Create a scheme
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      schemeRequest  true  "Scheme details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/schemes [post]
func (h *SchemeHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req schemeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	scheme, err := h.schemeService.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, scheme)
}

// Get returns a single scheme.
//
// @Summary      Get a scheme
// @Tags         schemes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Scheme ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/schemes/{id} [get]
func (h *SchemeHandler) Get(c echo.Context) error {
	scheme, err := h.schemeService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, scheme)
}

// Update edits a scheme entry. Admin only.
//
// @Summary      Update a scheme
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Scheme ID"
// @Param        body  body      schemeRequest  true  "Scheme details"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/schemes/{id} [put]
func (h *SchemeHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req schemeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	scheme, err := h.schemeService.Update(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, scheme)
}

// Delete removes a scheme entry. Admin only.
//
// @Summary      Delete a scheme
// @Tags         schemes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Scheme ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/schemes/{id} [delete]
func (h *SchemeHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.schemeService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "scheme deleted"})
}

// List returns schemes, optionally filtered by category.
//
// @Summary      List schemes
// @Tags         schemes
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Category filter (education, finance, health, livelihood)"
// @Success      200       {object}  successResponse
// @Failure      400       {object}  errorResponse
// @Router       /api/schemes [get]
func (h *SchemeHandler) List(c echo.Context) error {
	schemes, err := h.schemeService.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return fail(c, http.StatusBadRequest, "invalid category")
		}
		return err
	}
	return respond(c, http.StatusOK, schemes)
}
