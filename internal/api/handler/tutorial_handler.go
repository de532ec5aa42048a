package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type TutorialHandler struct {
	tutorialService ports.TutorialService
}

func NewTutorialHandler(tutorialService ports.TutorialService) *TutorialHandler {
	return &TutorialHandler{tutorialService: tutorialService}
}

type tutorialRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	VideoURL    string `json:"video_url"`
	Audience    string `json:"audience"`
}

func (r tutorialRequest) toInput() ports.TutorialInput {
	return ports.TutorialInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		VideoURL:    r.VideoURL,
		Audience:    r.Audience,
	}
}

// Create adds an educational tutorial.
//
// @Summary      Create a tutorial
// @Tags         tutorials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tutorialRequest  true  "Tutorial details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/tutorials [post]
func (h *TutorialHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req tutorialRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	tutorial, err := h.tutorialService.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, tutorial)
}

// Get returns a single tutorial.
//
// @Summary      Get a tutorial
// @Tags         tutorials
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Tutorial ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tutorials/{id} [get]
func (h *TutorialHandler) Get(c echo.Context) error {
	tutorial, err := h.tutorialService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, tutorial)
}

// Update edits a tutorial.
//
// @Summary      Update a tutorial
// @Tags         tutorials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Tutorial ID"
// @Param        body  body      tutorialRequest  true  "Tutorial details"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tutorials/{id} [put]
func (h *TutorialHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req tutorialRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	tutorial, err := h.tutorialService.Update(c.Request().Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, tutorial)
}

// Delete removes a tutorial.
//
// @Summary      Delete a tutorial
// @Tags         tutorials
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Tutorial ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tutorials/{id} [delete]
func (h *TutorialHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.tutorialService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "tutorial deleted"})
}

// List returns tutorials visible to the actor's role.
//
// @Summary      List tutorials
// @Tags         tutorials
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Category filter"
// @Success      200       {object}  successResponse
// @Router       /api/tutorials [get]
func (h *TutorialHandler) List(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	tutorials, err := h.tutorialService.List(c.Request().Context(), actor, c.QueryParam("category"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, tutorials)
}
