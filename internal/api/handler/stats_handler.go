package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// AdminStats returns platform-wide aggregations for the admin dashboard.
//
// @Summary      Admin dashboard statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.statsService.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}

// SellerAnalytics returns the acting seller's marketplace aggregations.
//
// @Summary      Seller analytics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/women/analytics [get]
func (h *StatsHandler) SellerAnalytics(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	analytics, err := h.statsService.SellerAnalytics(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, analytics)
}
