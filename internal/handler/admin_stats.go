// This file defines the admin analytics endpoint backing the dashboard
// analytics screen: platform totals plus the applications-per-category
// chart data. Rendering is the front-end's job; only the aggregation
// happens here.

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/repository"
)

// StatsSource supplies the aggregated platform overview. Implemented by
// repository.StatsRepo.
type StatsSource interface {
	Overview(ctx context.Context) (repository.Overview, error)
}

// AdminStatsHandler serves the analytics screen's data.
type AdminStatsHandler struct {
	Stats StatsSource
}

func NewAdminStatsHandler(s StatsSource) *AdminStatsHandler { return &AdminStatsHandler{Stats: s} }

// GetStats returns the platform overview (admin only).
func (h *AdminStatsHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Stats.Overview(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, o)
}
