// This file defines the moderator dashboard handlers: working the
// application queue and moderating reviews. Routes sit behind the
// ModeratorOrAdmin guard.

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/repository"
)

// ModeratorHandler bundles dependencies for moderation endpoints.
type ModeratorHandler struct {
	Applications *repository.ApplicationRepo
	Reviews      *repository.ReviewRepo
}

func NewModeratorHandler(a *repository.ApplicationRepo, r *repository.ReviewRepo) *ModeratorHandler {
	return &ModeratorHandler{Applications: a, Reviews: r}
}

// allowedStatuses restricts what a moderator may set.
var allowedStatuses = map[string]bool{
	"processing": true,
	"completed":  true,
	"rejected":   true,
}

type statusReq struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

// ListApplications returns every application, oldest first, so the queue
// is worked in submission order.
func (h *ModeratorHandler) ListApplications(c echo.Context) error {
	apps, err := h.Applications.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": apps})
}

// UpdateApplicationStatus moves an application to processing, completed or
// rejected, optionally attaching feedback for the student.
func (h *ModeratorHandler) UpdateApplicationStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if !allowedStatuses[req.Status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be processing, completed or rejected"})
	}

	err = h.Applications.UpdateStatus(c.Request().Context(), id, req.Status, req.Feedback)
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListReviews returns every review for the moderation screen.
func (h *ModeratorHandler) ListReviews(c echo.Context) error {
	reviews, err := h.Reviews.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}

// DeleteReview removes any review, regardless of owner.
func (h *ModeratorHandler) DeleteReview(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.Reviews.Delete(c.Request().Context(), id)
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
