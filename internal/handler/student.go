// This file defines the student dashboard handlers: submitting and
// cancelling applications and managing the student's own reviews. All
// routes here sit behind the StudentOnly guard; ownership is additionally
// enforced in the repository queries so one student can never touch
// another's rows.

package handler

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/catalog"
	"github.com/scholarstream/api/internal/middleware"
	"github.com/scholarstream/api/internal/queue"
	"github.com/scholarstream/api/internal/repository"
	queue_publisher "github.com/scholarstream/api/internal/service"
)

// StudentHandler bundles dependencies for student-facing endpoints.
type StudentHandler struct {
	Scholarships *repository.ScholarshipRepo
	Applications *repository.ApplicationRepo
	Reviews      *repository.ReviewRepo
}

func NewStudentHandler(s *repository.ScholarshipRepo, a *repository.ApplicationRepo, r *repository.ReviewRepo) *StudentHandler {
	return &StudentHandler{Scholarships: s, Applications: a, Reviews: r}
}

type applyReq struct {
	ScholarshipID uint64 `json:"scholarship_id"`
}

type reviewReq struct {
	ScholarshipID uint64 `json:"scholarship_id"`
	Rating        uint8  `json:"rating"`
	Comment       string `json:"comment"`
}

// Apply submits a paid application. The scholarship's fee at submission
// time is frozen onto the application row; actual payment collection is
// handled by the payment provider outside this service. An
// application.submitted event is published best-effort.
func (h *StudentHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil || req.ScholarshipID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scholarship_id required"})
	}
	uid := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Scholarships.GetByID(ctx, req.ScholarshipID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scholarship not found"})
	}

	feeCents := uint64(math.Round(catalog.FeeValue(s) * 100))
	appID, err := h.Applications.Create(ctx, uid, s.ID, feeCents)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "apply failed"})
	}

	if err := queue_publisher.PublishApplicationSubmitted(ctx, queue.ApplicationSubmittedEvent{
		ApplicationID:   appID,
		UserID:          uid,
		ScholarshipID:   s.ID,
		ScholarshipName: s.ScholarshipName,
		UniversityName:  s.UniversityName,
		FeePaidCents:    feeCents,
		SubmittedAt:     time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("student: application.submitted publish failed: %v", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":             appID,
		"scholarship_id": s.ID,
		"status":         "pending",
		"fee_paid_cents": feeCents,
	})
}

// MyApplications lists the caller's applications, newest first.
func (h *StudentHandler) MyApplications(c echo.Context) error {
	apps, err := h.Applications.ListByUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": apps})
}

// CancelApplication deletes one of the caller's applications while it is
// still pending.
func (h *StudentHandler) CancelApplication(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.Applications.CancelOwnPending(c.Request().Context(), id, middleware.UserID(c))
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no pending application"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateReview adds the caller's review of a scholarship.
func (h *StudentHandler) CreateReview(c echo.Context) error {
	var req reviewReq
	if err := c.Bind(&req); err != nil || req.ScholarshipID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scholarship_id required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be 1..5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Scholarships.GetByID(ctx, req.ScholarshipID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scholarship not found"})
	}
	id, err := h.Reviews.Create(ctx, middleware.UserID(c), req.ScholarshipID, req.Rating, req.Comment)
	if err == repository.ErrReviewExists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "already reviewed"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// UpdateReview edits one of the caller's reviews.
func (h *StudentHandler) UpdateReview(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be 1..5"})
	}
	err = h.Reviews.UpdateOwn(c.Request().Context(), id, middleware.UserID(c), req.Rating, req.Comment)
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update review failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteReview removes one of the caller's reviews.
func (h *StudentHandler) DeleteReview(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.Reviews.DeleteOwn(c.Request().Context(), id, middleware.UserID(c))
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete review failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// MyReviews lists the caller's reviews, newest first.
func (h *StudentHandler) MyReviews(c echo.Context) error {
	reviews, err := h.Reviews.ListByUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}
