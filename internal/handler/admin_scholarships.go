// This file defines scholarship management. Creation and deletion are
// admin-only; editing is open to moderators as well, matching the split of
// the dashboard screens. The router applies the corresponding guards.

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/model"
	"github.com/scholarstream/api/internal/repository"
)

// ScholarshipAdminHandler bundles dependencies for scholarship management.
type ScholarshipAdminHandler struct {
	Scholarships *repository.ScholarshipRepo
}

func NewScholarshipAdminHandler(s *repository.ScholarshipRepo) *ScholarshipAdminHandler {
	return &ScholarshipAdminHandler{Scholarships: s}
}

type scholarshipReq struct {
	ScholarshipName     string `json:"scholarship_name"`
	UniversityName      string `json:"university_name"`
	UniversityCountry   string `json:"university_country"`
	UniversityCity      string `json:"university_city"`
	Location            string `json:"location"`
	ScholarshipCategory string `json:"scholarship_category"`
	Degree              string `json:"degree"`
	FundingType         string `json:"funding_type"`
	ApplicationFees     string `json:"application_fees"`
	ApplicationDeadline string `json:"application_deadline"`
	UniversityImage     string `json:"university_image"`
}

func (r scholarshipReq) toModel() model.Scholarship {
	return model.Scholarship{
		ScholarshipName:     strings.TrimSpace(r.ScholarshipName),
		UniversityName:      strings.TrimSpace(r.UniversityName),
		UniversityCountry:   strings.TrimSpace(r.UniversityCountry),
		UniversityCity:      strings.TrimSpace(r.UniversityCity),
		Location:            strings.TrimSpace(r.Location),
		ScholarshipCategory: strings.TrimSpace(r.ScholarshipCategory),
		Degree:              strings.TrimSpace(r.Degree),
		FundingType:         strings.TrimSpace(r.FundingType),
		ApplicationFees:     strings.TrimSpace(r.ApplicationFees),
		ApplicationDeadline: strings.TrimSpace(r.ApplicationDeadline),
		UniversityImage:     strings.TrimSpace(r.UniversityImage),
	}
}

// Create inserts a scholarship (admin only).
func (h *ScholarshipAdminHandler) Create(c echo.Context) error {
	var req scholarshipReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s := req.toModel()
	if s.ScholarshipName == "" || s.UniversityName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scholarship_name and university_name required"})
	}
	id, err := h.Scholarships.Create(c.Request().Context(), s)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Update overwrites a scholarship's editable fields (moderator or admin).
func (h *ScholarshipAdminHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req scholarshipReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s := req.toModel()
	s.ID = id
	if s.ScholarshipName == "" || s.UniversityName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scholarship_name and university_name required"})
	}
	err = h.Scholarships.Update(c.Request().Context(), s)
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scholarship not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a scholarship (admin only).
func (h *ScholarshipAdminHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.Scholarships.Delete(c.Request().Context(), id)
	if err == repository.ErrNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scholarship not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
