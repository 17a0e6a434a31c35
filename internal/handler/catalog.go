// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file defines the public catalog API: unauthenticated
// users browse the scholarship listing with search, filters and sort. The
// whole listing is read once per request path (and cached by the response
// cache middleware); filtering and sorting run in memory through the
// catalog package so its coercion rules for malformed records apply.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/catalog"
	"github.com/scholarstream/api/internal/model"
	"github.com/scholarstream/api/internal/repository"
)

// topPicksCount matches the home-page card grid.
const topPicksCount = 6

// CatalogHandler aggregates what the public browsing endpoints need.
type CatalogHandler struct {
	Scholarships *repository.ScholarshipRepo
}

func NewCatalogHandler(s *repository.ScholarshipRepo) *CatalogHandler {
	return &CatalogHandler{Scholarships: s}
}

// publicScholarship is the listing entry exposed to unauthenticated users.
type publicScholarship struct {
	ID                  uint64 `json:"id"`
	ScholarshipName     string `json:"scholarship_name"`
	UniversityName      string `json:"university_name"`
	UniversityCountry   string `json:"university_country,omitempty"`
	UniversityCity      string `json:"university_city,omitempty"`
	Location            string `json:"location,omitempty"`
	ScholarshipCategory string `json:"scholarship_category,omitempty"`
	Degree              string `json:"degree,omitempty"`
	FundingType         string `json:"funding_type,omitempty"`
	ApplicationFees     string `json:"application_fees,omitempty"`
	ApplicationDeadline string `json:"application_deadline,omitempty"`
	UniversityImage     string `json:"university_image,omitempty"`
}

func toPublic(s model.Scholarship) publicScholarship {
	return publicScholarship{
		ID:                  s.ID,
		ScholarshipName:     s.ScholarshipName,
		UniversityName:      s.UniversityName,
		UniversityCountry:   s.UniversityCountry,
		UniversityCity:      s.UniversityCity,
		Location:            s.Location,
		ScholarshipCategory: s.ScholarshipCategory,
		Degree:              s.Degree,
		FundingType:         s.FundingType,
		ApplicationFees:     s.ApplicationFees,
		ApplicationDeadline: s.ApplicationDeadline,
		UniversityImage:     s.UniversityImage,
	}
}

func criteriaFrom(c echo.Context) catalog.Criteria {
	return catalog.Criteria{
		Search:      c.QueryParam("search"),
		Category:    c.QueryParam("category"),
		Degree:      c.QueryParam("degree"),
		Country:     c.QueryParam("country"),
		FundingType: c.QueryParam("funding_type"),
		Sort:        c.QueryParam("sort"),
	}
}

// ListScholarships returns the filtered, sorted listing view. Response JSON
// carries the view under "items" plus the total size of the unfiltered
// listing, so clients can show "n of m".
func (h *CatalogHandler) ListScholarships(c echo.Context) error {
	listing, err := h.Scholarships.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	view := catalog.FilterAndSort(listing, criteriaFrom(c))
	out := make([]publicScholarship, 0, len(view))
	for _, s := range view {
		out = append(out, toPublic(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out, "total": len(listing)})
}

// TopScholarships returns the home-page selection: cheapest application
// fees first, backfilled by the most recently posted.
func (h *CatalogHandler) TopScholarships(c echo.Context) error {
	listing, err := h.Scholarships.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	picks := catalog.TopPicks(listing, topPicksCount)
	out := make([]publicScholarship, 0, len(picks))
	for _, s := range picks {
		out = append(out, toPublic(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ScholarshipOptions returns the filter dropdown values, derived from the
// unfiltered listing so narrowing one filter never hides choices in the
// others.
func (h *CatalogHandler) ScholarshipOptions(c echo.Context) error {
	listing, err := h.Scholarships.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, catalog.DeriveOptions(listing))
}

// GetScholarship returns one scholarship by id.
func (h *CatalogHandler) GetScholarship(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Scholarships.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scholarship not found"})
	}
	return c.JSON(http.StatusOK, toPublic(s))
}
