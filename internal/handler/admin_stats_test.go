package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/repository"
)

type stubStats struct {
	overview repository.Overview
	err      error
}

func (s stubStats) Overview(context.Context) (repository.Overview, error) {
	return s.overview, s.err
}

func statsRequest(t *testing.T, src StatsSource) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := NewAdminStatsHandler(src).GetStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestGetStatsReturnsOverview(t *testing.T) {
	rec := statsRequest(t, stubStats{overview: repository.Overview{
		TotalUsers:        12,
		TotalScholarships: 4,
		TotalApplications: 9,
		TotalRevenueCents: 27500,
		ChartData: []repository.CategoryCount{
			{Name: "Merit", Count: 6},
			{Name: "Need", Count: 3},
		},
	}})
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}

	var got repository.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.TotalUsers != 12 || got.TotalRevenueCents != 27500 {
		t.Fatalf("overview = %+v", got)
	}
	if len(got.ChartData) != 2 || got.ChartData[0].Name != "Merit" {
		t.Fatalf("chart data = %+v", got.ChartData)
	}
}

func TestGetStatsReportsDatabaseError(t *testing.T) {
	rec := statsRequest(t, stubStats{err: errors.New("timeout")})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", rec.Code)
	}
}
