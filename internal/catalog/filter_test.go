package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/scholarstream/api/internal/model"
)

func sampleListing() []model.Scholarship {
	return []model.Scholarship{
		{ID: 1, ScholarshipName: "Global Merit Award", UniversityName: "Oxford", UniversityCountry: "UK", ScholarshipCategory: "Merit", Degree: "Masters", FundingType: "Full", ApplicationFees: "30", ApplicationDeadline: "2026-03-01"},
		{ID: 2, ScholarshipName: "Need Grant", UniversityName: "MIT", UniversityCountry: "USA", ScholarshipCategory: "Need", Degree: "Bachelors", FundingType: "Partial", ApplicationFees: "10", ApplicationDeadline: "2026-01-15"},
		{ID: 3, ScholarshipName: "Research Merit Fund", UniversityName: "ETH Zurich", Location: "Switzerland", ScholarshipCategory: "Merit", Degree: "PhD", FundingType: "Full", ApplicationFees: "varies", ApplicationDeadline: "not announced"},
	}
}

func TestNoCriteriaPreservesOriginalOrder(t *testing.T) {
	src := sampleListing()
	got := FilterAndSort(src, Criteria{})
	if !reflect.DeepEqual(got, src) {
		t.Fatalf("empty criteria changed the view: %+v", got)
	}
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	src := sampleListing()
	before := make([]model.Scholarship, len(src))
	copy(before, src)

	c := Criteria{Category: "Merit", Sort: SortFeesDesc}
	first := FilterAndSort(src, c)
	second := FilterAndSort(src, c)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same input and criteria produced different views")
	}
	if !reflect.DeepEqual(src, before) {
		t.Fatal("FilterAndSort mutated the source listing")
	}
}

func TestCategoryFilterKeepsRelativeOrder(t *testing.T) {
	got := FilterAndSort(sampleListing(), Criteria{Category: "Merit"})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("got %+v, want records 1 and 3 in fetch order", got)
	}
}

func TestSearchMatchesNameUniversityOrDegree(t *testing.T) {
	cases := []struct {
		search string
		want   []uint64
	}{
		{"merit", []uint64{1, 3}},
		{"MIT", []uint64{2}},
		{"phd", []uint64{3}},
		{"  ", []uint64{1, 2, 3}},
		{"nothing-matches", []uint64{}},
	}
	for _, c := range cases {
		got := FilterAndSort(sampleListing(), Criteria{Search: c.search})
		ids := make([]uint64, 0, len(got))
		for _, s := range got {
			ids = append(ids, s.ID)
		}
		if !reflect.DeepEqual(ids, c.want) {
			t.Errorf("search %q: got %v, want %v", c.search, ids, c.want)
		}
	}
}

func TestCountryFilterFallsBackToLocation(t *testing.T) {
	got := FilterAndSort(sampleListing(), Criteria{Country: "Switzerland"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got %+v, want the legacy-location record", got)
	}
	// A record with UniversityCountry set must not match via Location.
	src := []model.Scholarship{{ID: 9, UniversityCountry: "UK", Location: "Switzerland"}}
	if got := FilterAndSort(src, Criteria{Country: "Switzerland"}); len(got) != 0 {
		t.Fatalf("country field must win over location fallback, got %+v", got)
	}
}

func TestFeeSortCoercesNonNumericToZero(t *testing.T) {
	got := FilterAndSort(sampleListing(), Criteria{Sort: SortFeesAsc})
	want := []uint64{3, 2, 1} // "varies"->0, 10, 30
	ids := []uint64{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("fees_asc order %v, want %v", ids, want)
	}

	got = FilterAndSort(sampleListing(), Criteria{Sort: SortFeesDesc})
	if got[0].ID != 1 || got[2].ID != 3 {
		t.Fatalf("fees_desc order %v/%v/%v, want 1 first and 3 last", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestDateSortPlacesUnusableDeadlinesLast(t *testing.T) {
	got := FilterAndSort(sampleListing(), Criteria{Sort: SortDateAsc})
	want := []uint64{2, 1, 3} // earliest real date first, unparsable after every real date
	ids := []uint64{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("date_asc order %v, want %v", ids, want)
	}

	got = FilterAndSort(sampleListing(), Criteria{Sort: SortDateDesc})
	if got[len(got)-1].ID != 3 {
		t.Fatalf("date_desc must place the unparsable deadline last, got %v", got[len(got)-1].ID)
	}
	if got[0].ID != 1 {
		t.Fatalf("date_desc: got %v first, want latest deadline (1)", got[0].ID)
	}

	// A missing deadline sorts with the unparsable ones, not before the
	// dated entries.
	src := []model.Scholarship{
		{ID: 1, ApplicationDeadline: "not announced"},
		{ID: 2, ApplicationDeadline: "2026-01-15"},
		{ID: 3, ApplicationDeadline: "2026-03-01"},
		{ID: 4},
	}
	got = FilterAndSort(src, Criteria{Sort: SortDateAsc})
	ids = []uint64{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	if !reflect.DeepEqual(ids, []uint64{2, 3, 1, 4}) {
		t.Fatalf("date_asc order %v, want dated entries before 1 and 4", ids)
	}
}

func TestOptionsDeriveFromUnfilteredListing(t *testing.T) {
	opts := DeriveOptions(sampleListing())
	if !reflect.DeepEqual(opts.Categories, []string{"Merit", "Need"}) {
		t.Fatalf("categories = %v", opts.Categories)
	}
	if !reflect.DeepEqual(opts.Countries, []string{"Switzerland", "UK", "USA"}) {
		t.Fatalf("countries = %v (legacy location must contribute)", opts.Countries)
	}
	if !reflect.DeepEqual(opts.Degrees, []string{"Bachelors", "Masters", "PhD"}) {
		t.Fatalf("degrees = %v", opts.Degrees)
	}
	if !reflect.DeepEqual(opts.FundingTypes, []string{"Full", "Partial"}) {
		t.Fatalf("funding types = %v", opts.FundingTypes)
	}
}

func TestOptionsSkipAbsentFields(t *testing.T) {
	opts := DeriveOptions([]model.Scholarship{{ID: 1}, {ID: 2, Degree: "Masters"}})
	if len(opts.Categories) != 0 || len(opts.Countries) != 0 || len(opts.FundingTypes) != 0 {
		t.Fatalf("absent fields must not produce options: %+v", opts)
	}
	if !reflect.DeepEqual(opts.Degrees, []string{"Masters"}) {
		t.Fatalf("degrees = %v", opts.Degrees)
	}
}

func TestTopPicksCheapestFirstThenMostRecent(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	listing := []model.Scholarship{
		{ID: 1, ApplicationFees: "50", PostedAt: day(1)},
		{ID: 2, ApplicationFees: "0", PostedAt: day(2)},
		{ID: 3, ApplicationFees: "varies", PostedAt: day(9)},
		{ID: 4, ApplicationFees: "", PostedAt: day(5)},
		{ID: 5, ApplicationFees: "20", PostedAt: day(3)},
	}

	got := TopPicks(listing, 4)
	ids := make([]uint64, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	// Numeric fees ascending (2,5,1), then backfill by newest post (3).
	want := []uint64{2, 5, 1, 3}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("TopPicks order %v, want %v", ids, want)
	}

	if got := TopPicks(listing, 0); len(got) != 0 {
		t.Fatalf("n=0 must select nothing, got %v", got)
	}
	if got := TopPicks(listing, 10); len(got) != len(listing) {
		t.Fatalf("n beyond len must return all %d entries, got %d", len(listing), len(got))
	}
}
