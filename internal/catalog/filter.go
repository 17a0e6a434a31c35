// Package catalog implements the in-memory listing transforms for the
// scholarship catalog: filtering, sorting, filter-option derivation and the
// top-picks selection shown on the home page. The whole listing is fetched
// once and cached, so every transform here is a pure, synchronous function
// over the fetched slice; nothing mutates the source.
package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/scholarstream/api/internal/model"
)

// Sort keys accepted by Criteria.Sort. An empty key preserves the original
// fetch order.
const (
	SortFeesAsc  = "fees_asc"
	SortFeesDesc = "fees_desc"
	SortDateAsc  = "date_asc"
	SortDateDesc = "date_desc"
)

// Criteria carries the user's filter selections. Empty fields mean "no
// constraint". Search is matched case-insensitively as a substring against
// the scholarship name, the university name and the degree.
type Criteria struct {
	Search      string
	Category    string
	Degree      string
	Country     string
	FundingType string
	Sort        string
}

// FilterAndSort returns a new ordered view of listing under the criteria.
// The input slice is never modified. Filtering preserves relative order;
// sorting is stable so equal keys keep their fetch order.
func FilterAndSort(listing []model.Scholarship, c Criteria) []model.Scholarship {
	out := make([]model.Scholarship, 0, len(listing))
	needle := strings.ToLower(strings.TrimSpace(c.Search))
	for _, s := range listing {
		if !matchesSearch(s, needle) {
			continue
		}
		if c.Category != "" && s.ScholarshipCategory != c.Category {
			continue
		}
		if c.Degree != "" && s.Degree != c.Degree {
			continue
		}
		if c.Country != "" && !matchesCountry(s, c.Country) {
			continue
		}
		if c.FundingType != "" && s.FundingType != c.FundingType {
			continue
		}
		out = append(out, s)
	}

	switch c.Sort {
	case SortFeesAsc:
		sort.SliceStable(out, func(i, j int) bool { return FeeValue(out[i]) < FeeValue(out[j]) })
	case SortFeesDesc:
		sort.SliceStable(out, func(i, j int) bool { return FeeValue(out[i]) > FeeValue(out[j]) })
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return deadlineAscUnix(out[i]) < deadlineAscUnix(out[j]) })
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return DeadlineUnix(out[i]) > DeadlineUnix(out[j]) })
	}
	return out
}

func matchesSearch(s model.Scholarship, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.ScholarshipName), needle) ||
		strings.Contains(strings.ToLower(s.UniversityName), needle) ||
		strings.Contains(strings.ToLower(s.Degree), needle)
}

// matchesCountry checks UniversityCountry first and falls back to the
// legacy combined Location field carried by older records.
func matchesCountry(s model.Scholarship, country string) bool {
	if s.UniversityCountry != "" {
		return s.UniversityCountry == country
	}
	return s.Location == country
}

// FeeValue coerces the raw fee string to a number. Missing or non-numeric
// fees count as 0, which places free and malformed entries first in an
// ascending fee sort.
func FeeValue(s model.Scholarship) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.ApplicationFees), 64)
	if err != nil {
		return 0
	}
	return v
}

// deadlineLayouts are the date shapes observed in the imported listing data.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// DeadlineUnix parses the raw deadline into a Unix timestamp. Missing or
// unparsable deadlines coerce to epoch 0, which already places them last
// under a descending sort; the ascending comparator goes through
// deadlineAscUnix so they land last there too, after every real date.
func DeadlineUnix(s model.Scholarship) int64 {
	raw := strings.TrimSpace(s.ApplicationDeadline)
	if raw == "" {
		return 0
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Unix()
		}
	}
	return 0
}

// deadlineAscUnix maps a missing or unparsable deadline to the far future
// so entries without a usable date never crowd out real deadlines at the
// top of an ascending sort.
func deadlineAscUnix(s model.Scholarship) int64 {
	if v := DeadlineUnix(s); v != 0 {
		return v
	}
	return math.MaxInt64
}

// Options are the distinct values offered in the filter dropdowns. They are
// always derived from the UNFILTERED listing so that narrowing one filter
// never removes choices from the others.
type Options struct {
	Categories   []string `json:"categories"`
	Degrees      []string `json:"degrees"`
	Countries    []string `json:"countries"`
	FundingTypes []string `json:"funding_types"`
}

// DeriveOptions collects the distinct filter values present in the listing.
// Records missing a field simply contribute nothing to that list. Lists are
// sorted for stable output.
func DeriveOptions(listing []model.Scholarship) Options {
	cats := map[string]bool{}
	degs := map[string]bool{}
	countries := map[string]bool{}
	funds := map[string]bool{}
	for _, s := range listing {
		if s.ScholarshipCategory != "" {
			cats[s.ScholarshipCategory] = true
		}
		if s.Degree != "" {
			degs[s.Degree] = true
		}
		switch {
		case s.UniversityCountry != "":
			countries[s.UniversityCountry] = true
		case s.Location != "":
			countries[s.Location] = true
		}
		if s.FundingType != "" {
			funds[s.FundingType] = true
		}
	}
	return Options{
		Categories:   sortedKeys(cats),
		Degrees:      sortedKeys(degs),
		Countries:    sortedKeys(countries),
		FundingTypes: sortedKeys(funds),
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
