package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/scholarstream/api/internal/model"
)

// TopPicks selects up to n scholarships for the home page: the cheapest
// application fees first (only entries whose fee actually parses as a
// number compete on price), backfilled with the most recently posted
// remaining entries when fewer than n have numeric fees. The input slice is
// never modified.
func TopPicks(listing []model.Scholarship, n int) []model.Scholarship {
	if n <= 0 {
		return []model.Scholarship{}
	}

	priced := make([]model.Scholarship, 0, len(listing))
	for _, s := range listing {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s.ApplicationFees), 64); err == nil && strings.TrimSpace(s.ApplicationFees) != "" {
			priced = append(priced, s)
		}
	}
	sort.SliceStable(priced, func(i, j int) bool { return FeeValue(priced[i]) < FeeValue(priced[j]) })

	out := make([]model.Scholarship, 0, n)
	chosen := map[uint64]bool{}
	for _, s := range priced {
		if len(out) == n {
			return out
		}
		out = append(out, s)
		chosen[s.ID] = true
	}

	rest := make([]model.Scholarship, 0, len(listing))
	for _, s := range listing {
		if !chosen[s.ID] {
			rest = append(rest, s)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].PostedAt.After(rest[j].PostedAt) })
	for _, s := range rest {
		if len(out) == n {
			break
		}
		out = append(out, s)
	}
	return out
}
