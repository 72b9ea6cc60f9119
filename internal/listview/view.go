package listview

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/example/table-booker/internal/dining"
)

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByRating SortKey = "rating"
)

var nameCollator = collate.New(language.Und, collate.IgnoreCase)

// DeriveView filters source by a case-insensitive substring match of query
// against each name, then sorts the matches: name ascending with locale-aware
// collation, or rating descending. The sort is stable, so equal keys keep
// their source order. The result is always a fresh slice; source is never
// mutated. An empty query matches everything.
func DeriveView(source []dining.RestaurantSummary, query string, key SortKey) []dining.RestaurantSummary {
	q := strings.ToLower(query)

	view := make([]dining.RestaurantSummary, 0, len(source))
	for _, r := range source {
		if q == "" || strings.Contains(strings.ToLower(r.Name), q) {
			view = append(view, r)
		}
	}

	switch key {
	case SortByRating:
		sort.SliceStable(view, func(i, j int) bool {
			return sortableRating(view[i].Rating) > sortableRating(view[j].Rating)
		})
	default:
		sort.SliceStable(view, func(i, j int) bool {
			return nameCollator.CompareString(view[i].Name, view[j].Name) < 0
		})
	}
	return view
}

// sortableRating maps any non-finite rating to -Inf so ordering stays
// deterministic even on malformed data.
func sortableRating(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return math.Inf(-1)
	}
	return r
}
