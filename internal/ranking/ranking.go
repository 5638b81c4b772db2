// Package ranking orders a catalog snapshot for presentation. Rank is a pure
// function of its inputs so the result can be recomputed on every change of
// category, query, or sort key without caching.
package ranking

import (
	"sort"
	"strings"

	"github.com/tripglide/tripglide-api/internal/domain"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
	SortReviews     SortKey = "reviews"
)

// ParseSortKey maps a raw query value to a SortKey. Unknown values fall back
// to the recommended ordering rather than erroring.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortRating, SortReviews, SortRecommended:
		return SortKey(raw)
	default:
		return SortRecommended
	}
}

// Rank filters the catalog by category and free-text query, then orders the
// survivors by the sort key. The input slice is never mutated and the result
// is never nil. Ties keep the catalog's original order (stable sort).
func Rank(catalog []domain.Trip, category, query string, key SortKey) []domain.Trip {
	out := make([]domain.Trip, 0, len(catalog))
	for _, trip := range catalog {
		if Matches(trip, category, query) {
			out = append(out, trip)
		}
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue < out[j].PriceValue
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue > out[j].PriceValue
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortReviews:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Reviews > out[j].Reviews
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return score(out[i]) > score(out[j])
		})
	}
	return out
}

// Matches is the shared filter predicate: the wildcard category passes
// everything, and a non-empty query must appear case-insensitively in the
// title, country, or description.
func Matches(trip domain.Trip, category, query string) bool {
	if category != domain.CategoryAll && trip.Category != category {
		return false
	}
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(trip.Title), q) ||
		strings.Contains(strings.ToLower(trip.Country), q) ||
		strings.Contains(strings.ToLower(trip.Description), q)
}

// score favors high ratings and lightly penalizes expensive trips. The
// weights match the ordering the product shipped with, so they are kept
// as-is rather than re-tuned.
func score(trip domain.Trip) float64 {
	return trip.Rating*20 - trip.PriceValue/100
}
