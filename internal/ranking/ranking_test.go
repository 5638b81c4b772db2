package ranking

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tripglide/tripglide-api/internal/domain"
)

func trip(title, country, category string, price, rating float64, reviews int) domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Title:       title,
		Country:     country,
		Category:    category,
		Description: title + " in " + country,
		PriceValue:  price,
		Rating:      rating,
		Reviews:     reviews,
	}
}

func titles(trips []domain.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.Title)
	}
	return out
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankWildcardKeepsMembership(t *testing.T) {
	catalog := []domain.Trip{
		trip("Rio de Janeiro", "Brazil", "South America", 489, 5.0, 143),
		trip("Bangkok Explorer", "Thailand", "Asia", 449, 4.7, 89),
		trip("Alpine Adventure", "Switzerland", "Europe", 659, 4.6, 120),
	}

	for _, key := range []SortKey{SortRecommended, SortPriceLow, SortPriceHigh, SortRating, SortReviews} {
		got := Rank(catalog, domain.CategoryAll, "", key)
		if len(got) != len(catalog) {
			t.Fatalf("sort %q: expected %d trips, got %d", key, len(catalog), len(got))
		}
		seen := make(map[uuid.UUID]bool, len(got))
		for _, tr := range got {
			seen[tr.ID] = true
		}
		for _, tr := range catalog {
			if !seen[tr.ID] {
				t.Fatalf("sort %q: trip %q missing from result", key, tr.Title)
			}
		}
	}
}

func TestRankCategoryFilter(t *testing.T) {
	catalog := []domain.Trip{
		trip("Rio de Janeiro", "Brazil", "South America", 489, 5.0, 143),
		trip("Bangkok Explorer", "Thailand", "Asia", 449, 4.7, 89),
		trip("Machu Picchu Explorer", "Peru", "South America", 1199, 4.9, 178),
	}

	got := Rank(catalog, "South America", "", SortRecommended)
	if len(got) != 2 {
		t.Fatalf("expected 2 South America trips, got %d", len(got))
	}
	for _, tr := range got {
		if tr.Category != "South America" {
			t.Fatalf("trip %q has category %q", tr.Title, tr.Category)
		}
	}
}

func TestRankRecommendedScenario(t *testing.T) {
	// Scores: A = 100-4.89 = 95.11, C = 94-4.49 = 89.51, B = 92-6.59 = 85.41.
	catalog := []domain.Trip{
		trip("A", "Brazil", "South America", 489, 5.0, 10),
		trip("B", "Peru", "South America", 659, 4.6, 10),
		trip("C", "Chile", "South America", 449, 4.7, 10),
	}

	got := titles(Rank(catalog, domain.CategoryAll, "", SortRecommended))
	if !sameOrder(got, []string{"A", "C", "B"}) {
		t.Fatalf("expected order A, C, B; got %v", got)
	}
}

func TestRankIsDeterministic(t *testing.T) {
	catalog := []domain.Trip{
		trip("A", "Brazil", "South America", 489, 5.0, 10),
		trip("B", "Peru", "South America", 489, 5.0, 10),
		trip("C", "Chile", "South America", 489, 5.0, 10),
	}

	first := titles(Rank(catalog, domain.CategoryAll, "", SortRecommended))
	second := titles(Rank(catalog, domain.CategoryAll, "", SortRecommended))
	if !sameOrder(first, second) {
		t.Fatalf("rank is not deterministic: %v vs %v", first, second)
	}
	// All scores equal, so the catalog order must survive.
	if !sameOrder(first, []string{"A", "B", "C"}) {
		t.Fatalf("expected stable catalog order for ties, got %v", first)
	}
}

func TestRankPriceLowMirrorsPriceHigh(t *testing.T) {
	catalog := []domain.Trip{
		trip("A", "Brazil", "South America", 489, 5.0, 10),
		trip("B", "Peru", "South America", 1199, 4.9, 10),
		trip("C", "Chile", "South America", 449, 4.7, 10),
	}

	low := titles(Rank(catalog, domain.CategoryAll, "", SortPriceLow))
	high := titles(Rank(catalog, domain.CategoryAll, "", SortPriceHigh))

	for i := range low {
		if low[i] != high[len(high)-1-i] {
			t.Fatalf("price-low %v is not the reverse of price-high %v", low, high)
		}
	}
}

func TestRankFreeTextSearch(t *testing.T) {
	catalog := []domain.Trip{
		trip("Rio de Janeiro", "Brazil", "South America", 489, 5.0, 143),
		trip("Bangkok Explorer", "Thailand", "Asia", 449, 4.7, 89),
	}

	got := Rank(catalog, domain.CategoryAll, "rio", SortRecommended)
	if len(got) != 1 || got[0].Title != "Rio de Janeiro" {
		t.Fatalf("expected only Rio de Janeiro for query %q, got %v", "rio", titles(got))
	}

	// Country matches too, case-insensitively.
	got = Rank(catalog, domain.CategoryAll, "THAI", SortRecommended)
	if len(got) != 1 || got[0].Title != "Bangkok Explorer" {
		t.Fatalf("expected only Bangkok Explorer for query %q, got %v", "THAI", titles(got))
	}
}

func TestRankUnknownSortFallsBack(t *testing.T) {
	catalog := []domain.Trip{
		trip("A", "Brazil", "South America", 489, 5.0, 10),
		trip("B", "Peru", "South America", 659, 4.6, 10),
	}

	got := titles(Rank(catalog, domain.CategoryAll, "", ParseSortKey("bogus")))
	want := titles(Rank(catalog, domain.CategoryAll, "", SortRecommended))
	if !sameOrder(got, want) {
		t.Fatalf("unknown sort key did not fall back to recommended: %v vs %v", got, want)
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	got := Rank(nil, domain.CategoryAll, "", SortRecommended)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no trips, got %d", len(got))
	}
}
