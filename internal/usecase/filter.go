package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/phenrril/flexlinen/internal/domain"
)

// SuggestionLimit caps the search-as-you-type list.
const SuggestionLimit = 5

// FilterAndSort runs the shop pipeline: search, category, price range,
// then a stable sort. The input slice is left untouched.
func FilterAndSort(list []domain.Product, f domain.ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(list))
	query := strings.ToLower(f.Query)
	category := f.Category
	if category == "" {
		category = domain.CategoryAll
	}
	for _, p := range list {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if category != domain.CategoryAll && p.Category != category {
			continue
		}
		if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort)
	return out
}

// Suggest returns the first SuggestionLimit search matches in catalog
// order. An empty query suggests nothing.
func Suggest(list []domain.Product, query string) []domain.Product {
	out := []domain.Product{}
	if query == "" {
		return out
	}
	q := strings.ToLower(query)
	for _, p := range list {
		if matchesQuery(p, q) {
			out = append(out, p)
			if len(out) == SuggestionLimit {
				break
			}
		}
	}
	return out
}

func matchesQuery(p domain.Product, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Category), lowered) ||
		strings.Contains(strings.ToLower(p.Description), lowered)
}

func sortProducts(list []domain.Product, key domain.SortKey) {
	var less func(a, b domain.Product) bool
	switch key {
	case domain.SortPriceAsc:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case domain.SortPriceDesc:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case domain.SortNewest:
		less = func(a, b domain.Product) bool { return newerID(a.ID, b.ID) }
	default:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

// newerID orders ids descending. Integer ids come first, compared
// numerically; the rest follow, compared as text.
func newerID(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na > nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a > b
}
