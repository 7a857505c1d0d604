package domain

import (
	"strconv"
	"strings"
)

// CategoryAll disables the category filter.
const CategoryAll = "All"

type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSortKey maps a raw sort value to a SortKey. The Lowers collection
// page spells the price sorts price-low/price-high; both spellings are
// accepted. Unknown values sort like SortPopular.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rating":
		return SortRating
	case "newest":
		return SortNewest
	case "price-asc", "price-low":
		return SortPriceAsc
	case "price-desc", "price-high":
		return SortPriceDesc
	default:
		return SortPopular
	}
}

// PriceRange is the half-open interval [Min, Max). Max <= 0 leaves the
// upper end unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max > 0 {
		return price < r.Max
	}
	return true
}

func (r PriceRange) String() string {
	if r.Max > 0 {
		return strconv.FormatFloat(r.Min, 'f', -1, 64) + "-" + strconv.FormatFloat(r.Max, 'f', -1, 64)
	}
	return strconv.FormatFloat(r.Min, 'f', -1, 64) + "-"
}

// ParsePriceRange parses "min-max" ("0-1000", "2000-999999") or "min-".
// ok is false for anything it cannot read, and callers must then skip
// the price filter entirely.
func ParsePriceRange(s string) (PriceRange, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceRange{}, false
	}
	lo, hi, found := strings.Cut(s, "-")
	lower, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil || lower < 0 {
		return PriceRange{}, false
	}
	r := PriceRange{Min: lower}
	if !found || strings.TrimSpace(hi) == "" {
		return r, true
	}
	upper, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return PriceRange{}, false
	}
	r.Max = upper
	return r, true
}

type ProductFilter struct {
	Query      string
	Category   string
	PriceRange *PriceRange
	Sort       SortKey
}
