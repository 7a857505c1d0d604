package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		in   string
		want PriceRange
		ok   bool
	}{
		{"0-1000", PriceRange{Min: 0, Max: 1000}, true},
		{"1000-2000", PriceRange{Min: 1000, Max: 2000}, true},
		{"2000-999999", PriceRange{Min: 2000, Max: 999999}, true},
		{"1500-", PriceRange{Min: 1500}, true},
		{"1500", PriceRange{Min: 1500}, true},
		{" 10 - 20 ", PriceRange{Min: 10, Max: 20}, true},
		{"", PriceRange{}, false},
		{"cheap", PriceRange{}, false},
		{"10-lots", PriceRange{}, false},
		{"-100", PriceRange{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePriceRange(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceRange_HalfOpen(t *testing.T) {
	r := PriceRange{Min: 1000, Max: 2000}
	assert.True(t, r.Contains(1000))
	assert.True(t, r.Contains(1999))
	assert.False(t, r.Contains(2000))
	assert.False(t, r.Contains(999))

	open := PriceRange{Min: 2000}
	assert.True(t, open.Contains(1e9))
	assert.Equal(t, "2000-", open.String())
	assert.Equal(t, "1000-2000", r.String())
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPopular, ParseSortKey(""))
	assert.Equal(t, SortPopular, ParseSortKey("whatever"))
	assert.Equal(t, SortRating, ParseSortKey("rating"))
	assert.Equal(t, SortNewest, ParseSortKey("Newest"))
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-low"))
	assert.Equal(t, SortPriceDesc, ParseSortKey("price-high"))
	assert.Equal(t, SortPriceDesc, ParseSortKey("price-desc"))
}
