// internal/core/catalog/sort.go
package catalog

import (
	"cmp"
	"slices"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// Sort returns a copy of list ordered by key. Equal keys keep their input
// order, so a page is the same on every recompute. An unknown or empty key
// returns the copy unsorted.
func Sort(list []domain.Property, key domain.SortKey) []domain.Property {
	out := slices.Clone(list)
	if cmpFn := comparator(key); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func comparator(key domain.SortKey) func(a, b domain.Property) int {
	switch key {
	case domain.SortPriceLow:
		return func(a, b domain.Property) int { return cmp.Compare(a.Price, b.Price) }
	case domain.SortPriceHigh:
		return func(a, b domain.Property) int { return cmp.Compare(b.Price, a.Price) }
	case domain.SortNewest:
		return byNewest
	case domain.SortFeatured:
		return byFeatured
	}
	return nil
}

// byNewest orders by descending posted date. A zero date sorts as the oldest.
func byNewest(a, b domain.Property) int {
	return b.PostedDate.Compare(a.PostedDate)
}

func byFeatured(a, b domain.Property) int {
	switch {
	case a.Featured == b.Featured:
		return 0
	case a.Featured:
		return -1
	}
	return 1
}

// DefaultOrder is the listing order used when the buyer picks no sort key:
// featured listings first, newest first within each group.
func DefaultOrder(list []domain.Property) []domain.Property {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b domain.Property) int {
		if c := byFeatured(a, b); c != 0 {
			return c
		}
		return byNewest(a, b)
	})
	return out
}
