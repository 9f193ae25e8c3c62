// internal/core/catalog/filter.go
package catalog

import (
	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// Filter keeps the properties that satisfy every constraint set in filters.
func Filter(list []domain.Property, filters domain.FilterSet) []domain.Property {
	if filters.IsEmpty() {
		return list
	}

	out := make([]domain.Property, 0, len(list))
	for _, p := range list {
		if Matches(&p, filters) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p satisfies filters.
func Matches(p *domain.Property, f domain.FilterSet) bool {
	if f.PriceRange.Min != nil && p.Price < *f.PriceRange.Min {
		return false
	}
	if f.PriceRange.Max != nil && p.Price > *f.PriceRange.Max {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.City != nil && p.City != *f.City {
		return false
	}
	if f.Type != nil && string(p.Type) != *f.Type {
		return false
	}
	return true
}

// ApplySearchAndFilters narrows list by query and then by filters. Both steps
// are conjunctive, so the order does not change the result.
func ApplySearchAndFilters(list []domain.Property, query string, filters domain.FilterSet) []domain.Property {
	return Filter(Search(list, query), filters)
}
