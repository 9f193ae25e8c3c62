// internal/core/catalog/search.go

// Package catalog turns a property list into the page a buyer sees: text
// search, structured filtering, ordering and pagination. Every function is
// pure and leaves its input slice untouched.
package catalog

import (
	"strings"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// Search keeps the properties whose title, location, city, type or
// description contains query, ignoring case. A blank query returns list as is.
func Search(list []domain.Property, query string) []domain.Property {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]domain.Property, 0, len(list))
	for _, p := range list {
		if matchesQuery(&p, q) {
			out = append(out, p)
		}
	}
	return out
}

// matchesQuery expects q already trimmed and lower-cased.
func matchesQuery(p *domain.Property, q string) bool {
	for _, field := range [...]string{p.Title, p.Location, p.City, string(p.Type), p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
