// internal/core/catalog/paginate.go
package catalog

import (
	"strconv"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

const (
	DefaultItemsPerPage = 12
	maxVisiblePages     = 5
)

// ItemsPerPageOptions are the page sizes a buyer can choose from.
var ItemsPerPageOptions = []int{9, 12, 18, 24}

// Page is one window of an ordered result
type Page struct {
	Items      []domain.Property `json:"items"`
	Page       int               `json:"current_page"`
	PerPage    int               `json:"items_per_page"`
	TotalCount int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}

// TotalPages is ceil(total/perPage), zero when perPage is not positive.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Paginate slices list[(page-1)*perPage : page*perPage]. It does not clamp:
// a page outside [1, TotalPages] has no items, and callers are expected to
// keep navigation inside the bounds.
func Paginate(list []domain.Property, page, perPage int) Page {
	p := Page{
		Items:      []domain.Property{},
		Page:       page,
		PerPage:    perPage,
		TotalCount: len(list),
		TotalPages: TotalPages(len(list), perPage),
	}
	if perPage <= 0 || page < 1 {
		return p
	}

	start := (page - 1) * perPage
	if start >= len(list) {
		return p
	}
	end := min(start+perPage, len(list))
	p.Items = list[start:end]
	return p
}

// PageLink is one entry of the page-number control. Ellipsis entries carry
// no page number.
type PageLink struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func (l PageLink) String() string {
	if l.Ellipsis {
		return "…"
	}
	return strconv.Itoa(l.Number)
}

var ellipsis = PageLink{Ellipsis: true}

// PageNumbers builds the page-number window shown under a result list.
//
//	total <= 5          1 .. total
//	current <= 3        1 2 3 4 … total
//	current >= total-2  1 … total-3 total-2 total-1 total
//	otherwise           1 … current-1 current current+1 … total
func PageNumbers(current, total int) []PageLink {
	if total <= 0 {
		return []PageLink{}
	}

	if total <= maxVisiblePages {
		links := make([]PageLink, 0, total)
		for i := 1; i <= total; i++ {
			links = append(links, PageLink{Number: i})
		}
		return links
	}

	switch {
	case current <= 3:
		return []PageLink{{Number: 1}, {Number: 2}, {Number: 3}, {Number: 4}, ellipsis, {Number: total}}
	case current >= total-2:
		return []PageLink{{Number: 1}, ellipsis, {Number: total - 3}, {Number: total - 2}, {Number: total - 1}, {Number: total}}
	default:
		return []PageLink{{Number: 1}, ellipsis, {Number: current - 1}, {Number: current}, {Number: current + 1}, ellipsis, {Number: total}}
	}
}
