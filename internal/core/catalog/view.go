// internal/core/catalog/view.go
package catalog

import (
	"slices"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// View holds the browsing state of one buyer and is the only place that
// decides when the current page resets.
type View struct {
	Query        string           `json:"query"`
	Filters      domain.FilterSet `json:"filters"`
	SortBy       domain.SortKey   `json:"sort_by"`
	CurrentPage  int              `json:"current_page"`
	ItemsPerPage int              `json:"items_per_page"`
}

// Result is the recomputed output of a View over a property list
type Result struct {
	Page
	PageNumbers []PageLink `json:"page_numbers"`
}

func NewView() *View {
	return &View{CurrentPage: 1, ItemsPerPage: DefaultItemsPerPage}
}

func (v *View) SetQuery(q string) {
	v.Query = q
	v.CurrentPage = 1
}

func (v *View) SetFilters(f domain.FilterSet) {
	v.Filters = f
	v.CurrentPage = 1
}

func (v *View) SetSort(key domain.SortKey) {
	v.SortBy = key
	v.CurrentPage = 1
}

// SetItemsPerPage changes the page size and always returns to page 1.
// Sizes outside ItemsPerPageOptions are ignored.
func (v *View) SetItemsPerPage(n int) bool {
	if !slices.Contains(ItemsPerPageOptions, n) {
		return false
	}
	v.ItemsPerPage = n
	v.CurrentPage = 1
	return true
}

// GoTo moves to page when it lies within [1, totalPages].
func (v *View) GoTo(page, totalPages int) bool {
	if page < 1 || page > totalPages {
		return false
	}
	v.CurrentPage = page
	return true
}

func (v *View) Next(totalPages int) bool { return v.GoTo(v.CurrentPage+1, totalPages) }

func (v *View) Prev(totalPages int) bool { return v.GoTo(v.CurrentPage-1, totalPages) }

// Clear drops the query, filters and sort key and returns to page 1.
func (v *View) Clear() {
	v.Query = ""
	v.Filters = domain.FilterSet{}
	v.SortBy = domain.SortNone
	v.CurrentPage = 1
}

// Apply runs search, filter, sort and pagination over list.
func (v *View) Apply(list []domain.Property) Result {
	narrowed := ApplySearchAndFilters(list, v.Query, v.Filters)

	var ordered []domain.Property
	if v.SortBy == domain.SortNone {
		ordered = DefaultOrder(narrowed)
	} else {
		ordered = Sort(narrowed, v.SortBy)
	}

	page := Paginate(ordered, v.CurrentPage, v.ItemsPerPage)
	return Result{
		Page:        page,
		PageNumbers: PageNumbers(v.CurrentPage, page.TotalPages),
	}
}
