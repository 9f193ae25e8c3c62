package catalog_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitabhanmolpain/realestate-be/internal/core/catalog"
	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

func TestNewView_Defaults(t *testing.T) {
	v := catalog.NewView()

	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, catalog.DefaultItemsPerPage, v.ItemsPerPage)
	assert.Empty(t, v.Query)
	assert.True(t, v.Filters.IsEmpty())
	assert.Equal(t, domain.SortNone, v.SortBy)
}

func TestView_ItemsPerPageResetsPage(t *testing.T) {
	v := catalog.NewView()
	require.True(t, v.SetItemsPerPage(9))
	require.True(t, v.GoTo(3, 5))
	require.Equal(t, 3, v.CurrentPage)

	require.True(t, v.SetItemsPerPage(12))
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 12, v.ItemsPerPage)
}

func TestView_RejectsUnknownPageSize(t *testing.T) {
	v := catalog.NewView()
	require.True(t, v.GoTo(2, 4))

	assert.False(t, v.SetItemsPerPage(7))
	assert.Equal(t, 2, v.CurrentPage)
	assert.Equal(t, catalog.DefaultItemsPerPage, v.ItemsPerPage)
}

func TestView_Navigation(t *testing.T) {
	v := catalog.NewView()

	assert.False(t, v.Prev(3), "previous is disabled on the first page")
	assert.False(t, v.GoTo(0, 3))
	assert.False(t, v.GoTo(4, 3))
	assert.True(t, v.Next(3))
	assert.True(t, v.Next(3))
	assert.False(t, v.Next(3), "next is disabled on the last page")
	assert.Equal(t, 3, v.CurrentPage)
	assert.True(t, v.Prev(3))
	assert.Equal(t, 2, v.CurrentPage)
}

func TestView_StateChangesResetPage(t *testing.T) {
	tests := []struct {
		name   string
		change func(v *catalog.View)
	}{
		{name: "query", change: func(v *catalog.View) { v.SetQuery("villa") }},
		{name: "filters", change: func(v *catalog.View) { v.SetFilters(domain.FilterSet{City: ptr("Pune")}) }},
		{name: "sort", change: func(v *catalog.View) { v.SetSort(domain.SortPriceLow) }},
		{name: "clear", change: func(v *catalog.View) { v.Clear() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := catalog.NewView()
			require.True(t, v.GoTo(4, 10))
			tt.change(v)
			assert.Equal(t, 1, v.CurrentPage)
		})
	}
}

func TestView_ClearResetsEverythingTogether(t *testing.T) {
	v := catalog.NewView()
	v.SetQuery("mumbai")
	v.SetFilters(domain.FilterSet{Bedrooms: ptr(2), City: ptr("Mumbai")})
	v.SetSort(domain.SortNewest)
	require.True(t, v.SetItemsPerPage(24))
	require.True(t, v.GoTo(2, 3))

	v.Clear()

	assert.Empty(t, v.Query)
	assert.True(t, v.Filters.IsEmpty())
	assert.Equal(t, domain.SortNone, v.SortBy)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 24, v.ItemsPerPage, "page size is a display preference and survives clear")
}

func TestView_Apply(t *testing.T) {
	var list []domain.Property
	for i := 0; i < 30; i++ {
		city := "Pune"
		if i%3 == 0 {
			city = "Mumbai"
		}
		list = append(list, newProperty(fmt.Sprintf("Home %02d", i), city, int64(30-i)*100_000, 2))
	}

	v := catalog.NewView()
	v.SetFilters(domain.FilterSet{City: ptr("Mumbai")})
	v.SetSort(domain.SortPriceLow)
	require.True(t, v.SetItemsPerPage(9))

	res := v.Apply(list)
	assert.Equal(t, 10, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Items, 9)
	for i := 1; i < len(res.Items); i++ {
		assert.LessOrEqual(t, res.Items[i-1].Price, res.Items[i].Price)
	}
	assert.Equal(t, "1,2", render(res.PageNumbers))

	require.True(t, v.GoTo(2, res.TotalPages))
	res = v.Apply(list)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Page.Page)
}

func TestView_ApplyIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	list := randomCatalog(r, 70)

	v := catalog.NewView()
	v.SetSort(domain.SortFeatured)
	require.True(t, v.GoTo(3, 6))

	first := v.Apply(list)
	second := v.Apply(list)
	assert.Equal(t, ids(first.Items), ids(second.Items))
}
