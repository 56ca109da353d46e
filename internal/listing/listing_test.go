package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Name  string
	Price float64
}

func names(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	items := []item{{Name: "Ana"}, {Name: "Anamarija"}, {Name: "Boris"}}

	got := Search(items, "ana", func(i item) string { return i.Name })

	assert.Equal(t, []string{"Ana", "Anamarija"}, names(got))
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	items := []item{{Name: "Ana"}, {Name: "Boris"}}

	assert.Len(t, Search(items, "", func(i item) string { return i.Name }), 2)
	assert.Len(t, Search(items, "   ", func(i item) string { return i.Name }), 2)
}

func TestSearchTrimsQueryAndValue(t *testing.T) {
	items := []item{{Name: "  Ana  "}}

	got := Search(items, " ANA ", func(i item) string { return i.Name })

	assert.Len(t, got, 1)
}

func TestFilterComposesWithSearch(t *testing.T) {
	items := []item{
		{Name: "Ana", Price: 10},
		{Name: "Anamarija", Price: 30},
		{Name: "Boris", Price: 30},
	}

	searched := Search(items, "ana", func(i item) string { return i.Name })
	got := Filter(searched, func(i item) bool { return i.Price == 30 })

	// Arama VE kategorik filtre birlikte uygulanır, birbirini ezmez.
	assert.Equal(t, []string{"Anamarija"}, names(got))
}

func TestOrderByAscDesc(t *testing.T) {
	items := []item{{Name: "a", Price: 20}, {Name: "b", Price: 10}, {Name: "c", Price: 30}}
	less := func(a, b item) bool { return a.Price < b.Price }

	asc := OrderBy(items, less, false)
	desc := OrderBy(items, less, true)

	assert.Equal(t, []string{"b", "a", "c"}, names(asc))
	assert.Equal(t, []string{"c", "a", "b"}, names(desc))
	// Girdi değişmemeli
	assert.Equal(t, []string{"a", "b", "c"}, names(items))
}

func TestOrderByStable(t *testing.T) {
	items := []item{{Name: "x", Price: 10}, {Name: "y", Price: 10}, {Name: "z", Price: 5}}

	got := OrderBy(items, func(a, b item) bool { return a.Price < b.Price }, false)

	assert.Equal(t, []string{"z", "x", "y"}, names(got))
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := make([]item, 12)
	for i := range items {
		items[i] = item{Name: fmt.Sprintf("m%d", i)}
	}

	page := Paginate(items, 3, 5)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, "m10", page.Items[0].Name)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 3, page.PageCount)
}

func TestPaginateBeyondLastPageIsEmpty(t *testing.T) {
	items := make([]item, 12)

	page := Paginate(items, 10, 5)

	assert.Empty(t, page.Items)
	assert.Equal(t, 12, page.Total)
}

func TestPaginateDefaultsInvalidPageToFirst(t *testing.T) {
	items := []item{{Name: "a"}, {Name: "b"}}

	page := Paginate(items, 0, 5)

	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 2)
}

func TestPaginateEmptyList(t *testing.T) {
	page := Paginate([]item{}, 1, 3)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.PageCount)
}
