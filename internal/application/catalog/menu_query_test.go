package catalog

import (
	"testing"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id uint, title, price string, inventory int, category string) catalog.MenuItem {
	item := catalog.MenuItem{
		Title:     title,
		Price:     decimal.RequireFromString(price),
		Inventory: inventory,
	}
	item.ID = id
	if category != "" {
		item.Category = &catalog.Category{Title: category}
	}
	return item
}

func sampleMenu() []catalog.MenuItem {
	return []catalog.MenuItem{
		menuItem(1, "Greek Salad", "12.50", 10, "Appetizers"),
		menuItem(2, "Bruschetta", "8.00", 5, "Appetizers"),
		menuItem(3, "Lemon Dessert", "5.00", 20, "Desserts"),
		menuItem(4, "Grilled Fish", "20.00", 3, "Mains"),
		menuItem(5, "Pasta", "12.50", 8, "Mains"),
	}
}

func titles(items []catalog.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestApply_CategoryFilter(t *testing.T) {
	q := MenuQuery{Category: "Appetizers", Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Greek Salad", "Bruschetta"}, titles(got))
}

func TestApply_ToPriceIsInclusive(t *testing.T) {
	toPrice := decimal.RequireFromString("12.50")
	q := MenuQuery{ToPrice: &toPrice, Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Greek Salad", "Bruschetta", "Lemon Dessert", "Pasta"}, titles(got))
}

func TestApply_CategoryTakesPrecedenceOverToPrice(t *testing.T) {
	// with both filters supplied only category applies
	toPrice := decimal.RequireFromString("9.00")
	q := MenuQuery{Category: "Appetizers", ToPrice: &toPrice, Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Greek Salad", "Bruschetta"}, titles(got))
}

func TestApply_SearchIsCaseSensitive(t *testing.T) {
	q := MenuQuery{Search: "Gr", Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Greek Salad", "Grilled Fish"}, titles(got))

	q.Search = "gr"
	got = Apply(sampleMenu(), q)
	assert.Empty(t, got)
}

func TestApply_OrderingPriceThenTitle(t *testing.T) {
	q := MenuQuery{Ordering: []string{"price", "title"}, Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)

	require.Len(t, got, 5)
	// non-decreasing in price; Greek Salad before Pasta at equal price
	assert.Equal(t, []string{"Lemon Dessert", "Bruschetta", "Greek Salad", "Pasta", "Grilled Fish"}, titles(got))
}

func TestApply_OrderingDescending(t *testing.T) {
	q := MenuQuery{Ordering: []string{"-inventory"}, Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Lemon Dessert", "Greek Salad", "Pasta", "Bruschetta", "Grilled Fish"}, titles(got))
}

func TestApply_OrderingByCategoryTitle(t *testing.T) {
	q := MenuQuery{Ordering: []string{"category__title", "title"}, Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Bruschetta", "Greek Salad", "Lemon Dessert", "Grilled Fish", "Pasta"}, titles(got))
}

func TestApply_OrderingIgnoresUnknownFields(t *testing.T) {
	q := MenuQuery{Ordering: []string{"bogus", "price"}, Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, "Lemon Dessert", got[0].Title)
}

func TestApply_OrderingIsStable(t *testing.T) {
	// equal prices keep their original relative order
	q := MenuQuery{Ordering: []string{"price"}, Page: 1, PerPage: 10}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Lemon Dessert", "Bruschetta", "Greek Salad", "Pasta", "Grilled Fish"}, titles(got))
}

func TestApply_Pagination(t *testing.T) {
	q := MenuQuery{Page: 3, PerPage: 2}
	got := Apply(sampleMenu(), q)
	require.Len(t, got, 1)
	assert.Equal(t, "Pasta", got[0].Title)
}

func TestApply_PageBeyondRangeIsEmpty(t *testing.T) {
	q := MenuQuery{Page: 4, PerPage: 2}
	got := Apply(sampleMenu(), q)
	assert.Empty(t, got)
}

func TestApply_DefaultPageSize(t *testing.T) {
	got := Apply(sampleMenu(), DefaultMenuQuery())
	assert.Equal(t, []string{"Greek Salad", "Bruschetta"}, titles(got))
}

func TestApply_FullPipeline(t *testing.T) {
	// filter, search, sort and paginate compose in that order
	toPrice := decimal.RequireFromString("15.00")
	q := MenuQuery{
		ToPrice:  &toPrice,
		Search:   "a",
		Ordering: []string{"-price"},
		Page:     1,
		PerPage:  2,
	}
	got := Apply(sampleMenu(), q)
	assert.Equal(t, []string{"Greek Salad", "Pasta"}, titles(got))
}
