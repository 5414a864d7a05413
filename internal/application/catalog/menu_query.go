package catalog

import (
	"sort"
	"strings"

	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Pagination defaults
const (
	DefaultPage    = 1
	DefaultPerPage = 2
)

// MenuQuery is the parsed form of the menu collection query parameters.
// Parsing and validation happen at the HTTP boundary; by the time a
// MenuQuery reaches Apply it is well formed.
type MenuQuery struct {
	Category string
	ToPrice  *decimal.Decimal
	Search   string
	Ordering []string
	Page     int
	PerPage  int
}

// DefaultMenuQuery returns a query selecting the first default-sized page
func DefaultMenuQuery() MenuQuery {
	return MenuQuery{Page: DefaultPage, PerPage: DefaultPerPage}
}

// orderableFields is the closed set of recognized ordering fields.
// Anything else in the ordering parameter is ignored.
var orderableFields = map[string]struct{}{
	"price":           {},
	"inventory":       {},
	"title":           {},
	"category__title": {},
}

// Apply runs the filter -> search -> sort -> paginate pipeline over the
// full collection and returns one page.
//
// The category and to_price filters are mutually exclusive: when both are
// supplied only category takes effect. This mirrors the historically
// observed behavior and is pinned by a regression test; see DESIGN.md
// before changing it.
func Apply(items []catalog.MenuItem, q MenuQuery) []catalog.MenuItem {
	out := filter(items, q)
	out = search(out, q.Search)
	sortItems(out, q.Ordering)
	return paginate(out, q.Page, q.PerPage)
}

func filter(items []catalog.MenuItem, q MenuQuery) []catalog.MenuItem {
	out := make([]catalog.MenuItem, 0, len(items))
	switch {
	case q.Category != "":
		for _, it := range items {
			if it.Category != nil && it.Category.Title == q.Category {
				out = append(out, it)
			}
		}
	case q.ToPrice != nil:
		for _, it := range items {
			if it.Price.LessThanOrEqual(*q.ToPrice) {
				out = append(out, it)
			}
		}
	default:
		out = append(out, items...)
	}
	return out
}

// search keeps items whose title contains the substring, case-sensitive.
func search(items []catalog.MenuItem, term string) []catalog.MenuItem {
	if term == "" {
		return items
	}
	out := items[:0]
	for _, it := range items {
		if strings.Contains(it.Title, term) {
			out = append(out, it)
		}
	}
	return out
}

// sortItems stable-sorts by the recognized ordering fields, earlier
// fields taking precedence. A leading '-' reverses a field.
func sortItems(items []catalog.MenuItem, ordering []string) {
	fields := make([]string, 0, len(ordering))
	for _, f := range ordering {
		f = strings.TrimSpace(f)
		name := strings.TrimPrefix(f, "-")
		if _, ok := orderableFields[name]; ok {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		for _, f := range fields {
			desc := strings.HasPrefix(f, "-")
			switch c := compareField(&items[i], &items[j], strings.TrimPrefix(f, "-")); {
			case c < 0:
				return !desc
			case c > 0:
				return desc
			}
		}
		return false
	})
}

func compareField(a, b *catalog.MenuItem, field string) int {
	switch field {
	case "price":
		return a.Price.Cmp(b.Price)
	case "inventory":
		switch {
		case a.Inventory < b.Inventory:
			return -1
		case a.Inventory > b.Inventory:
			return 1
		}
		return 0
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "category__title":
		return strings.Compare(categoryTitle(a), categoryTitle(b))
	}
	return 0
}

func categoryTitle(m *catalog.MenuItem) string {
	if m.Category == nil {
		return ""
	}
	return m.Category.Title
}

// paginate slices the sequence into 1-based pages. A page past the end
// yields an empty result rather than an error.
func paginate(items []catalog.MenuItem, page, perPage int) []catalog.MenuItem {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []catalog.MenuItem{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
