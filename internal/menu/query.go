package menu

import (
	"strings"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/category"
)

// Group is one rendered bucket of a category view: a heading label
// (empty when the bucket is unlabelled or the heading is suppressed)
// and its items in source row order.
type Group struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// ByCategory returns the items of one category partitioned for
// display. A single distinct subcategory renders as one flat unlabeled
// bucket; multiple subcategories are partitioned in sorter order, with
// redundant headings blanked. An absent category yields no groups.
func (m *Model) ByCategory(key category.Key) []Group {
	cat := m.Category(key)
	if cat == nil {
		return nil
	}

	labels := make([]string, 0, len(cat.Items))
	for _, item := range cat.Items {
		labels = append(labels, item.Subcategory)
	}
	ordered := OrderSubcategories(labels)

	if len(ordered) <= 1 {
		return []Group{{Items: cat.Items}}
	}

	groups := make([]Group, 0, len(ordered))
	for _, label := range ordered {
		var items []Item
		for _, item := range cat.Items {
			if item.Subcategory == label {
				items = append(items, item)
			}
		}

		heading := label
		if SuppressHeading(key, cat.Title, label) {
			heading = ""
		}
		groups = append(groups, Group{Label: heading, Items: items})
	}

	return groups
}

// Search matches the query case-insensitively against item names
// across every category, in category-first-seen then row order. An
// empty or whitespace-only query means "no active search": the second
// return is false and the caller falls back to the selected category
// view instead of showing zero results.
func (m *Model) Search(query string) ([]Item, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}

	var matches []Item
	for _, cat := range m.Categories() {
		for _, item := range cat.Items {
			if strings.Contains(strings.ToLower(item.Name), q) {
				matches = append(matches, item)
			}
		}
	}
	return matches, true
}
