package menu

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/category"
)

// preferredOrder pins the pour order of the alcolici subcategories.
// Labels in this list sort before everything else, in list position;
// the rest stays in locale order.
var preferredOrder = []string{
	"Aperitivi", "Cocktail", "Birre", "Vini", "Amari", "Liquori", "Grappe",
}

func preferredIndex(label string) int {
	for i, p := range preferredOrder {
		if label == p {
			return i
		}
	}
	return -1
}

// collator for the sheet's locale. collate.Collator is not safe for
// concurrent use, so each ordering call builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.Italian)
}

// OrderSubcategories dedupes the labels (case-sensitive identity) and
// returns them in display order: preference-list members first by list
// position, everything else after in locale-aware lexicographic order.
func OrderSubcategories(labels []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}

	col := newCollator()
	col.SortStrings(out)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := preferredIndex(out[i]), preferredIndex(out[j])
		switch {
		case a != -1 && b != -1:
			return a < b
		case a != -1:
			return true
		case b != -1:
			return false
		default:
			return false // locale order already established
		}
	})

	return out
}

// SuppressHeading reports whether a subcategory heading would be
// redundant and should not render: the label repeats the category
// title, or it is the "Bibite" group inside the fredde category. The
// items of the group still render either way.
func SuppressHeading(key category.Key, categoryTitle, label string) bool {
	if strings.EqualFold(label, categoryTitle) {
		return true
	}
	return key == category.Fredde && strings.EqualFold(label, "Bibite")
}
