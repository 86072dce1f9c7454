package menu

import (
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/category"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/sheet"
)

// Build folds raw rows into a fresh model and banner. It is a pure
// function of the row sequence: no state survives from earlier builds,
// and the banner starts cleared so a sheet without announcements also
// clears any previous one.
func Build(rows []sheet.Row) (*Model, Banner) {
	model := &Model{categories: map[category.Key]*Category{}}
	banner := Banner{}

	for _, row := range rows {
		outcome := Normalize(row)

		switch outcome.Kind {
		case OutcomeDiscard:
			continue

		case OutcomeAnnouncement:
			// Last announcement in source order wins.
			banner = Banner{Text: outcome.Banner, Visible: true}

		case OutcomeItem:
			key := outcome.Category
			cat := model.categories[key]
			if cat == nil {
				// Title freezes on the first row that creates the
				// category; later rows with a different raw label but
				// the same key never change it.
				title, ok := category.Title(key)
				if !ok {
					title = outcome.Item.Subcategory
				}
				cat = &Category{Key: key, Title: title}
				model.categories[key] = cat
				model.keys = append(model.keys, key)
			}
			cat.Items = append(cat.Items, outcome.Item)
		}
	}

	return model, banner
}
