package menu

// Allergen is one entry of the render vocabulary: the icon and label
// shown for an allergen code. Codes missing from the vocabulary are
// valid on items but render nothing.
type Allergen struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

var allergenVocabulary = map[string]Allergen{
	"latte":   {Icon: "🥛", Label: "Latte"},
	"glutine": {Icon: "🌾", Label: "Glutine"},
	"uova":    {Icon: "🥚", Label: "Uova"},
	"guscio":  {Icon: "🥜", Label: "Frutta a guscio"},
	"sedano":  {Icon: "🌿", Label: "Sedano"},
}

// AllergenInfo resolves an allergen code to its display entry.
func AllergenInfo(code string) (Allergen, bool) {
	a, ok := allergenVocabulary[code]
	return a, ok
}

// Allergens returns a copy of the allergen vocabulary.
func Allergens() map[string]Allergen {
	out := make(map[string]Allergen, len(allergenVocabulary))
	for code, a := range allergenVocabulary {
		out[code] = a
	}
	return out
}

// Badge labels for the item tag field. Unrecognized tags pass through
// the model but get no badge.
var tagBadges = map[string]string{
	"new": "Novità",
	"hot": "Top",
}

// TagBadge resolves a tag to its badge label.
func TagBadge(tag string) (string, bool) {
	label, ok := tagBadges[tag]
	return label, ok
}

// TagBadges returns a copy of the tag→badge table.
func TagBadges() map[string]string {
	out := make(map[string]string, len(tagBadges))
	for tag, label := range tagBadges {
		out[tag] = label
	}
	return out
}
