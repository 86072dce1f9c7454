package category

import "strings"

// Key is one of the six canonical category buckets the board groups by.
// Raw sheet labels are free text; Classify maps them onto a Key.
type Key string

const (
	Calde    Key = "calde"
	Fredde   Key = "fredde"
	Alcolici Key = "alcolici"
	Food     Key = "food"
	Dolci    Key = "dolci"
	Altro    Key = "altro"
)

// Keys in display order, matching the tab order on the board.
var Keys = []Key{Calde, Fredde, Alcolici, Food, Dolci, Altro}

// Valid reports whether k is one of the canonical keys.
func Valid(k Key) bool {
	switch k {
	case Calde, Fredde, Alcolici, Food, Dolci, Altro:
		return true
	}
	return false
}

// rule is one step of the classification cascade. Order matters:
// "Vino Rosso Caldo" contains both "cald" and "vin" and must land in
// calde because that group is tested first.
type rule struct {
	key      Key
	keywords []string
}

var cascade = []rule{
	{Calde, []string{"caff", "cald", "tè", "tisane"}},
	{Fredde, []string{"fredd", "bibit", "succh", "acqu"}},
	{Alcolici, []string{"alcol", "vin", "birr", "cocktail", "amar", "spritz", "liquor", "grap"}},
	{Food, []string{"cib", "food", "panin", "snack", "taglier", "focacc"}},
	{Dolci, []string{"dolc", "dessert", "gelat", "tort"}},
}

// Classify maps a raw category label to its canonical key. Matching is
// substring-based on the lower-cased label, first group wins, and every
// label classifies: anything unmatched falls into Altro.
func Classify(rawLabel string) Key {
	label := strings.ToLower(rawLabel)
	for _, r := range cascade {
		for _, kw := range r.keywords {
			if strings.Contains(label, kw) {
				return r.key
			}
		}
	}
	return Altro
}
