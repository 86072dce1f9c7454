package category

// Display titles for the canonical keys. Categories created from a key
// outside this table (never the case today) fall back to the raw label
// of the row that created them.
var titles = map[Key]string{
	Calde:    "Caffetteria",
	Fredde:   "Bibite Fredde",
	Alcolici: "Alcolici",
	Food:     "Food & Snack",
	Dolci:    "Dolci & Dessert",
	Altro:    "Altro",
}

// Title returns the canonical display title for a key.
func Title(k Key) (string, bool) {
	t, ok := titles[k]
	return t, ok
}

// Titles returns a copy of the full key→title table, used by the
// vocabulary endpoint so the frontend never hardcodes titles.
func Titles() map[Key]string {
	out := make(map[Key]string, len(titles))
	for k, t := range titles {
		out[k] = t
	}
	return out
}
