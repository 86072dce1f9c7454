package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KeywordGroups(t *testing.T) {
	cases := []struct {
		label string
		want  Key
	}{
		{"Caffetteria", Calde},
		{"Bevande Calde", Calde},
		{"Tè e Tisane", Calde},
		{"Bibite", Fredde},
		{"Succhi di frutta", Fredde},
		{"Acqua", Fredde},
		{"Vini", Alcolici},
		{"Birre artigianali", Alcolici},
		{"Amari", Alcolici},
		{"Spritz", Alcolici},
		{"Grappe", Alcolici},
		{"Panini", Food},
		{"Taglieri", Food},
		{"Focacce", Food},
		{"Dolci", Dolci},
		{"Gelato", Dolci},
		{"Torte", Dolci},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.label), "label %q", tc.label)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Alcolici, Classify("COCKTAIL"))
	assert.Equal(t, Calde, Classify("cAfFè"))
}

func TestClassify_FirstGroupWins(t *testing.T) {
	// Contains both "cald" and "vin"; the calde group is tested first.
	assert.Equal(t, Calde, Classify("Vino Rosso Caldo"))
}

func TestClassify_UnmatchedFallsToAltro(t *testing.T) {
	assert.Equal(t, Altro, Classify("Merchandising"))
	assert.Equal(t, Altro, Classify(""))
}

func TestTitle_CanonicalTable(t *testing.T) {
	want := map[Key]string{
		Calde:    "Caffetteria",
		Fredde:   "Bibite Fredde",
		Alcolici: "Alcolici",
		Food:     "Food & Snack",
		Dolci:    "Dolci & Dessert",
		Altro:    "Altro",
	}
	for k, title := range want {
		got, ok := Title(k)
		assert.True(t, ok)
		assert.Equal(t, title, got)
	}
}
