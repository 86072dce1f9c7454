package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/category"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/sheet"
)

func rows(rr ...sheet.Row) []sheet.Row { return rr }

func TestBuild_GroupsByCanonicalCategory(t *testing.T) {
	model, _ := Build(rows(
		itemRow("Caffetteria", "Espresso"),
		itemRow("Bibite", "Acqua"),
		itemRow("Tè e Tisane", "Tè verde"),
	))

	calde := model.Category(category.Calde)
	require.NotNil(t, calde)
	require.Len(t, calde.Items, 2)
	assert.Equal(t, "Espresso", calde.Items[0].Name)
	assert.Equal(t, "Tè verde", calde.Items[1].Name)

	fredde := model.Category(category.Fredde)
	require.NotNil(t, fredde)
	assert.Len(t, fredde.Items, 1)

	assert.Nil(t, model.Category(category.Dolci))
	assert.Equal(t, 3, model.ItemCount())
}

func TestBuild_CategoryOrderIsFirstSeen(t *testing.T) {
	model, _ := Build(rows(
		itemRow("Dolci", "Tiramisù"),
		itemRow("Caffetteria", "Espresso"),
		itemRow("Torte", "Crostata"),
	))

	cats := model.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, category.Dolci, cats[0].Key)
	assert.Equal(t, category.Calde, cats[1].Key)
}

func TestBuild_TitleFromCanonicalTable(t *testing.T) {
	model, _ := Build(rows(itemRow("Succhi", "Succo ACE")))
	assert.Equal(t, "Bibite Fredde", model.Category(category.Fredde).Title)
}

func TestBuild_TitleFreezesOnFirstRow(t *testing.T) {
	// Both labels classify to fredde; the title comes from the
	// canonical table on first creation and later rows never change it.
	model, _ := Build(rows(
		itemRow("Bibite", "Acqua"),
		itemRow("Succhi di frutta", "Succo ACE"),
	))

	fredde := model.Category(category.Fredde)
	require.NotNil(t, fredde)
	assert.Equal(t, "Bibite Fredde", fredde.Title)
	assert.Len(t, fredde.Items, 2)
}

func TestBuild_BannerLastAnnouncementWins(t *testing.T) {
	festa := itemRow("AVVISO", "Festa")
	festa[sheet.ColDescrizione] = "Sconti 10%"

	_, banner := Build(rows(
		itemRow("AVVISO", "Chiuso lunedì"),
		itemRow("Caffetteria", "Espresso"),
		festa,
	))

	assert.True(t, banner.Visible)
	assert.Equal(t, "Festa - Sconti 10%", banner.Text)
}

func TestBuild_NoAnnouncementMeansHiddenBanner(t *testing.T) {
	_, banner := Build(rows(itemRow("Caffetteria", "Espresso")))
	assert.False(t, banner.Visible)
	assert.Empty(t, banner.Text)
}

func TestBuild_SuppressedAnnouncementLeavesBannerHidden(t *testing.T) {
	avviso := itemRow("AVVISO", "Promo vecchia")
	avviso[sheet.ColDisponibile] = "no"

	_, banner := Build(rows(avviso))
	assert.False(t, banner.Visible)
}

func TestBuild_ExcludedRowsNeverAppear(t *testing.T) {
	hidden := itemRow("Bibite", "Fuori stagione")
	hidden[sheet.ColDisponibile] = "NO"

	model, _ := Build(rows(
		itemRow("Bibite", "Acqua"),
		hidden,
	))

	fredde := model.Category(category.Fredde)
	require.Len(t, fredde.Items, 1)
	assert.Equal(t, "Acqua", fredde.Items[0].Name)
}

func TestBuild_IsAPureFold(t *testing.T) {
	input := rows(
		itemRow("Caffetteria", "Espresso"),
		itemRow("Bibite", "Acqua"),
		itemRow("AVVISO", "Chiuso lunedì"),
	)

	m1, b1 := Build(input)
	m2, b2 := Build(input)

	assert.Equal(t, b1, b2)
	require.Len(t, m2.Categories(), len(m1.Categories()))
	for i, c1 := range m1.Categories() {
		c2 := m2.Categories()[i]
		assert.Equal(t, c1.Key, c2.Key)
		assert.Equal(t, c1.Title, c2.Title)
		assert.Equal(t, c1.Items, c2.Items)
	}
}
