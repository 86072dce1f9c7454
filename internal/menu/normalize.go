package menu

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/category"
	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/sheet"
)

// OutcomeKind says what a raw row turned into.
type OutcomeKind int

const (
	// OutcomeDiscard drops the row entirely: missing required fields,
	// or hard-excluded by the availability flag.
	OutcomeDiscard OutcomeKind = iota
	// OutcomeAnnouncement is a banner message, not a sellable item.
	OutcomeAnnouncement
	// OutcomeItem is a normal menu item plus its canonical category.
	OutcomeItem
)

// Outcome is the result of normalizing one raw row. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Outcome struct {
	Kind     OutcomeKind
	Item     Item
	Category category.Key
	Banner   string
}

// unavailable reports the hard-exclusion availability tokens. Distinct
// from sold-out, which still renders but greyed out.
func unavailable(disponibile string) bool {
	v := strings.ToLower(disponibile)
	return v == "no" || v == "false"
}

// Normalize cleans a single raw row into an item, an announcement, or
// a discard. It never fails: malformed rows degrade to a discard or to
// safe defaults rather than aborting the ingest.
func Normalize(row sheet.Row) Outcome {
	categoria := row.Get(sheet.ColCategoria)
	nome := row.Get(sheet.ColNome)
	if categoria == "" || nome == "" {
		return Outcome{Kind: OutcomeDiscard}
	}

	disponibile := row.Get(sheet.ColDisponibile)

	// AVVISO rows feed the banner instead of the menu. An unavailable
	// announcement is suppressed entirely, not merely hidden.
	if strings.Contains(strings.ToUpper(categoria), "AVVISO") {
		if unavailable(disponibile) {
			return Outcome{Kind: OutcomeDiscard}
		}
		text := nome
		if descrizione := row.Get(sheet.ColDescrizione); descrizione != "" {
			text = nome + " - " + descrizione
		}
		return Outcome{Kind: OutcomeAnnouncement, Banner: text}
	}

	if unavailable(disponibile) {
		return Outcome{Kind: OutcomeDiscard}
	}

	item := Item{
		Name:        nome,
		Price:       parsePrice(row.Get(sheet.ColPrezzo)),
		Description: row.Get(sheet.ColDescrizione),
		Allergens:   parseAllergens(row.Get(sheet.ColAllergeni)),
		Tag:         row.Get(sheet.ColTag),
		// Verbatim label, case preserved: it doubles as the
		// subcategory heading inside the canonical category.
		Subcategory: categoria,
		// Exact, case-sensitive match, unlike the no/false checks
		// above. The sheet convention spells it lower-case.
		SoldOut: disponibile == "soldout",
	}

	return Outcome{
		Kind:     OutcomeItem,
		Item:     item,
		Category: category.Classify(categoria),
	}
}

// parsePrice reads a comma-decimal price string. Anything unparseable
// or negative becomes zero; a bad price is never a reason to lose the
// row.
func parsePrice(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil || price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// parseAllergens splits the comma-separated allergen codes, trimmed
// and lower-cased. Unknown codes are kept here; the vocabulary simply
// won't render them.
func parseAllergens(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		codes = append(codes, strings.ToLower(strings.TrimSpace(p)))
	}
	return codes
}
