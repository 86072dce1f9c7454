package sheet

import "strings"

// Row is a single record of the published sheet, keyed by header name.
// Values are always stored trimmed; Get trims again so lookups stay
// safe even for rows built by hand in tests.
type Row map[string]string

// Get returns the trimmed value of a column, or "" when the column is
// missing from the row.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// Columns consumed by the menu pipeline. Everything else in the sheet
// is ignored.
const (
	ColCategoria   = "categoria"
	ColNome        = "nome"
	ColPrezzo      = "prezzo"
	ColDescrizione = "descrizione"
	ColAllergeni   = "allergeni"
	ColTag         = "tag"
	ColDisponibile = "disponibile"
)
