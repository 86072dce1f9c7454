package menu

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/category"
)

// Item is a single sellable entry of the board. Values are immutable
// once built; a new ingest produces new items, never edits.
type Item struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Allergens   []string        `json:"allergens"`
	Tag         string          `json:"tag"`
	Subcategory string          `json:"subcategory"`
	SoldOut     bool            `json:"soldOut"`
}

// Category aggregates the items of one canonical key. Title is frozen
// when the category is first created during a build; items keep their
// source row order.
type Category struct {
	Key   category.Key `json:"key"`
	Title string       `json:"title"`
	Items []Item       `json:"items"`
}

// Banner is the announcement side-channel. At most one is active; the
// last qualifying AVVISO row of an ingest wins.
type Banner struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// Model is the fully built menu of one ingest. Categories appear only
// when at least one row produced them; keys preserves the order in
// which categories were first seen so queries stay deterministic.
type Model struct {
	categories map[category.Key]*Category
	keys       []category.Key
}

// Category returns the aggregate for a key, or nil when no row of the
// last ingest produced it. Absence is not an error.
func (m *Model) Category(key category.Key) *Category {
	if m == nil {
		return nil
	}
	return m.categories[key]
}

// Categories returns the model's categories in first-seen order.
func (m *Model) Categories() []*Category {
	if m == nil {
		return nil
	}
	out := make([]*Category, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.categories[k])
	}
	return out
}

// ItemCount is the total number of items across all categories.
func (m *Model) ItemCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m.categories {
		n += len(c.Items)
	}
	return n
}

// Snapshot is what one completed ingest publishes: the model, the
// banner, and enough metadata to identify the ingest in logs.
type Snapshot struct {
	Model     *Model
	Banner    Banner
	IngestID  string
	FetchedAt time.Time
	RowCount  int
}
