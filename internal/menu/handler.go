package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/category"
)

// failureNotice is the one user-visible message for transport-level
// failures; row-level problems never surface.
const failureNotice = "Impossibile caricare il menù. Controlla la connessione."

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// snapshotOr503 fetches the current snapshot, answering 503 with a
// notice when no ingest has succeeded yet.
func (h *Handler) snapshotOr503(c *gin.Context) (*Snapshot, bool) {
	snap := h.service.Snapshot()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": failureNotice})
		return nil, false
	}
	return snap, true
}

// --------------------------------------------------
// Full board
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return
	}

	categories := make([]gin.H, 0)
	for _, cat := range snap.Model.Categories() {
		categories = append(categories, gin.H{
			"key":    cat.Key,
			"title":  cat.Title,
			"groups": snap.Model.ByCategory(cat.Key),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"ingest_id":  snap.IngestID,
		"fetched_at": snap.FetchedAt,
		"banner":     snap.Banner,
		"categories": categories,
	})
}

// --------------------------------------------------
// One category, grouped by subcategory
// --------------------------------------------------
func (h *Handler) GetCategory(c *gin.Context) {
	key := category.Key(c.Param("key"))
	if !category.Valid(key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category key"})
		return
	}

	snap, ok := h.snapshotOr503(c)
	if !ok {
		return
	}

	title := ""
	if cat := snap.Model.Category(key); cat != nil {
		title = cat.Title
	} else if t, ok := category.Title(key); ok {
		title = t
	}

	groups := snap.Model.ByCategory(key)
	if groups == nil {
		groups = []Group{}
	}

	c.JSON(http.StatusOK, gin.H{
		"key":    key,
		"title":  title,
		"groups": groups,
	})
}

// --------------------------------------------------
// Search across all categories
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return
	}

	items, active := snap.Model.Search(c.Query("q"))
	if !active {
		// Empty query means no search at all; the frontend falls back
		// to the selected category view.
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	if items == nil {
		items = []Item{}
	}

	c.JSON(http.StatusOK, gin.H{
		"active":  true,
		"count":   len(items),
		"results": items,
	})
}

// --------------------------------------------------
// Banner
// --------------------------------------------------
func (h *Handler) GetBanner(c *gin.Context) {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snap.Banner)
}

// --------------------------------------------------
// Static render vocabulary
// --------------------------------------------------
func (h *Handler) GetVocabulary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"allergens":       Allergens(),
		"tag_badges":      TagBadges(),
		"category_titles": category.Titles(),
	})
}

// --------------------------------------------------
// Explicit reload trigger
// --------------------------------------------------
func (h *Handler) Reload(c *gin.Context) {
	snap, err := h.service.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": failureNotice})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingest_id":  snap.IngestID,
		"rows":       snap.RowCount,
		"items":      snap.Model.ItemCount(),
		"fetched_at": snap.FetchedAt,
	})
}
