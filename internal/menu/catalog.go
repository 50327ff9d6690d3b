package menu

import (
	"github.com/restoadmin/ordering/pkg/models"
)

// Catalog is the static menu. It is seeded once and never mutated, so
// reads need no locking.
type Catalog struct {
	items []models.CatalogItem
	byID  map[string]models.CatalogItem
}

func NewCatalog(items []models.CatalogItem) *Catalog {
	byID := make(map[string]models.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Catalog{items: items, byID: byID}
}

// Items returns every menu entry in menu order.
func (c *Catalog) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory filters the menu. An empty category or "all" returns everything.
func (c *Catalog) ByCategory(category models.Category) []models.CatalogItem {
	if category == "" || category == "all" {
		return c.Items()
	}
	out := make([]models.CatalogItem, 0)
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Get(id string) (models.CatalogItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}
