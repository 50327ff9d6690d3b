package models

// Category is the closed set of menu sections.
type Category string

const (
	CategoryBurgers  Category = "hamburguesas"
	CategoryPizzas   Category = "pizzas"
	CategoryDrinks   Category = "bebidas"
	CategoryDesserts Category = "postres"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBurgers, CategoryPizzas, CategoryDrinks, CategoryDesserts:
		return true
	}
	return false
}

// CatalogItem is a static, orderable menu entry. Prices are whole pesos.
type CatalogItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Available   bool     `json:"available"`
}
