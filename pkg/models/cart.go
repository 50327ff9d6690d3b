package models

// CartLine is a quantified, possibly-annotated catalog item in the
// in-progress order. A cart holds at most one line per catalog item id.
type CartLine struct {
	CatalogItem
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() int {
	return l.Price * l.Quantity
}
