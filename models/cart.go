package models

// CartLine is a product in the cart with its quantity. Quantity is a float
// so catalog variants sold by volume can step in fractions of a unit.
type CartLine struct {
	Product
	Quantity float64 `json:"quantity"`
}

// Cart is the session cart. Totals are derived on read, never stored.
type Cart struct {
	Lines     []CartLine `json:"lines"`
	Total     float64    `json:"total"`
	ItemCount float64    `json:"item_count"`
}
