package models

// Sale is an immutable record of a completed (simulated) purchase. Items are
// a snapshot of the cart lines at the moment of payment.
type Sale struct {
	ID    string     `json:"id"`
	Items []CartLine `json:"items"`
	Date  string     `json:"date"`
	Total float64    `json:"total"`
}
