package models

// Review is a customer review for a product. Date is pre-formatted for
// display, matching what the storefront renders.
type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// ProductReview pairs a review with the product it was written for, used by
// the "my reviews" listing.
type ProductReview struct {
	Product Product `json:"product"`
	Review  Review  `json:"review"`
}
