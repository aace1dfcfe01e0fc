package models

// Address is a saved shipping address. At most one address in a list is the
// default, and exactly one whenever the list is non-empty.
type Address struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Street         string `json:"street"`
	City           string `json:"city"`
	Country        string `json:"country"`
	GoogleMapsLink string `json:"google_maps_link,omitempty"`
	IsDefault      bool   `json:"is_default"`
}
