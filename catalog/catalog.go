package catalog

import "github.com/DELMUS1M/SPARKLY-STORE/models"

// products is the static catalog. Immutable for the lifetime of the process.
var products = []models.Product{
	{ID: 1, Name: "Dish Soap", Price: 100, Image: "https://i.ibb.co/Gvx6DkS/dish-soap-new.png", Description: "Tough on grease, gentle on hands. Leaves your dishes sparkling clean."},
	{ID: 2, Name: "Bleach Liquid", Price: 100, Image: "https://i.ibb.co/0FDJvB4/bleach-new.png", Description: "Powerful whitening and disinfecting action for a hygienic home."},
	{ID: 3, Name: "Handwash Soap", Price: 100, Image: "https://i.ibb.co/pwnYJ8V/hand-soap-new.png", Description: "Moisturizing formula that cleanses without drying out your skin."},
	{ID: 4, Name: "Shampoo", Price: 100, Image: "https://i.ibb.co/Zmq9pZ9/shampoo-new.png", Description: "Nourishes your hair from root to tip, leaving it soft and shiny."},
	{ID: 5, Name: "Perfumed Laundry Soap", Price: 260, Image: "https://i.ibb.co/QcY9XWq/laundry-new.png", Description: "Infuses your laundry with a long-lasting, delightful fragrance."},
	{ID: 6, Name: "Kerol Disinfectant", Price: 100, Image: "https://i.ibb.co/Wc6Kx7v/disinfectant-new.png", Description: "A powerful, all-purpose disinfectant for floors and surfaces."},
	{ID: 7, Name: "Stain Remover", Price: 100, Image: "https://i.ibb.co/hY14tXb/stain-remover-new.png", Description: "Targets and eliminates tough stains from fabrics effectively."},
}

// All returns every product in catalog order.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Featured returns the products highlighted on the home page.
func Featured() []models.Product {
	n := 4
	if len(products) < n {
		n = len(products)
	}
	out := make([]models.Product, n)
	copy(out, products[:n])
	return out
}

// ByID looks up a product by id.
func ByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
