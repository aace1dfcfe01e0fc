package services

import (
	"fmt"

	"github.com/DELMUS1M/SPARKLY-STORE/catalog"
	apperrors "github.com/DELMUS1M/SPARKLY-STORE/errors"
)

// SharePayload is what the clipboard/share-sheet collaborator receives.
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// ShareService builds share payloads for products.
type ShareService struct {
	baseURL string
}

func NewShareService(baseURL string) *ShareService {
	return &ShareService{baseURL: baseURL}
}

// ForProduct returns the share payload for a product page.
func (s *ShareService) ForProduct(productID int) (SharePayload, *apperrors.Error) {
	product, ok := catalog.ByID(productID)
	if !ok {
		return SharePayload{}, apperrors.ErrNotFound
	}

	return SharePayload{
		Title: product.Name,
		Text:  product.Description,
		URL:   fmt.Sprintf("%s/products/%d", s.baseURL, product.ID),
	}, nil
}
