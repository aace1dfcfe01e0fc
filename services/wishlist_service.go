package services

import (
	"github.com/DELMUS1M/SPARKLY-STORE/catalog"
	apperrors "github.com/DELMUS1M/SPARKLY-STORE/errors"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

// WishlistService owns wishlist membership. The wishlist is a set; order is
// not meaningful.
type WishlistService struct{}

func NewWishlistService() *WishlistService {
	return &WishlistService{}
}

// Toggle flips membership for the product and reports whether it is now in
// the wishlist. Toggling twice restores the original state.
func (s *WishlistService) Toggle(sess *session.Session, productID int) (bool, *apperrors.Error) {
	if _, ok := catalog.ByID(productID); !ok {
		return false, apperrors.ErrNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Wishlist[productID] {
		delete(sess.Wishlist, productID)
		return false, nil
	}
	sess.Wishlist[productID] = true
	return true, nil
}

// List resolves the wishlist against the catalog, in catalog order.
func (s *WishlistService) List(sess *session.Session) []models.Product {
	sess.Lock()
	defer sess.Unlock()

	out := []models.Product{}
	for _, p := range catalog.All() {
		if sess.Wishlist[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// wishlistCount is the badge value. Caller holds the lock.
func wishlistCount(sess *session.Session) int {
	return len(sess.Wishlist)
}
