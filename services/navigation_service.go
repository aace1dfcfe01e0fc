package services

import (
	"github.com/DELMUS1M/SPARKLY-STORE/catalog"
	apperrors "github.com/DELMUS1M/SPARKLY-STORE/errors"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

// ViewState is the presentational snapshot the storefront renders from.
type ViewState struct {
	Page              models.Page  `json:"page"`
	SelectedProductID int          `json:"selected_product_id,omitempty"`
	CartItemCount     float64      `json:"cart_item_count"`
	WishlistCount     int          `json:"wishlist_count"`
	Authenticated     bool         `json:"authenticated"`
	User              *models.User `json:"user,omitempty"`
}

// NavigationService tracks the current page and selected product.
type NavigationService struct{}

func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

// Navigate moves to a page. Selecting a product that no longer resolves in
// the catalog silently redirects to the products listing instead of failing.
func (s *NavigationService) Navigate(sess *session.Session, page models.Page, productID int) (ViewState, *apperrors.Error) {
	if !page.Valid() {
		return ViewState{}, apperrors.ErrInvalidInput
	}

	sess.Lock()
	defer sess.Unlock()

	if page == models.PageProductDetail {
		if _, ok := catalog.ByID(productID); !ok {
			sess.CurrentPage = models.PageProducts
			sess.SelectedProductID = 0
			return viewState(sess), nil
		}
		sess.SelectedProductID = productID
	} else {
		sess.SelectedProductID = 0
	}
	sess.CurrentPage = page
	return viewState(sess), nil
}

// View returns the current view state.
func (s *NavigationService) View(sess *session.Session) ViewState {
	sess.Lock()
	defer sess.Unlock()
	return viewState(sess)
}

// viewState snapshots the session for rendering. Caller holds the lock.
func viewState(sess *session.Session) ViewState {
	return ViewState{
		Page:              sess.CurrentPage,
		SelectedProductID: sess.SelectedProductID,
		CartItemCount:     CartItemCount(sess.Cart),
		WishlistCount:     wishlistCount(sess),
		Authenticated:     sess.Authenticated(),
		User:              sess.User,
	}
}
