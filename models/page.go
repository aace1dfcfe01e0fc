package models

// Page identifies a storefront view. Navigation state is presentational; the
// service tracks it so checkout can resume where an anonymous user left off.
type Page string

const (
	PageHome          Page = "home"
	PageProducts      Page = "products"
	PageProductDetail Page = "productDetail"
	PageAbout         Page = "about"
	PageContact       Page = "contact"
	PageCart          Page = "cart"
	PageWishlist      Page = "wishlist"
	PageAccount       Page = "account"
	PageOrderHistory  Page = "orderHistory"
	PageMyReviews     Page = "myReviews"
)

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageProducts, PageProductDetail, PageAbout, PageContact,
		PageCart, PageWishlist, PageAccount, PageOrderHistory, PageMyReviews:
		return true
	}
	return false
}
