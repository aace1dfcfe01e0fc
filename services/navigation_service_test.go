package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
)

func TestNavigate_ProductDetail(t *testing.T) {
	svc := NewNavigationService()
	sess := newTestSession()

	view, appErr := svc.Navigate(sess, models.PageProductDetail, 3)
	require.Nil(t, appErr)
	assert.Equal(t, models.PageProductDetail, view.Page)
	assert.Equal(t, 3, view.SelectedProductID)
}

func TestNavigate_UnknownProductRedirectsToListing(t *testing.T) {
	svc := NewNavigationService()
	sess := newTestSession()

	view, appErr := svc.Navigate(sess, models.PageProductDetail, 999)
	require.Nil(t, appErr)
	assert.Equal(t, models.PageProducts, view.Page)
	assert.Zero(t, view.SelectedProductID)
}

func TestNavigate_LeavingDetailClearsSelection(t *testing.T) {
	svc := NewNavigationService()
	sess := newTestSession()

	svc.Navigate(sess, models.PageProductDetail, 2)
	view, appErr := svc.Navigate(sess, models.PageHome, 0)
	require.Nil(t, appErr)
	assert.Equal(t, models.PageHome, view.Page)
	assert.Zero(t, view.SelectedProductID)
}

func TestNavigate_UnknownPage(t *testing.T) {
	svc := NewNavigationService()
	sess := newTestSession()

	_, appErr := svc.Navigate(sess, "checkout-success", 0)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestView_BadgeCounts(t *testing.T) {
	nav := NewNavigationService()
	cart := newTestCartService()
	wishlist := NewWishlistService()
	sess := newTestSession()

	cart.Add(sess, 1)
	cart.Add(sess, 1)
	cart.Add(sess, 2)
	wishlist.Toggle(sess, 3)

	view := nav.View(sess)
	assert.Equal(t, 3.0, view.CartItemCount)
	assert.Equal(t, 1, view.WishlistCount)
}
