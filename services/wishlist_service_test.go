package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistToggle_DoubleToggleRestoresState(t *testing.T) {
	svc := NewWishlistService()
	sess := newTestSession()

	in, appErr := svc.Toggle(sess, 2)
	require.Nil(t, appErr)
	assert.True(t, in)

	in, appErr = svc.Toggle(sess, 2)
	require.Nil(t, appErr)
	assert.False(t, in)
	assert.Empty(t, svc.List(sess))
}

func TestWishlistToggle_UnknownProduct(t *testing.T) {
	svc := NewWishlistService()
	sess := newTestSession()

	_, appErr := svc.Toggle(sess, 999)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestWishlistList_ResolvesProducts(t *testing.T) {
	svc := NewWishlistService()
	sess := newTestSession()

	svc.Toggle(sess, 5)
	svc.Toggle(sess, 1)

	products := svc.List(sess)
	require.Len(t, products, 2)
	// Catalog order, regardless of toggle order
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 5, products[1].ID)
}
