package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type WishlistController struct {
	Wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{Wishlist: wishlist}
}

// Toggle flips wishlist membership for a product.
func (wc *WishlistController) Toggle(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sess := middleware.GetSession(c)
	inWishlist, appErr := wc.Wishlist.Toggle(sess, req.ProductID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": req.ProductID, "in_wishlist": inWishlist})
}

// Get lists the wishlisted products.
func (wc *WishlistController) Get(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, wc.Wishlist.List(sess))
}
