package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// Get returns the cart with derived total and item count.
func (cc *CartController) Get(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, cc.Cart.Get(sess))
}

// AddItem adds one step of a product to the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sess := middleware.GetSession(c)
	cart, appErr := cc.Cart.Add(sess, req.ProductID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateQuantity sets a line's quantity. A payload that does not parse as a
// number counts as zero, which removes the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req struct {
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Quantity = 0
	}

	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, cc.Cart.SetQuantity(sess, productID, req.Quantity))
}

// Clear empties the cart.
func (cc *CartController) Clear(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, cc.Cart.Clear(sess))
}
