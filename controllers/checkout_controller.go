package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

// Initiate opens the payment flow. Anonymous users get redirected to the
// account page and no payment starts.
func (cc *CheckoutController) Initiate(c *gin.Context) {
	sess := middleware.GetSession(c)

	info, appErr := cc.Checkout.Initiate(sess)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, info)
}

// Pay runs the first payment phase for the chosen method.
func (cc *CheckoutController) Pay(c *gin.Context) {
	var req struct {
		Method models.PaymentMethod `json:"method" binding:"required"`
		Phone  string               `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sess := middleware.GetSession(c)
	result, appErr := cc.Checkout.Pay(c.Request.Context(), sess, req.Method, req.Phone)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Confirm runs the second M-Pesa phase.
func (cc *CheckoutController) Confirm(c *gin.Context) {
	sess := middleware.GetSession(c)

	result, appErr := cc.Checkout.Confirm(c.Request.Context(), sess)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Close dismisses the payment modal.
func (cc *CheckoutController) Close(c *gin.Context) {
	sess := middleware.GetSession(c)
	cc.Checkout.Close(sess)
	c.JSON(http.StatusOK, gin.H{"message": "payment closed"})
}

// Confirmation returns the sale awaiting its confirmation view.
func (cc *CheckoutController) Confirmation(c *gin.Context) {
	sess := middleware.GetSession(c)

	sale := cc.Checkout.Confirmation(sess)
	if sale == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no confirmation pending"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

// DismissConfirmation closes the confirmation view.
func (cc *CheckoutController) DismissConfirmation(c *gin.Context) {
	sess := middleware.GetSession(c)
	cc.Checkout.DismissConfirmation(sess)
	c.JSON(http.StatusOK, gin.H{"message": "confirmation dismissed"})
}

// Orders returns the purchase history, newest first.
func (cc *CheckoutController) Orders(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, cc.Checkout.Sales(sess))
}

// CryptoAddress returns the receiving address for clipboard copy.
func (cc *CheckoutController) CryptoAddress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"address": cc.Checkout.CryptoAddress()})
}
