package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type AddressController struct {
	Account *services.AccountService
}

func NewAddressController(account *services.AccountService) *AddressController {
	return &AddressController{Account: account}
}

type addressInput struct {
	Name           string `json:"name" binding:"required"`
	Street         string `json:"street" binding:"required"`
	City           string `json:"city" binding:"required"`
	Country        string `json:"country" binding:"required"`
	GoogleMapsLink string `json:"google_maps_link"`
}

// List returns the saved addresses.
func (ac *AddressController) List(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, ac.Account.Addresses(sess))
}

// Create saves a new address; it becomes the default.
func (ac *AddressController) Create(c *gin.Context) {
	var input addressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	sess := middleware.GetSession(c)
	address := ac.Account.AddAddress(sess, models.Address{
		Name:           input.Name,
		Street:         input.Street,
		City:           input.City,
		Country:        input.Country,
		GoogleMapsLink: input.GoogleMapsLink,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Address created successfully", "address": address})
}

// Update replaces an address by id.
func (ac *AddressController) Update(c *gin.Context) {
	var input addressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	sess := middleware.GetSession(c)
	address := models.Address{
		ID:             c.Param("id"),
		Name:           input.Name,
		Street:         input.Street,
		City:           input.City,
		Country:        input.Country,
		GoogleMapsLink: input.GoogleMapsLink,
	}
	if appErr := ac.Account.UpdateAddress(sess, address); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated successfully"})
}

// SetDefault marks an address as the default.
func (ac *AddressController) SetDefault(c *gin.Context) {
	sess := middleware.GetSession(c)
	if appErr := ac.Account.SetDefaultAddress(sess, c.Param("id")); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
}

// Remove deletes an address by id.
func (ac *AddressController) Remove(c *gin.Context) {
	sess := middleware.GetSession(c)
	if appErr := ac.Account.RemoveAddress(sess, c.Param("id")); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address removed"})
}
