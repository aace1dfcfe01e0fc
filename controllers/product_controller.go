package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/catalog"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type ProductController struct {
	Share *services.ShareService
}

func NewProductController(share *services.ShareService) *ProductController {
	return &ProductController{Share: share}
}

// List returns the full catalog.
func (pc *ProductController) List(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}

// Featured returns the home page picks.
func (pc *ProductController) Featured(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Featured())
}

// Get returns one product by id.
func (pc *ProductController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, ok := catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ShareLink returns the share payload for a product page.
func (pc *ProductController) ShareLink(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	payload, appErr := pc.Share.ForProduct(id)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, payload)
}
