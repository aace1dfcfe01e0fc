package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/catalog"
	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// Add records a review for a product.
func (rc *ReviewController) Add(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	if _, ok := catalog.ByID(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	var req struct {
		Name    string `json:"name" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	review := rc.Reviews.Add(c.Request.Context(), productID, req.Name, req.Rating, req.Comment)
	c.JSON(http.StatusCreated, review)
}

// ListForProduct returns a product's reviews, newest first.
func (rc *ReviewController) ListForProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	c.JSON(http.StatusOK, rc.Reviews.ForProduct(productID))
}

// Mine returns the signed-in user's reviews across the catalog.
func (rc *ReviewController) Mine(c *gin.Context) {
	sess := middleware.GetSession(c)

	sess.Lock()
	user := sess.User
	sess.Unlock()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	c.JSON(http.StatusOK, rc.Reviews.ByAuthor(user.Name))
}
