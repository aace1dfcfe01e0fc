package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type SessionController struct {
	Tokens     *services.TokenService
	Navigation *services.NavigationService
}

func NewSessionController(tokens *services.TokenService, navigation *services.NavigationService) *SessionController {
	return &SessionController{Tokens: tokens, Navigation: navigation}
}

// Create issues a token for a fresh anonymous session.
func (sc *SessionController) Create(c *gin.Context) {
	token, err := sc.Tokens.Generate(uuid.NewString())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// View returns the current view state for the session.
func (sc *SessionController) View(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, sc.Navigation.View(sess))
}

// Navigate moves the session to another page.
func (sc *SessionController) Navigate(c *gin.Context) {
	var req struct {
		Page      models.Page `json:"page" binding:"required"`
		ProductID int         `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sess := middleware.GetSession(c)
	view, appErr := sc.Navigation.Navigate(sess, req.Page, req.ProductID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, view)
}
