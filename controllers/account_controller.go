package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
)

type AccountController struct {
	Account    *services.AccountService
	Navigation *services.NavigationService
}

func NewAccountController(account *services.AccountService, navigation *services.NavigationService) *AccountController {
	return &AccountController{Account: account, Navigation: navigation}
}

// Signup creates the mock account and signs the user in.
func (ac *AccountController) Signup(c *gin.Context) {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sess := middleware.GetSession(c)
	user, appErr := ac.Account.Signup(sess, req.Name, req.Email, req.Password, req.ConfirmPassword)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "view": ac.Navigation.View(sess)})
}

// Login signs the user in with mock credentials.
func (ac *AccountController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sess := middleware.GetSession(c)
	user, appErr := ac.Account.Login(sess, req.Email, req.Password)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "view": ac.Navigation.View(sess)})
}

// ProviderLogin signs in with the mock federated identity.
func (ac *AccountController) ProviderLogin(c *gin.Context) {
	sess := middleware.GetSession(c)
	user := ac.Account.ProviderLogin(sess)
	c.JSON(http.StatusOK, gin.H{"user": user, "view": ac.Navigation.View(sess)})
}

// PasswordReset pretends to send a reset mail.
func (ac *AccountController) PasswordReset(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if appErr := ac.Account.RequestPasswordReset(req.Email); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If an account exists for that email, reset instructions have been sent."})
}

// Logout returns the session to anonymous.
func (ac *AccountController) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	ac.Account.Logout(sess)
	c.JSON(http.StatusOK, gin.H{"view": ac.Navigation.View(sess)})
}
