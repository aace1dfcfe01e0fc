package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DELMUS1M/SPARKLY-STORE/controllers"
	"github.com/DELMUS1M/SPARKLY-STORE/database"
	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

// Deps is everything the route tree needs wired in.
type Deps struct {
	Tokens     *services.TokenService
	Sessions   *session.Store
	Cart       *services.CartService
	Wishlist   *services.WishlistService
	Reviews    *services.ReviewService
	Account    *services.AccountService
	Checkout   *services.CheckoutService
	Navigation *services.NavigationService
	Share      *services.ShareService
	Notifier   *services.NotificationService
	Prefs      *database.PreferenceRepository
}

// Register wires every storefront route onto the router.
func Register(r *gin.Engine, deps Deps) {
	sessionCtrl := controllers.NewSessionController(deps.Tokens, deps.Navigation)
	productCtrl := controllers.NewProductController(deps.Share)
	cartCtrl := controllers.NewCartController(deps.Cart)
	wishlistCtrl := controllers.NewWishlistController(deps.Wishlist)
	reviewCtrl := controllers.NewReviewController(deps.Reviews)
	accountCtrl := controllers.NewAccountController(deps.Account, deps.Navigation)
	addressCtrl := controllers.NewAddressController(deps.Account)
	checkoutCtrl := controllers.NewCheckoutController(deps.Checkout)
	prefCtrl := controllers.NewPreferenceController(deps.Prefs)
	notifCtrl := controllers.NewNotificationController(deps.Notifier)

	// Anonymous session bootstrap
	r.POST("/session", sessionCtrl.Create)

	// Everything else runs inside a session
	api := r.Group("/")
	api.Use(middleware.SessionMiddleware(deps.Tokens, deps.Sessions))
	{
		api.GET("/session", sessionCtrl.View)
		api.POST("/navigate", sessionCtrl.Navigate)

		api.GET("/products", productCtrl.List)
		api.GET("/products/featured", productCtrl.Featured)
		api.GET("/products/:id", productCtrl.Get)
		api.GET("/products/:id/share", productCtrl.ShareLink)
		api.GET("/products/:id/reviews", reviewCtrl.ListForProduct)
		api.POST("/products/:id/reviews", reviewCtrl.Add)

		api.GET("/cart", cartCtrl.Get)
		api.POST("/cart/add", cartCtrl.AddItem)
		api.PUT("/cart/items/:product_id", cartCtrl.UpdateQuantity)
		api.DELETE("/cart", cartCtrl.Clear)

		api.GET("/wishlist", wishlistCtrl.Get)
		api.POST("/wishlist/toggle", wishlistCtrl.Toggle)

		api.POST("/auth/signup", accountCtrl.Signup)
		api.POST("/auth/login", accountCtrl.Login)
		api.POST("/auth/provider", accountCtrl.ProviderLogin)
		api.POST("/auth/password-reset", accountCtrl.PasswordReset)
		api.POST("/auth/logout", accountCtrl.Logout)

		api.GET("/account/addresses", addressCtrl.List)
		api.POST("/account/addresses", addressCtrl.Create)
		api.PUT("/account/addresses/:id", addressCtrl.Update)
		api.PUT("/account/addresses/:id/default", addressCtrl.SetDefault)
		api.DELETE("/account/addresses/:id", addressCtrl.Remove)
		api.GET("/account/reviews", reviewCtrl.Mine)

		api.POST("/checkout", checkoutCtrl.Initiate)
		api.POST("/checkout/pay", checkoutCtrl.Pay)
		api.POST("/checkout/confirm", checkoutCtrl.Confirm)
		api.DELETE("/checkout", checkoutCtrl.Close)
		api.GET("/checkout/confirmation", checkoutCtrl.Confirmation)
		api.DELETE("/checkout/confirmation", checkoutCtrl.DismissConfirmation)
		api.GET("/checkout/crypto-address", checkoutCtrl.CryptoAddress)
		api.GET("/orders", checkoutCtrl.Orders)

		api.GET("/notifications", notifCtrl.List)
		api.DELETE("/notifications/:id", notifCtrl.Dismiss)

		api.GET("/preferences/theme", prefCtrl.GetTheme)
		api.PUT("/preferences/theme", prefCtrl.SetTheme)
	}
}
