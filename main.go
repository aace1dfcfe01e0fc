package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/DELMUS1M/SPARKLY-STORE/config"
	"github.com/DELMUS1M/SPARKLY-STORE/database"
	apperrors "github.com/DELMUS1M/SPARKLY-STORE/errors"
	"github.com/DELMUS1M/SPARKLY-STORE/logger"
	"github.com/DELMUS1M/SPARKLY-STORE/middleware"
	"github.com/DELMUS1M/SPARKLY-STORE/routes"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

func main() {
	// Load environment configuration
	_ = godotenv.Load()
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// Persistent store
	redisClient := database.NewRedisClient(cfg.RedisURL)
	store := database.NewRedisStore(redisClient)
	reviewRepo := database.NewReviewRepository(store)
	prefRepo := database.NewPreferenceRepository(store)

	// Services
	sessions := session.NewStore()
	tokens := services.NewTokenService(cfg.JWTSecret)
	notifier := services.NewNotificationService(cfg.NotificationTTL)
	cart := services.NewCartService(cfg.QuantityStep, notifier)
	wishlist := services.NewWishlistService()
	reviews := services.NewReviewService(reviewRepo)
	account := services.NewAccountService()
	simulator := services.NewDelaySimulator(cfg.PushDelay, cfg.ConfirmDelay, cfg.ChargeDelay)
	checkout := services.NewCheckoutService(simulator, notifier)
	navigation := services.NewNavigationService()
	share := services.NewShareService(cfg.PublicBaseURL)

	// Reviews are read from the store once at startup; failures fall back to
	// an empty mapping inside Load.
	reviews.Load(context.Background())

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(apperrors.ErrorMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	routes.Register(router, routes.Deps{
		Tokens:     tokens,
		Sessions:   sessions,
		Cart:       cart,
		Wishlist:   wishlist,
		Reviews:    reviews,
		Account:    account,
		Checkout:   checkout,
		Navigation: navigation,
		Share:      share,
		Notifier:   notifier,
		Prefs:      prefRepo,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Storefront service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Shutdown error", zap.Error(err))
	}
	logger.Log.Info("Server shutdown complete")
}
