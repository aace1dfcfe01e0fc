package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/services"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

func newCheckoutTestRouter(t *testing.T) (*session.Session, *services.CartService, *services.AccountService, http.Handler) {
	t.Helper()

	notifier := services.NewNotificationService(time.Hour)
	cartSvc := services.NewCartService(1, notifier)
	accountSvc := services.NewAccountService()
	simulator := services.NewDelaySimulator(time.Millisecond, time.Millisecond, time.Millisecond)
	checkoutSvc := services.NewCheckoutService(simulator, notifier)
	controller := NewCheckoutController(checkoutSvc)

	sess := newTestSession()
	router := newTestRouter(sess)
	router.POST("/checkout", controller.Initiate)
	router.POST("/checkout/pay", controller.Pay)
	router.POST("/checkout/confirm", controller.Confirm)
	router.DELETE("/checkout", controller.Close)
	router.GET("/checkout/confirmation", controller.Confirmation)
	router.GET("/orders", controller.Orders)
	router.GET("/checkout/crypto-address", controller.CryptoAddress)

	return sess, cartSvc, accountSvc, router
}

func TestCheckoutController_AnonymousGated(t *testing.T) {
	sess, cartSvc, _, router := newCheckoutTestRouter(t)
	cartSvc.Add(sess, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, cartSvc.Get(sess).Lines, 1)
}

func TestCheckoutController_EmptyCart(t *testing.T) {
	sess, _, accountSvc, router := newCheckoutTestRouter(t)
	accountSvc.Login(sess, "jane@example.com", "pw")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutController_MpesaFlow(t *testing.T) {
	sess, cartSvc, accountSvc, router := newCheckoutTestRouter(t)
	accountSvc.Login(sess, "jane@example.com", "pw")
	cartSvc.Add(sess, 1)
	cartSvc.Add(sess, 1)

	// Open the payment flow
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/checkout", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var info services.CheckoutInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, 200.0, info.Total)

	// Invalid phone is rejected inline
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/checkout/pay", bytes.NewBufferString(`{"method":"mpesa","phone":"12345"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Phase 1
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/checkout/pay", bytes.NewBufferString(`{"method":"mpesa","phone":"0712345678"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.PaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, models.PaymentAwaitingConfirmation, result.State)

	// Phase 2
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/checkout/confirm", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, models.PaymentSucceeded, result.State)
	require.NotNil(t, result.Sale)
	assert.Equal(t, 200.0, result.Sale.Total)
	assert.Empty(t, cartSvc.Get(sess).Lines)

	// Order history has the sale
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/orders", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var sales []models.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sales))
	require.Len(t, sales, 1)
	assert.Equal(t, 200.0, sales[0].Total)

	// Confirmation view is pending
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/checkout/confirmation", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutController_CryptoAddress(t *testing.T) {
	_, _, _, router := newCheckoutTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/checkout/crypto-address", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["address"])
}
