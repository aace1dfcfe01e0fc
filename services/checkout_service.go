package services

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"time"

	apperrors "github.com/DELMUS1M/SPARKLY-STORE/errors"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

const saleDateLayout = "January 2, 2006"

// cryptoAddress is the fixed receiving address shown for the crypto method.
const cryptoAddress = "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"

// kenyanPhone matches the mobile prefixes the push provider accepts.
var kenyanPhone = regexp.MustCompile(`^(07|01)\d{8}$`)

// CheckoutInfo is what the payment modal needs to open.
type CheckoutInfo struct {
	Total          float64                `json:"total"`
	Methods        []models.PaymentMethod `json:"methods"`
	DefaultAddress *models.Address        `json:"default_address,omitempty"`
}

// PaymentResult reports where the payment flow landed after a phase.
type PaymentResult struct {
	State models.PaymentState `json:"state"`
	Sale  *models.Sale        `json:"sale,omitempty"`
}

// CheckoutService coordinates cart, account state and the payment simulator:
// it gates checkout behind login, runs the one- or two-phase payment, and on
// success records the sale and clears the cart.
type CheckoutService struct {
	simulator PaymentSimulator
	notifier  *NotificationService
	now       func() time.Time
}

func NewCheckoutService(simulator PaymentSimulator, notifier *NotificationService) *CheckoutService {
	return &CheckoutService{
		simulator: simulator,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Initiate opens the payment flow. An anonymous user is sent to the account
// page with the interrupted page recorded for after login; no payment starts
// and the cart is untouched.
func (s *CheckoutService) Initiate(sess *session.Session) (CheckoutInfo, *apperrors.Error) {
	sess.Lock()
	defer sess.Unlock()

	if len(sess.Cart) == 0 {
		return CheckoutInfo{}, apperrors.ErrEmptyCart
	}

	if !sess.Authenticated() {
		sess.PendingRedirect = sess.CurrentPage
		sess.CurrentPage = models.PageAccount
		s.notifier.Push(sess, "Please log in to complete your purchase", models.NotificationInfo)
		return CheckoutInfo{}, apperrors.ErrLoginRequired
	}

	sess.PaymentState = models.PaymentAwaitingMethod
	return CheckoutInfo{
		Total:          CartTotal(sess.Cart),
		Methods:        []models.PaymentMethod{models.MethodMpesa, models.MethodCard, models.MethodPaypal, models.MethodCrypto},
		DefaultAddress: defaultAddress(sess),
	}, nil
}

// Pay runs the first payment phase. M-Pesa validates the phone and simulates
// the push request, landing in AwaitingConfirmation; every other method
// completes the purchase in this single phase.
func (s *CheckoutService) Pay(ctx context.Context, sess *session.Session, method models.PaymentMethod, phone string) (PaymentResult, *apperrors.Error) {
	sess.Lock()
	if sess.PaymentState != models.PaymentAwaitingMethod {
		state := sess.PaymentState
		sess.Unlock()
		return PaymentResult{State: state}, apperrors.ErrPaymentState
	}
	if !method.Valid() {
		sess.Unlock()
		return PaymentResult{State: models.PaymentAwaitingMethod}, apperrors.ErrInvalidInput
	}
	if method == models.MethodMpesa && !kenyanPhone.MatchString(phone) {
		sess.Unlock()
		return PaymentResult{State: models.PaymentAwaitingMethod},
			apperrors.New(http.StatusBadRequest, "Please enter a valid Kenyan phone number (e.g., 0712345678 or 0112345678).", nil)
	}
	sess.PaymentMethod = method
	sess.PaymentState = models.PaymentProcessing
	sess.Unlock()

	if method == models.MethodMpesa {
		if err := s.simulator.SendPush(ctx, phone); err != nil {
			return s.abandon(sess), nil
		}
		sess.Lock()
		defer sess.Unlock()
		// The modal may have been closed while the push was in flight; the
		// late result is then ignored.
		if sess.PaymentState != models.PaymentProcessing {
			return PaymentResult{State: sess.PaymentState}, nil
		}
		sess.PaymentState = models.PaymentAwaitingConfirmation
		return PaymentResult{State: sess.PaymentState}, nil
	}

	if err := s.simulator.Charge(ctx, method); err != nil {
		return s.abandon(sess), nil
	}
	sess.Lock()
	defer sess.Unlock()
	if sess.PaymentState != models.PaymentProcessing {
		return PaymentResult{State: sess.PaymentState}, nil
	}
	sale := s.complete(sess)
	return PaymentResult{State: sess.PaymentState, Sale: sale}, nil
}

// Confirm runs the second M-Pesa phase, simulating PIN entry, and completes
// the purchase.
func (s *CheckoutService) Confirm(ctx context.Context, sess *session.Session) (PaymentResult, *apperrors.Error) {
	sess.Lock()
	if sess.PaymentState != models.PaymentAwaitingConfirmation {
		state := sess.PaymentState
		sess.Unlock()
		return PaymentResult{State: state}, apperrors.ErrPaymentState
	}
	sess.PaymentState = models.PaymentProcessing
	sess.Unlock()

	if err := s.simulator.ConfirmPush(ctx); err != nil {
		return s.abandon(sess), nil
	}

	sess.Lock()
	defer sess.Unlock()
	if sess.PaymentState != models.PaymentProcessing {
		return PaymentResult{State: sess.PaymentState}, nil
	}
	sale := s.complete(sess)
	return PaymentResult{State: sess.PaymentState, Sale: sale}, nil
}

// Close dismisses the payment modal. A simulator callback that lands after
// this sees the state change and drops its result.
func (s *CheckoutService) Close(sess *session.Session) {
	sess.Lock()
	defer sess.Unlock()
	sess.PaymentState = models.PaymentIdle
	sess.PaymentMethod = ""
}

// Confirmation returns the sale awaiting its confirmation view, if any.
func (s *CheckoutService) Confirmation(sess *session.Session) *models.Sale {
	sess.Lock()
	defer sess.Unlock()
	return sess.LastSale
}

// DismissConfirmation closes the confirmation view.
func (s *CheckoutService) DismissConfirmation(sess *session.Session) {
	sess.Lock()
	defer sess.Unlock()
	sess.LastSale = nil
	if sess.PaymentState == models.PaymentSucceeded {
		sess.PaymentState = models.PaymentIdle
	}
}

// Sales returns the session's purchase history, newest first.
func (s *CheckoutService) Sales(sess *session.Session) []models.Sale {
	sess.Lock()
	defer sess.Unlock()

	out := make([]models.Sale, len(sess.Sales))
	copy(out, sess.Sales)
	return out
}

// CryptoAddress is the address exposed for clipboard copy.
func (s *CheckoutService) CryptoAddress() string {
	return cryptoAddress
}

// complete records the sale from the current cart, clears it, and shows the
// confirmation. Caller holds the session lock.
func (s *CheckoutService) complete(sess *session.Session) *models.Sale {
	items := make([]models.CartLine, len(sess.Cart))
	copy(items, sess.Cart)

	sale := models.Sale{
		ID:    strconv.FormatInt(s.now().UnixMilli(), 10),
		Items: items,
		Date:  s.now().Format(saleDateLayout),
		Total: CartTotal(items),
	}

	sess.Sales = append([]models.Sale{sale}, sess.Sales...)
	sess.Cart = nil
	sess.LastSale = &sale
	sess.PaymentState = models.PaymentSucceeded
	sess.CurrentPage = models.PageHome
	return &sale
}

// abandon reads back the state after a cancelled simulator call.
func (s *CheckoutService) abandon(sess *session.Session) PaymentResult {
	sess.Lock()
	defer sess.Unlock()
	return PaymentResult{State: sess.PaymentState}
}
