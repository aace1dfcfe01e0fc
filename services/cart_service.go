package services

import (
	"fmt"
	"math"

	"github.com/DELMUS1M/SPARKLY-STORE/catalog"
	apperrors "github.com/DELMUS1M/SPARKLY-STORE/errors"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

// CartService owns the cart state transitions. Totals and item counts are
// derived on every read and never stored.
type CartService struct {
	step     float64
	notifier *NotificationService
}

func NewCartService(step float64, notifier *NotificationService) *CartService {
	return &CartService{step: step, notifier: notifier}
}

// Add puts one step of the product into the cart, incrementing the existing
// line if there is one, and emits a toast.
func (s *CartService) Add(sess *session.Session, productID int) (models.Cart, *apperrors.Error) {
	product, ok := catalog.ByID(productID)
	if !ok {
		return models.Cart{}, apperrors.ErrNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	found := false
	for i := range sess.Cart {
		if sess.Cart[i].ID == productID {
			sess.Cart[i].Quantity += s.step
			found = true
			break
		}
	}
	if !found {
		sess.Cart = append(sess.Cart, models.CartLine{Product: product, Quantity: s.step})
	}

	s.notifier.Push(sess, fmt.Sprintf("%s added to cart", product.Name), models.NotificationSuccess)
	return snapshotCart(sess), nil
}

// SetQuantity sets a line's quantity. Values at or below zero (and anything
// that did not parse as a number) remove the line entirely.
func (s *CartService) SetQuantity(sess *session.Session, productID int, quantity float64) models.Cart {
	if math.IsNaN(quantity) || quantity < 0 {
		quantity = 0
	}

	sess.Lock()
	defer sess.Unlock()

	for i := range sess.Cart {
		if sess.Cart[i].ID != productID {
			continue
		}
		if quantity <= 0 {
			sess.Cart = append(sess.Cart[:i], sess.Cart[i+1:]...)
		} else {
			sess.Cart[i].Quantity = quantity
		}
		break
	}
	return snapshotCart(sess)
}

// Clear empties the cart.
func (s *CartService) Clear(sess *session.Session) models.Cart {
	sess.Lock()
	defer sess.Unlock()
	sess.Cart = nil
	return snapshotCart(sess)
}

// Get returns the cart with derived totals.
func (s *CartService) Get(sess *session.Session) models.Cart {
	sess.Lock()
	defer sess.Unlock()
	return snapshotCart(sess)
}

// CartTotal is the sum of price times quantity over lines.
func CartTotal(lines []models.CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * l.Quantity
	}
	return total
}

// CartItemCount is the sum of quantities over lines, used for the cart
// badge.
func CartItemCount(lines []models.CartLine) float64 {
	var count float64
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}

// snapshotCart copies the lines and computes derived values. Caller holds
// the session lock.
func snapshotCart(sess *session.Session) models.Cart {
	lines := make([]models.CartLine, len(sess.Cart))
	copy(lines, sess.Cart)
	return models.Cart{
		Lines:     lines,
		Total:     CartTotal(lines),
		ItemCount: CartItemCount(lines),
	}
}
