package services

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/DELMUS1M/SPARKLY-STORE/errors"
	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// AccountService owns the {Anonymous, Authenticated} state machine and the
// saved addresses. Authentication is mocked: any well-formed input succeeds
// and nothing is verified against a credential store.
type AccountService struct{}

func NewAccountService() *AccountService {
	return &AccountService{}
}

// Signup validates the profile form and signs the user in.
func (s *AccountService) Signup(sess *session.Session, name, email, password, confirmPassword string) (models.User, *apperrors.Error) {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return models.User{}, apperrors.New(http.StatusBadRequest, "All fields are required.", nil)
	}
	if password != confirmPassword {
		return models.User{}, apperrors.New(http.StatusBadRequest, "Passwords do not match.", nil)
	}
	if len(password) < 6 {
		return models.User{}, apperrors.New(http.StatusBadRequest, "Password must be at least 6 characters long.", nil)
	}

	return s.authenticate(sess, models.User{Name: name, Email: email}), nil
}

// Login validates the credentials form and signs the user in. The display
// name is derived from the email's local part.
func (s *AccountService) Login(sess *session.Session, email, password string) (models.User, *apperrors.Error) {
	if email == "" || password == "" {
		return models.User{}, apperrors.New(http.StatusBadRequest, "Email and password are required.", nil)
	}

	name := nonAlphanumeric.ReplaceAllString(strings.SplitN(email, "@", 2)[0], "")
	return s.authenticate(sess, models.User{Name: name, Email: email}), nil
}

// ProviderLogin signs in with the mock federated identity.
func (s *AccountService) ProviderLogin(sess *session.Session) models.User {
	return s.authenticate(sess, models.User{Name: "Sparkler", Email: "user@google.com"})
}

// RequestPasswordReset accepts any email and pretends a reset mail was
// sent. Nothing is stored and no mail exists to send.
func (s *AccountService) RequestPasswordReset(email string) *apperrors.Error {
	if email == "" {
		return apperrors.New(http.StatusBadRequest, "Email is required.", nil)
	}
	return nil
}

// Logout returns the session to Anonymous and navigates home. Cart and
// wishlist are session-scoped and survive.
func (s *AccountService) Logout(sess *session.Session) {
	sess.Lock()
	defer sess.Unlock()

	sess.User = nil
	sess.CurrentPage = models.PageHome
	sess.SelectedProductID = 0
}

// authenticate transitions to Authenticated and resumes a checkout that was
// interrupted by the login gate, if one was recorded.
func (s *AccountService) authenticate(sess *session.Session, user models.User) models.User {
	sess.Lock()
	defer sess.Unlock()

	sess.User = &user
	if sess.PendingRedirect != "" {
		sess.CurrentPage = sess.PendingRedirect
		sess.PendingRedirect = ""
	} else {
		sess.CurrentPage = models.PageAccount
	}
	return user
}

// AddAddress saves a new address and makes it the default.
func (s *AccountService) AddAddress(sess *session.Session, addr models.Address) models.Address {
	sess.Lock()
	defer sess.Unlock()

	addr.ID = uuid.NewString()
	addr.IsDefault = true
	for i := range sess.Addresses {
		sess.Addresses[i].IsDefault = false
	}
	sess.Addresses = append(sess.Addresses, addr)
	return addr
}

// UpdateAddress replaces an address by id, keeping its default flag.
func (s *AccountService) UpdateAddress(sess *session.Session, addr models.Address) *apperrors.Error {
	sess.Lock()
	defer sess.Unlock()

	for i := range sess.Addresses {
		if sess.Addresses[i].ID == addr.ID {
			addr.IsDefault = sess.Addresses[i].IsDefault
			sess.Addresses[i] = addr
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// SetDefaultAddress marks exactly one address as default.
func (s *AccountService) SetDefaultAddress(sess *session.Session, id string) *apperrors.Error {
	sess.Lock()
	defer sess.Unlock()

	found := false
	for i := range sess.Addresses {
		if sess.Addresses[i].ID == id {
			found = true
		}
	}
	if !found {
		return apperrors.ErrNotFound
	}

	for i := range sess.Addresses {
		sess.Addresses[i].IsDefault = sess.Addresses[i].ID == id
	}
	return nil
}

// RemoveAddress deletes an address by id. If the default was removed and
// others remain, the first remaining address is promoted.
func (s *AccountService) RemoveAddress(sess *session.Session, id string) *apperrors.Error {
	sess.Lock()
	defer sess.Unlock()

	for i := range sess.Addresses {
		if sess.Addresses[i].ID != id {
			continue
		}
		wasDefault := sess.Addresses[i].IsDefault
		sess.Addresses = append(sess.Addresses[:i], sess.Addresses[i+1:]...)
		if wasDefault && len(sess.Addresses) > 0 {
			sess.Addresses[0].IsDefault = true
		}
		return nil
	}
	return apperrors.ErrNotFound
}

// Addresses returns a copy of the saved addresses.
func (s *AccountService) Addresses(sess *session.Session) []models.Address {
	sess.Lock()
	defer sess.Unlock()

	out := make([]models.Address, len(sess.Addresses))
	copy(out, sess.Addresses)
	return out
}

// DefaultAddress returns the default address, if any. Caller holds the lock.
func defaultAddress(sess *session.Session) *models.Address {
	for i := range sess.Addresses {
		if sess.Addresses[i].IsDefault {
			addr := sess.Addresses[i]
			return &addr
		}
	}
	return nil
}
