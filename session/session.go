package session

import (
	"sync"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
)

// Session holds all mutable storefront state for one visitor: cart,
// wishlist, account, navigation and the in-flight payment. Handlers take the
// lock for the duration of a state transition, so each session behaves as a
// single logical thread.
type Session struct {
	sync.Mutex

	ID string

	Cart     []models.CartLine
	Wishlist map[int]bool

	User      *models.User
	Addresses []models.Address
	Sales     []models.Sale

	CurrentPage       models.Page
	SelectedProductID int
	PendingRedirect   models.Page

	PaymentState  models.PaymentState
	PaymentMethod models.PaymentMethod
	LastSale      *models.Sale

	Notifications []models.Notification
}

func newSession(id string) *Session {
	return &Session{
		ID:           id,
		Wishlist:     make(map[int]bool),
		CurrentPage:  models.PageHome,
		PaymentState: models.PaymentIdle,
	}
}

// Authenticated reports whether a user is signed in. Caller holds the lock.
func (s *Session) Authenticated() bool {
	return s.User != nil
}

// Store owns every live session, keyed by the session id carried in the
// token.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate resolves the session for id, creating it on first use.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = newSession(id)
	st.sessions[id] = s
	return s
}
