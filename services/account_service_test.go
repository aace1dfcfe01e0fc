package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DELMUS1M/SPARKLY-STORE/models"
	"github.com/DELMUS1M/SPARKLY-STORE/session"
)

func TestSignupValidation(t *testing.T) {
	svc := NewAccountService()

	cases := []struct {
		name    string
		in      [4]string // name, email, password, confirm
		wantErr string
	}{
		{"missing fields", [4]string{"", "a@b.com", "secret1", "secret1"}, "All fields are required."},
		{"password mismatch", [4]string{"Jane", "a@b.com", "secret1", "secret2"}, "Passwords do not match."},
		{"short password", [4]string{"Jane", "a@b.com", "abc", "abc"}, "Password must be at least 6 characters long."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := newTestSession()
			_, appErr := svc.Signup(sess, tc.in[0], tc.in[1], tc.in[2], tc.in[3])
			require.NotNil(t, appErr)
			assert.Equal(t, tc.wantErr, appErr.Message)

			view := NewNavigationService().View(sess)
			assert.False(t, view.Authenticated)
		})
	}
}

func TestSignup_Authenticates(t *testing.T) {
	svc := NewAccountService()
	sess := newTestSession()

	user, appErr := svc.Signup(sess, "Jane Doe", "jane@example.com", "secret1", "secret1")
	require.Nil(t, appErr)
	assert.Equal(t, "Jane Doe", user.Name)

	view := NewNavigationService().View(sess)
	assert.True(t, view.Authenticated)
	assert.Equal(t, models.PageAccount, view.Page)
}

func TestLogin_DerivesNameFromEmail(t *testing.T) {
	svc := NewAccountService()
	sess := newTestSession()

	user, appErr := svc.Login(sess, "jane.doe+shop@example.com", "whatever")
	require.Nil(t, appErr)
	assert.Equal(t, "janedoeshop", user.Name)
}

func TestLogin_RequiresInput(t *testing.T) {
	svc := NewAccountService()
	sess := newTestSession()

	_, appErr := svc.Login(sess, "", "pw")
	require.NotNil(t, appErr)
	_, appErr = svc.Login(sess, "a@b.com", "")
	require.NotNil(t, appErr)
}

func TestLogout_KeepsCartAndWishlist(t *testing.T) {
	account := NewAccountService()
	cart := newTestCartService()
	wishlist := NewWishlistService()
	sess := newTestSession()

	account.Login(sess, "jane@example.com", "pw")
	cart.Add(sess, 1)
	wishlist.Toggle(sess, 2)

	account.Logout(sess)

	view := NewNavigationService().View(sess)
	assert.False(t, view.Authenticated)
	assert.Equal(t, models.PageHome, view.Page)
	assert.Len(t, cart.Get(sess).Lines, 1)
	assert.Len(t, wishlist.List(sess), 1)
}

// countDefaults returns how many addresses carry the default flag.
func countDefaults(addrs []models.Address) int {
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func assertDefaultInvariant(t *testing.T, sess *session.Session, svc *AccountService) {
	t.Helper()
	addrs := svc.Addresses(sess)
	if len(addrs) == 0 {
		return
	}
	assert.Equal(t, 1, countDefaults(addrs), "exactly one default among %d addresses", len(addrs))
}

func TestAddresses_DefaultInvariant(t *testing.T) {
	svc := NewAccountService()
	sess := newTestSession()

	a := svc.AddAddress(sess, models.Address{Name: "A", Street: "1 Main St", City: "Nairobi", Country: "Kenya"})
	assertDefaultInvariant(t, sess, svc)
	assert.True(t, svc.Addresses(sess)[0].IsDefault)

	b := svc.AddAddress(sess, models.Address{Name: "B", Street: "2 High St", City: "Mombasa", Country: "Kenya"})
	assertDefaultInvariant(t, sess, svc)

	// The newest address became default
	addrs := svc.Addresses(sess)
	require.Len(t, addrs, 2)
	assert.False(t, addrs[0].IsDefault)
	assert.True(t, addrs[1].IsDefault)

	// Removing the default promotes the first remaining
	require.Nil(t, svc.RemoveAddress(sess, b.ID))
	addrs = svc.Addresses(sess)
	require.Len(t, addrs, 1)
	assert.True(t, addrs[0].IsDefault)
	assertDefaultInvariant(t, sess, svc)

	// setDefault marks exactly one
	c := svc.AddAddress(sess, models.Address{Name: "C", Street: "3 Low St", City: "Kisumu", Country: "Kenya"})
	require.Nil(t, svc.SetDefaultAddress(sess, a.ID))
	assertDefaultInvariant(t, sess, svc)
	for _, addr := range svc.Addresses(sess) {
		assert.Equal(t, addr.ID == a.ID, addr.IsDefault)
	}

	// Update keeps the default flag
	require.Nil(t, svc.UpdateAddress(sess, models.Address{ID: c.ID, Name: "C2", Street: "3 Low St", City: "Kisumu", Country: "Kenya"}))
	assertDefaultInvariant(t, sess, svc)
	assert.Equal(t, "C2", svc.Addresses(sess)[1].Name)

	// Removing a non-default leaves the default alone
	require.Nil(t, svc.RemoveAddress(sess, c.ID))
	assertDefaultInvariant(t, sess, svc)
	assert.True(t, svc.Addresses(sess)[0].IsDefault)
}

func TestAddresses_UnknownID(t *testing.T) {
	svc := NewAccountService()
	sess := newTestSession()

	assert.NotNil(t, svc.UpdateAddress(sess, models.Address{ID: "missing"}))
	assert.NotNil(t, svc.SetDefaultAddress(sess, "missing"))
	assert.NotNil(t, svc.RemoveAddress(sess, "missing"))
}
