package auth

import (
	"testing"
	"time"

	"github.com/ledgerlab/fintrack/internal/domain/user"
	"github.com/ledgerlab/fintrack/internal/repo/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "hunter2-shared"

func newTestAuthenticator(t *testing.T) (*Authenticator, *memory.Store) {
	t.Helper()

	store := memory.NewStore()

	a, err := NewAuthenticator(store, store, testPassword, 24*time.Hour)
	require.NoError(t, err)

	return a, store
}

func seedUser(store *memory.Store, email string) user.User {
	return store.CreateUser(user.CreateUserRequest{
		Name:        "Alice",
		Email:       email,
		AccountType: user.AccountBasic,
	})
}

func TestLoginIssuesSession(t *testing.T) {
	a, store := newTestAuthenticator(t)
	u := seedUser(store, "alice@example.com")

	sess, err := a.Login("alice@example.com", testPassword)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, u.ID, sess.UserID)
	assert.Equal(t, u.Email, sess.User.Email)

	// token resolves back to the same user
	got, err := a.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestLoginRejections(t *testing.T) {
	a, store := newTestAuthenticator(t)
	seedUser(store, "alice@example.com")

	_, err := a.Login("nobody@example.com", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginTokensAreUniquePerSession(t *testing.T) {
	a, store := newTestAuthenticator(t)
	seedUser(store, "alice@example.com")

	s1, err := a.Login("alice@example.com", testPassword)
	require.NoError(t, err)
	s2, err := a.Login("alice@example.com", testPassword)
	require.NoError(t, err)

	assert.NotEqual(t, s1.Token, s2.Token)

	// both sessions stay valid side by side
	_, err = a.Verify(s1.Token)
	assert.NoError(t, err)
	_, err = a.Verify(s2.Token)
	assert.NoError(t, err)
}

func TestVerifyReturnsStaleSnapshot(t *testing.T) {
	a, store := newTestAuthenticator(t)
	u := seedUser(store, "alice@example.com")

	sess, err := a.Login("alice@example.com", testPassword)
	require.NoError(t, err)

	_, err = store.UpdateUser(u.ID, user.UpdateUserRequest{
		Name:        "Alicia",
		Email:       "alicia@example.com",
		AccountType: user.AccountPremium,
	})
	require.NoError(t, err)

	got, err := a.Verify(sess.Token)
	require.NoError(t, err)

	// still the login-time view; edits only show up after a fresh login
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, user.AccountBasic, got.AccountType)
}

func TestVerifyErrors(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	_, err := a.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = a.Verify("no-such-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEvictsExpiredSessionLazily(t *testing.T) {
	a, store := newTestAuthenticator(t)
	seedUser(store, "alice@example.com")

	sess, err := a.Login("alice@example.com", testPassword)
	require.NoError(t, err)

	// just under the TTL: still fine
	a.now = func() time.Time { return sess.CreatedAt.Add(24*time.Hour - time.Second) }
	_, err = a.Verify(sess.Token)
	require.NoError(t, err)

	// past the TTL: rejected with the expiry error and evicted
	a.now = func() time.Time { return sess.CreatedAt.Add(24*time.Hour + time.Second) }
	_, err = a.Verify(sess.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// eviction happened, so a retry now reads as unknown rather than expired
	_, err = a.Verify(sess.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	a, store := newTestAuthenticator(t)
	seedUser(store, "alice@example.com")

	sess, err := a.Login("alice@example.com", testPassword)
	require.NoError(t, err)

	a.Logout(sess.Token)

	_, err = a.Verify(sess.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// logging out twice is harmless
	a.Logout(sess.Token)
}
