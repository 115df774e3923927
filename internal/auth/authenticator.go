package auth

import (
	"errors"
	"time"

	"github.com/ledgerlab/fintrack/internal/domain/session"
	"github.com/ledgerlab/fintrack/internal/domain/user"
	"github.com/ledgerlab/fintrack/internal/security"
)

// Keep these interfaces small so tests can fake them easily.
type UserReader interface {
	GetUserByEmail(email string) (user.User, error)
}

type SessionStore interface {
	CreateSession(token string, u user.User) session.Session
	GetSessionByToken(token string) (session.Session, error)
	DeleteSessionByToken(token string)
}

// Error strings below are part of the HTTP contract and surface verbatim.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrMissingToken       = errors.New("Access token required")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrTokenExpired       = errors.New("Token expired")
)

// Authenticator issues and checks opaque session tokens. Every account
// shares one configured password; it is bcrypt-hashed once at startup so
// the comparison path is already in the shape a per-user credential store
// would need.
type Authenticator struct {
	users        UserReader
	sessions     SessionStore
	passwordHash string
	ttl          time.Duration

	now      func() time.Time
	newToken func() (string, error)
}

func NewAuthenticator(users UserReader, sessions SessionStore, defaultPassword string, ttl time.Duration) (*Authenticator, error) {
	hash, err := security.HashPassword(defaultPassword)

	if err != nil {
		return nil, err
	}

	return &Authenticator{
		users:        users,
		sessions:     sessions,
		passwordHash: hash,
		ttl:          ttl,
		now:          time.Now,
		newToken:     security.NewSessionToken,
	}, nil
}

// Login resolves the email against the user store (first exact match) and
// checks the presented password. On success a fresh session is minted with
// a snapshot of the user as it exists right now.
func (a *Authenticator) Login(email, password string) (session.Session, error) {
	u, err := a.users.GetUserByEmail(email)

	if err != nil {
		return session.Session{}, ErrInvalidCredentials
	}

	if err := security.CheckPassword(a.passwordHash, password); err != nil {
		return session.Session{}, ErrInvalidCredentials
	}

	token, err := a.newToken()

	if err != nil {
		return session.Session{}, err
	}

	return a.sessions.CreateSession(token, u), nil
}

// Verify resolves a bearer token to the user snapshot captured at login.
// Expiry is lazy: a session older than the TTL is evicted at the moment it
// is found, never proactively.
func (a *Authenticator) Verify(token string) (user.User, error) {
	if token == "" {
		return user.User{}, ErrMissingToken
	}

	sess, err := a.sessions.GetSessionByToken(token)

	if err != nil {
		return user.User{}, ErrInvalidToken
	}

	if sess.ExpiredAt(a.now(), a.ttl) {
		a.sessions.DeleteSessionByToken(token)
		return user.User{}, ErrTokenExpired
	}

	return sess.User, nil
}

// Logout removes the session for the presented token. Removing a token
// that is already gone is a no-op.
func (a *Authenticator) Logout(token string) {
	a.sessions.DeleteSessionByToken(token)
}
