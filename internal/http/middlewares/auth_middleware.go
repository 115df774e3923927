package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/auth"
	"github.com/ledgerlab/fintrack/internal/domain/user"
	"github.com/ledgerlab/fintrack/internal/observability"
)

// Keep this small interface so tests can fake it easily.
type SessionVerifier interface {
	Verify(token string) (user.User, error)
}

type AuthMiddleware struct {
	sessions SessionVerifier
	prom     *observability.Prom
}

func NewAuthMiddleware(sessions SessionVerifier, prom *observability.Prom) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, prom: prom}
}

// RequireAuth resolves the bearer token to the session's user snapshot and
// stashes it on the request context. The snapshot is whatever the user
// looked like at login; later edits do not show up here.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)

		if token == "" {
			m.countRejection("missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   auth.ErrMissingToken.Error(),
			})
			return
		}

		u, err := m.sessions.Verify(token)

		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				m.countRejection("expired")
			} else {
				m.countRejection("invalid")
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}

		WithUser(c, u)

		c.Next()
	}
}

func (m *AuthMiddleware) countRejection(reason string) {
	if m.prom != nil {
		m.prom.TokenRejected.WithLabelValues(reason).Inc()
	}
}

// BearerToken pulls the token out of the Authorization header: everything
// after the first space. The scheme word itself is not checked.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	_, token, found := strings.Cut(header, " ")
	if !found {
		return ""
	}

	return token
}

// Optional helpers so handlers and tests don't need to know the magic key.

func WithUser(c *gin.Context, u user.User) {
	c.Set(ctxUserKey, u)
}

func UserFromContext(c *gin.Context) (user.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return user.User{}, false
	}

	u, ok := v.(user.User)
	return u, ok
}
