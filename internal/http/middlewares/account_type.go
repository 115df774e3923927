package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/auth"
)

// RequireAccountType gates a route on an exact account-type match. There is
// no tier hierarchy: "enterprise" does not satisfy a "premium" requirement.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireAccountType(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := UserFromContext(c)

		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   auth.ErrMissingToken.Error(),
			})
			return
		}

		if u.AccountType != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Insufficient permissions",
			})
			return
		}

		c.Next()
	}
}
