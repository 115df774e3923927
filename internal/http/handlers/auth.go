package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/auth"
	"github.com/ledgerlab/fintrack/internal/domain/session"
	"github.com/ledgerlab/fintrack/internal/http/middlewares"
	"github.com/ledgerlab/fintrack/internal/observability"
)

type SessionAuthenticator interface {
	Login(email, password string) (session.Session, error)
	Logout(token string)
}

type AuthHandler struct {
	auth SessionAuthenticator
	prom *observability.Prom
}

func NewAuthHandler(a SessionAuthenticator, prom *observability.Prom) *AuthHandler {
	return &AuthHandler{auth: a, prom: prom}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		RespondBadRequest(ctx, "Email and password are required")
		return
	}

	sess, err := h.auth.Login(req.Email, req.Password)

	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.countLogin("rejected")
			RespondUnAuthorized(ctx, err.Error())
			return
		}

		RespondInternal(ctx, "Could not create session")
		return
	}

	h.countLogin("ok")

	RespondData(ctx, gin.H{
		"token": sess.Token,
		"user":  sess.User.Public(),
	})
}

// Logout runs behind RequireAuth, so the token here is always one the
// session store currently knows about.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	token := middlewares.BearerToken(ctx)

	h.auth.Logout(token)

	RespondMessage(ctx, "Logged out successfully")
}

// Me returns the snapshot captured at login, not a live lookup.
func (h *AuthHandler) Me(ctx *gin.Context) {
	u, ok := middlewares.UserFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, auth.ErrMissingToken.Error())
		return
	}

	RespondData(ctx, u.Public())
}

func (h *AuthHandler) countLogin(result string) {
	if h.prom != nil {
		h.prom.LoginsTotal.WithLabelValues(result).Inc()
	}
}
