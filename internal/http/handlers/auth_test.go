package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/auth"
	"github.com/ledgerlab/fintrack/internal/domain/session"
	"github.com/ledgerlab/fintrack/internal/domain/user"
	"github.com/ledgerlab/fintrack/internal/http/handlers"
	"github.com/ledgerlab/fintrack/internal/http/middlewares"
)

// Fake implementation of the handlers.SessionAuthenticator interface

type fakeAuthenticator struct {
	loginFn   func(email, password string) (session.Session, error)
	loggedOut []string
}

func (f *fakeAuthenticator) Login(email, password string) (session.Session, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return session.Session{}, nil
}

func (f *fakeAuthenticator) Logout(token string) {
	f.loggedOut = append(f.loggedOut, token)
}

func TestLoginHandler(t *testing.T) {
	alice := user.User{ID: 1, Name: "Alice", Email: "alice@example.com", AccountType: "basic", UpdatedAt: "2026-01-02T03:04:05.000Z"}

	tests := []struct {
		name       string
		body       string
		loginFn    func(email, password string) (session.Session, error)
		wantStatus int
		wantError  string
	}{
		{
			name: "valid credentials",
			body: `{"email":"alice@example.com","password":"s3cret"}`,
			loginFn: func(email, password string) (session.Session, error) {
				return session.Session{ID: 1, Token: "tok-abc", UserID: alice.ID, User: alice}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing email",
			body:       `{"password":"s3cret"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name:       "missing password",
			body:       `{"email":"alice@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name: "bad credentials",
			body: `{"email":"alice@example.com","password":"nope"}`,
			loginFn: func(email, password string) (session.Session, error) {
				return session.Session{}, auth.ErrInvalidCredentials
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid credentials",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := handlers.NewAuthHandler(&fakeAuthenticator{loginFn: tc.loginFn}, nil)
			r := setupRouter(http.MethodPost, "/api/auth/login", h.Login)

			w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", tc.body)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.wantStatus, w.Body.String())
			}

			if tc.wantError != "" {
				if env.Error != tc.wantError {
					t.Fatalf("error = %q, want %q", env.Error, tc.wantError)
				}
				return
			}

			var data struct {
				Token string       `json:"token"`
				User  user.Profile `json:"user"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("decode data: %v", err)
			}

			if data.Token != "tok-abc" {
				t.Fatalf("token = %q", data.Token)
			}
			if data.User.ID != alice.ID || data.User.Email != alice.Email {
				t.Fatalf("unexpected user view: %+v", data.User)
			}

			// the login view must not leak the updatedAt stamp
			var rawData map[string]json.RawMessage
			if err := json.Unmarshal(env.Data, &rawData); err != nil {
				t.Fatalf("decode raw data: %v", err)
			}
			var rawUser map[string]json.RawMessage
			if err := json.Unmarshal(rawData["user"], &rawUser); err != nil {
				t.Fatalf("decode raw user: %v", err)
			}
			if _, ok := rawUser["updatedAt"]; ok {
				t.Fatal("login data leaked updatedAt")
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	fake := &fakeAuthenticator{}
	h := handlers.NewAuthHandler(fake, nil)

	r := gin.New()
	r.POST("/api/auth/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-abc")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Message != "Logged out successfully" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}

	if len(fake.loggedOut) != 1 || fake.loggedOut[0] != "tok-abc" {
		t.Fatalf("logout token = %v", fake.loggedOut)
	}
}

func TestMeHandlerServesSnapshot(t *testing.T) {
	snapshot := user.User{ID: 3, Name: "Carol", Email: "carol@example.com", AccountType: "premium"}

	h := handlers.NewAuthHandler(&fakeAuthenticator{}, nil)

	r := gin.New()
	r.GET("/api/auth/me", func(c *gin.Context) {
		middlewares.WithUser(c, snapshot)
		c.Next()
	}, h.Me)

	w, env := doJSON(t, r, http.MethodGet, "/api/auth/me", "")
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %s", w.Code, w.Body.String())
	}

	var got user.Profile
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.ID != 3 || got.AccountType != "premium" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}
