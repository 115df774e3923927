package user_test

import (
	"errors"
	"testing"

	"github.com/ledgerlab/fintrack/internal/domain/user"
)

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		req     user.CreateUserRequest
		wantErr error
	}{
		{
			name:    "valid basic user",
			req:     user.CreateUserRequest{Name: "Alice", Email: "alice@example.com", AccountType: user.AccountBasic},
			wantErr: nil,
		},
		{
			name:    "missing name",
			req:     user.CreateUserRequest{Email: "alice@example.com", AccountType: user.AccountBasic},
			wantErr: user.ErrMissingFields,
		},
		{
			name:    "missing email",
			req:     user.CreateUserRequest{Name: "Alice", AccountType: user.AccountBasic},
			wantErr: user.ErrMissingFields,
		},
		{
			name:    "missing account type",
			req:     user.CreateUserRequest{Name: "Alice", Email: "alice@example.com"},
			wantErr: user.ErrMissingFields,
		},
		{
			name:    "email without at sign",
			req:     user.CreateUserRequest{Name: "Alice", Email: "alice.example.com", AccountType: user.AccountBasic},
			wantErr: user.ErrInvalidEmail,
		},
		{
			// only presence is checked: the tier list is not enforced
			name:    "unknown account type accepted",
			req:     user.CreateUserRequest{Name: "Alice", Email: "alice@example.com", AccountType: "platinum"},
			wantErr: nil,
		},
		{
			// the '@' check is the whole email validation
			name:    "barely an email",
			req:     user.CreateUserRequest{Name: "Alice", Email: "@", AccountType: user.AccountPremium},
			wantErr: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := user.ValidateCreate(tc.req)

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ValidateCreate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateUpdateMatchesCreate(t *testing.T) {
	req := user.UpdateUserRequest{Name: "Bob", Email: "no-at-sign", AccountType: user.AccountEnterprise}

	if err := user.ValidateUpdate(req); !errors.Is(err, user.ErrInvalidEmail) {
		t.Fatalf("ValidateUpdate() = %v, want %v", err, user.ErrInvalidEmail)
	}
}

func TestPublicStripsUpdatedAt(t *testing.T) {
	u := user.User{
		ID:          7,
		Name:        "Alice",
		Email:       "alice@example.com",
		AccountType: user.AccountPremium,
		UpdatedAt:   "2026-01-02T03:04:05.000Z",
	}

	p := u.Public()

	if p.ID != 7 || p.Name != "Alice" || p.Email != "alice@example.com" || p.AccountType != user.AccountPremium {
		t.Fatalf("Public() dropped identity fields: %+v", p)
	}
}
