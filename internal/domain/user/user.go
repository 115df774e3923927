package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Profile is the view returned by login and /auth/me: never the
// updatedAt stamp, never anything credential-shaped.
type Profile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
}

func (u User) Public() Profile {
	return Profile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AccountType: u.AccountType,
	}
}

// Account tiers. The tier doubles as the authorization role on admin routes.
const (
	AccountBasic      = "basic"
	AccountPremium    = "premium"
	AccountEnterprise = "enterprise"
)

var ErrNotFound = errors.New("user not found")

// Error strings below are part of the HTTP contract and surface verbatim.
var (
	ErrMissingFields = errors.New("Email is required, Valid account type is required")
	ErrInvalidEmail  = errors.New("Valid email format is required")
)

type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
}

// a full update payload, same shape as create.
type UpdateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
}

var validate = validator.New()

// ValidateCreate checks presence of all three fields and that the email
// at least contains an '@'. The account type is deliberately NOT checked
// against the known tiers: any non-empty value is accepted, matching the
// documented behavior of the API.
func ValidateCreate(req CreateUserRequest) error {
	return validateFields(req.Name, req.Email, req.AccountType)
}

func ValidateUpdate(req UpdateUserRequest) error {
	return validateFields(req.Name, req.Email, req.AccountType)
}

func validateFields(name, email, accountType string) error {
	if validate.Var(name, "required") != nil ||
		validate.Var(email, "required") != nil ||
		validate.Var(accountType, "required") != nil {
		return ErrMissingFields
	}

	if validate.Var(email, "contains=@") != nil {
		return ErrInvalidEmail
	}

	return nil
}
