package transaction

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type Transaction struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	RecipientID *int64  `json:"recipientId"`
	Timestamp   string  `json:"timestamp"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
	TypeTransfer   = "transfer"
)

var ErrNotFound = errors.New("transaction not found")

// Error strings below are part of the HTTP contract and surface verbatim.
// Create and update report missing fields with different wording.
var (
	ErrMissingFields       = errors.New("Missing required fields")
	ErrMissingUpdateFields = errors.New("User ID, amount, and type are required")
	ErrInvalidAmount       = errors.New("Valid amount is required")
	ErrMissingRecipient    = errors.New("Recipient ID is required for transfers")
)

type CreateTransactionRequest struct {
	UserID      int64   `json:"userId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	RecipientID *int64  `json:"recipientId"`
}

type UpdateTransactionRequest struct {
	UserID      int64   `json:"userId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	RecipientID *int64  `json:"recipientId"`
}

var validate = validator.New()

// ValidateCreate runs presence checks before value checks, so a zero
// amount reads as a missing field, not an invalid one. The type field is
// not restricted to the known kinds; only transfers get the recipient
// rule. No existence check is made against the user store on either id.
func ValidateCreate(req CreateTransactionRequest) error {
	return validateFields(req.UserID, req.Amount, req.Type, req.RecipientID, ErrMissingFields)
}

func ValidateUpdate(req UpdateTransactionRequest) error {
	return validateFields(req.UserID, req.Amount, req.Type, req.RecipientID, ErrMissingUpdateFields)
}

func validateFields(userID int64, amount float64, txType string, recipientID *int64, missing error) error {
	if validate.Var(userID, "required") != nil ||
		validate.Var(amount, "required") != nil ||
		validate.Var(txType, "required") != nil {
		return missing
	}

	if validate.Var(amount, "gt=0") != nil {
		return ErrInvalidAmount
	}

	if txType == TypeTransfer && (recipientID == nil || *recipientID == 0) {
		return ErrMissingRecipient
	}

	return nil
}
