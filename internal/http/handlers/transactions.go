package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/domain/transaction"
	"github.com/ledgerlab/fintrack/internal/http/middlewares"
)

type TransactionStore interface {
	CreateTransaction(req transaction.CreateTransactionRequest) transaction.Transaction
	GetTransaction(id int64) (transaction.Transaction, error)
	UpdateTransaction(id int64, req transaction.UpdateTransactionRequest) (transaction.Transaction, error)
	DeleteTransaction(id int64) (transaction.Transaction, error)
	ListTransactionsByUser(userID int64) []transaction.Transaction
}

type TransactionsHandler struct {
	store TransactionStore
}

func NewTransactionsHandler(store TransactionStore) *TransactionsHandler {
	return &TransactionsHandler{store: store}
}

// CreateTransaction performs no existence check on userId or recipientId;
// a transaction may reference ids that were never created.
func (h *TransactionsHandler) CreateTransaction(ctx *gin.Context) {
	var req transaction.CreateTransactionRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := transaction.ValidateCreate(req); err != nil {
		RespondBadRequest(ctx, err.Error())
		return
	}

	RespondData(ctx, h.store.CreateTransaction(req))
}

// ListByUser only ever serves the caller's own transactions; any other
// userId in the path is denied outright, whatever the caller's tier.
func (h *TransactionsHandler) ListByUser(ctx *gin.Context) {
	u, ok := middlewares.UserFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "Access token required")
		return
	}

	userID, err := parseID(ctx.Param("userId"))

	if err != nil || u.ID != userID {
		RespondForbidden(ctx, "Access denied: Can only view your own transactions")
		return
	}

	RespondData(ctx, h.store.ListTransactionsByUser(userID))
}

func (h *TransactionsHandler) UpdateTransaction(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))

	if err != nil {
		RespondNotFound(ctx, "Transaction not found")
		return
	}

	if _, err := h.store.GetTransaction(id); err != nil {
		RespondNotFound(ctx, "Transaction not found")
		return
	}

	var req transaction.UpdateTransactionRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := transaction.ValidateUpdate(req); err != nil {
		RespondBadRequest(ctx, err.Error())
		return
	}

	updated, err := h.store.UpdateTransaction(id, req)

	if err != nil {
		RespondNotFound(ctx, "Transaction not found")
		return
	}

	RespondData(ctx, updated)
}

func (h *TransactionsHandler) DeleteTransaction(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))

	if err != nil {
		RespondNotFound(ctx, "Transaction not found")
		return
	}

	deleted, err := h.store.DeleteTransaction(id)

	if err != nil {
		RespondNotFound(ctx, "Transaction not found")
		return
	}

	RespondData(ctx, deleted)
}
