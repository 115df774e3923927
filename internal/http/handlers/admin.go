package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/domain/transaction"
	"github.com/ledgerlab/fintrack/internal/domain/user"
)

type UserLister interface {
	ListUsers() []user.User
}

type TransactionLister interface {
	ListTransactions() []transaction.Transaction
}

// AdminHandler serves the premium-gated listings. The gate itself lives in
// middleware; by the time these run the caller is known to be premium.
type AdminHandler struct {
	users        UserLister
	transactions TransactionLister
}

func NewAdminHandler(users UserLister, transactions TransactionLister) *AdminHandler {
	return &AdminHandler{users: users, transactions: transactions}
}

func (h *AdminHandler) ListUsers(ctx *gin.Context) {
	RespondData(ctx, h.users.ListUsers())
}

func (h *AdminHandler) ListTransactions(ctx *gin.Context) {
	RespondData(ctx, h.transactions.ListTransactions())
}
