package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlab/fintrack/internal/domain/user"
)

type UserStore interface {
	CreateUser(req user.CreateUserRequest) user.User
	GetUser(id int64) (user.User, error)
	UpdateUser(id int64, req user.UpdateUserRequest) (user.User, error)
	DeleteUser(id int64) (user.User, error)
}

type UsersHandler struct {
	store UserStore
}

func NewUsersHandler(store UserStore) *UsersHandler {
	return &UsersHandler{store: store}
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := user.ValidateCreate(req); err != nil {
		RespondBadRequest(ctx, err.Error())
		return
	}

	RespondData(ctx, h.store.CreateUser(req))
}

func (h *UsersHandler) GetUserByID(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))

	if err != nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	u, err := h.store.GetUser(id)

	if err != nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	RespondData(ctx, u)
}

// UpdateUser checks existence before validating the payload: an unknown id
// answers 404 even when the body is also bad.
func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))

	if err != nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	if _, err := h.store.GetUser(id); err != nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := user.ValidateUpdate(req); err != nil {
		RespondBadRequest(ctx, err.Error())
		return
	}

	updated, err := h.store.UpdateUser(id, req)

	if err != nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	RespondData(ctx, updated)
}

// DeleteUser cascades to the user's own transactions. Transactions naming
// the user as a recipient keep their dangling reference.
func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))

	if err != nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	deleted, err := h.store.DeleteUser(id)

	if err != nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	RespondData(ctx, deleted)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
