package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elegantbudget/budget-go/internal/middleware"
	"github.com/elegantbudget/budget-go/internal/model"
	"github.com/elegantbudget/budget-go/internal/service"
)

// TransactionHandler handles HTTP requests for transaction CRUD. Every
// route sits behind the token gate; the owner id always comes from the
// verified identity, never from the request body.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: svc}
}

func authUser(w http.ResponseWriter, r *http.Request) (model.AuthUser, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{
			Message: "User authentication failed",
			Error:   "USER_NOT_AUTHENTICATED",
		})
	}
	return user, ok
}

// HandleCreate handles POST /api/transaction requests.
func (h *TransactionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := authUser(w, r)
	if !ok {
		return
	}

	var req model.CreateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	txn, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Transaction created successfully",
		"success":     true,
		"transaction": txn,
	})
}

// HandleList handles GET /api/transactions requests.
func (h *TransactionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := authUser(w, r)
	if !ok {
		return
	}

	txns, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Transactions fetched successfully",
		"success":      true,
		"transactions": txns,
	})
}

// HandleUpdate handles PUT /api/transaction/{id} requests.
func (h *TransactionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := authUser(w, r)
	if !ok {
		return
	}

	var req model.UpdateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	txn, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), user.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Transaction updated successfully",
		"success":     true,
		"transaction": txn,
	})
}

// HandleDelete handles DELETE /api/transaction/{id} requests.
func (h *TransactionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := authUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Transaction deleted successfully",
		"success": true,
	})
}
