package handler

import (
	"net/http"

	"github.com/elegantbudget/budget-go/internal/apperror"
	"github.com/elegantbudget/budget-go/internal/middleware"
	"github.com/elegantbudget/budget-go/internal/model"
	"github.com/elegantbudget/budget-go/internal/service"
)

// AuthHandler handles HTTP requests for signup, login, logout, and the
// authentication check.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignup handles POST /api/user/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.Signup(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"success": true,
	})
}

// HandleLogin handles POST /api/user/login requests. Every domain failure
// here is a 401 regardless of its cause; only unclassified faults are 500s.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		appErr := apperror.From(err)
		status := http.StatusUnauthorized
		if appErr.Code == apperror.CodeServerError {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorBody{
			Message: appErr.Message,
			Error:   string(appErr.Code),
		})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogout handles POST /api/user/logout requests. Tokens are
// stateless, so logout is a client-side discard; the server just confirms.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}

// HandleCheck handles GET /api/auth/check requests behind the token gate.
func (h *AuthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{
			Message: "User authentication failed",
			Error:   "USER_NOT_AUTHENTICATED",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}
