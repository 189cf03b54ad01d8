package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elegantbudget/budget-go/internal/apperror"
	"github.com/elegantbudget/budget-go/internal/crypto"
	"github.com/elegantbudget/budget-go/internal/model"
)

type contextKey string

const authUserKey contextKey = "authUser"

// Authenticate returns middleware that gates requests on a bearer token.
// The Authorization header is the sole token source; there is no cookie
// fallback. A missing token is a 401 NO_TOKEN, a bad or expired one a 403
// INVALID_TOKEN. On success the decoded identity is placed on the request
// context and the chain continues. The gate is stateless and has no side
// effects beyond that.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeAuthError(w, apperror.New(apperror.CodeNoToken,
					"Access token required - please login"))
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeAuthError(w, apperror.New(apperror.CodeInvalidToken,
					"Invalid or expired token - please login again"))
				return
			}

			user := model.AuthUser{
				ID:    claims.UserID,
				Name:  claims.Name,
				Email: claims.Email,
			}
			ctx := context.WithValue(r.Context(), authUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserFromContext extracts the authenticated identity set by Authenticate.
func UserFromContext(ctx context.Context) (model.AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(model.AuthUser)
	return user, ok
}

func writeAuthError(w http.ResponseWriter, err *apperror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Status())
	json.NewEncoder(w).Encode(map[string]string{
		"message": err.Message,
		"error":   string(err.Code),
	})
}
