package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/elegantbudget/budget-go/internal/apperror"
)

// errorBody is the failure wire shape: a display-safe message plus the
// stable machine code. Stack traces and driver errors never appear here.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps any service error to its HTTP status and JSON body.
func writeError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	if appErr.Status() >= http.StatusInternalServerError {
		slog.Error("request failed", "code", appErr.Code, "error", appErr)
	}
	writeJSON(w, appErr.Status(), errorBody{
		Message: appErr.Message,
		Error:   string(appErr.Code),
	})
}

// decodeBody decodes a JSON request body with a 1MB cap.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{
				Message: "Request body too large",
				Error:   string(apperror.CodeValidationError),
			})
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorBody{
			Message: "Invalid request body",
			Error:   string(apperror.CodeValidationError),
		})
		return false
	}
	return true
}
