// Package apperror defines the application error taxonomy. Every service
// failure is an *Error carrying a stable machine-readable code, a message
// safe to show to users, and the HTTP status the surface layer should emit.
// Raw database errors never cross the handler boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable machine-readable error code exposed to API clients.
type Code string

const (
	CodeMissingFields       Code = "MISSING_FIELDS"
	CodeUserExists          Code = "USER_EXISTS"
	CodeDuplicateEmail      Code = "DUPLICATE_EMAIL"
	CodeInvalidEmail        Code = "INVALID_EMAIL"
	CodeInvalidCredentials  Code = "INVALID_CREDENTIALS"
	CodeNoToken             Code = "NO_TOKEN"
	CodeInvalidToken        Code = "INVALID_TOKEN"
	CodeInvalidAmount       Code = "INVALID_AMOUNT"
	CodeInvalidType         Code = "INVALID_TYPE"
	CodeInvalidDate         Code = "INVALID_DATE"
	CodeTransactionNotFound Code = "TRANSACTION_NOT_FOUND"
	CodeEmptyUpdate         Code = "EMPTY_UPDATE"
	CodeInvalidIDFormat     Code = "INVALID_ID_FORMAT"
	CodeInvalidDataFormat   Code = "INVALID_DATA_FORMAT"
	CodeValidationError     Code = "VALIDATION_ERROR"
	CodeServerError         Code = "SERVER_ERROR"
)

// statusByCode maps each code to its canonical HTTP status. Domain and input
// failures are 400s; credential failures 401; a bad token at the gate 403.
var statusByCode = map[Code]int{
	CodeMissingFields:       http.StatusBadRequest,
	CodeUserExists:          http.StatusBadRequest,
	CodeDuplicateEmail:      http.StatusBadRequest,
	CodeInvalidEmail:        http.StatusUnauthorized,
	CodeInvalidCredentials:  http.StatusUnauthorized,
	CodeNoToken:             http.StatusUnauthorized,
	CodeInvalidToken:        http.StatusForbidden,
	CodeInvalidAmount:       http.StatusBadRequest,
	CodeInvalidType:         http.StatusBadRequest,
	CodeInvalidDate:         http.StatusBadRequest,
	CodeTransactionNotFound: http.StatusBadRequest,
	CodeEmptyUpdate:         http.StatusBadRequest,
	CodeInvalidIDFormat:     http.StatusBadRequest,
	CodeInvalidDataFormat:   http.StatusBadRequest,
	CodeValidationError:     http.StatusBadRequest,
	CodeServerError:         http.StatusInternalServerError,
}

// Error is a coded application error.
type Error struct {
	Code    Code
	Message string
	Err     error // underlying cause, logged but never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status the surface layer should respond with.
func (e *Error) Status() int {
	if s, ok := statusByCode[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// New creates a coded error with a display-safe message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error that records an underlying cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// From extracts an *Error from err's chain. Anything that is not a coded
// error collapses to SERVER_ERROR so clients only ever see stable codes.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(CodeServerError, "Internal server error occurred", err)
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
