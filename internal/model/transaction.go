package model

import (
	"encoding/json"
	"time"
)

// Transaction types. Stored normalized lower-case.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction represents an income or expense record owned by a user.
// The JSON field names are the wire contract the frontend depends on.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTransactionRequest is the payload for creating a transaction.
// Amount is a json.Number so a numeric string like "50" is accepted and a
// non-numeric value maps to INVALID_AMOUNT rather than a decode failure.
type CreateTransactionRequest struct {
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
}

// UpdateTransactionRequest is a partial update; nil means field absent.
type UpdateTransactionRequest struct {
	Type        *string      `json:"type"`
	Amount      *json.Number `json:"amount"`
	Category    *string      `json:"category"`
	Description *string      `json:"description"`
	Date        *string      `json:"date"`
}
