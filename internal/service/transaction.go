package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elegantbudget/budget-go/internal/apperror"
	"github.com/elegantbudget/budget-go/internal/model"
	"github.com/elegantbudget/budget-go/internal/repository"
)

// dateFormats are accepted on input. Dates are stored with their time
// component when one is given.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// TransactionStore is the persistence surface the transaction service
// depends on. Every operation is scoped to the owning user.
type TransactionStore interface {
	Create(ctx context.Context, txn *model.Transaction) error
	GetByID(ctx context.Context, id, userID string) (*model.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]model.Transaction, error)
	Update(ctx context.Context, id, userID string, patch repository.TransactionPatch) (*model.Transaction, error)
	Delete(ctx context.Context, id, userID string) error
}

// TransactionService handles transaction CRUD on behalf of the
// authenticated user.
type TransactionService struct {
	store TransactionStore
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

// Create validates and persists a new transaction owned by userID.
// Description defaults to the empty string.
func (s *TransactionService) Create(ctx context.Context, userID string, req model.CreateTransactionRequest) (*model.Transaction, error) {
	if userID == "" || req.Type == "" || req.Amount.String() == "" || req.Category == "" || req.Date == "" {
		return nil, apperror.New(apperror.CodeMissingFields,
			"All fields (type, amount, category, date) are required")
	}

	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperror.New(apperror.CodeInvalidDataFormat, "Invalid data format")
	}

	amount, err := req.Amount.Float64()
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidAmount,
			"Amount must be a valid number")
	}
	if amount <= 0 {
		return nil, apperror.New(apperror.CodeInvalidAmount,
			"Amount must be greater than 0")
	}

	txnType, ok := normalizeType(req.Type)
	if !ok {
		return nil, apperror.New(apperror.CodeInvalidType,
			`Type must be either "income" or "expense"`)
	}

	date, ok := parseDate(req.Date)
	if !ok {
		return nil, apperror.New(apperror.CodeInvalidDate, "Invalid date format")
	}

	txn := &model.Transaction{
		UserID:      userID,
		Type:        txnType,
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}

	if err := s.store.Create(ctx, txn); err != nil {
		if errors.Is(err, repository.ErrInvalidData) {
			return nil, apperror.Wrap(apperror.CodeValidationError, "Validation failed", err)
		}
		return nil, apperror.Wrap(apperror.CodeServerError,
			"Internal server error occurred", err)
	}

	return txn, nil
}

// List returns all of the user's transactions, newest date first. An empty
// result is success with an empty sequence.
func (s *TransactionService) List(ctx context.Context, userID string) ([]model.Transaction, error) {
	txns, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeServerError,
			"Failed to fetch transactions", err)
	}
	if txns == nil {
		txns = []model.Transaction{}
	}
	return txns, nil
}

// Update applies a whitelisted partial update to a transaction the user
// owns. An unrecognized type value is silently dropped from the patch
// rather than rejected; this lenient asymmetry with Create is deliberate.
func (s *TransactionService) Update(ctx context.Context, txnID, userID string, req model.UpdateTransactionRequest) (*model.Transaction, error) {
	if txnID == "" || userID == "" {
		return nil, apperror.New(apperror.CodeMissingFields,
			"Transaction ID and User ID are required")
	}

	if _, err := uuid.Parse(txnID); err != nil {
		return nil, apperror.New(apperror.CodeInvalidIDFormat,
			"Invalid transaction ID format")
	}

	// Owner-scoped lookup: a transaction that exists but belongs to someone
	// else is reported exactly like one that does not exist.
	if _, err := s.store.GetByID(ctx, txnID, userID); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, apperror.New(apperror.CodeTransactionNotFound,
				"Transaction not found or unauthorized")
		}
		return nil, apperror.Wrap(apperror.CodeServerError,
			"Internal server error occurred", err)
	}

	patch, err := sanitizePatch(req)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperror.New(apperror.CodeEmptyUpdate, "No valid fields to update")
	}

	updated, err := s.store.Update(ctx, txnID, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTransactionNotFound):
			return nil, apperror.New(apperror.CodeTransactionNotFound,
				"Transaction not found or unauthorized")
		case errors.Is(err, repository.ErrInvalidData):
			return nil, apperror.Wrap(apperror.CodeValidationError, "Validation failed", err)
		default:
			return nil, apperror.Wrap(apperror.CodeServerError,
				"Internal server error occurred", err)
		}
	}

	return updated, nil
}

// Delete removes a transaction the user owns.
func (s *TransactionService) Delete(ctx context.Context, txnID, userID string) error {
	if txnID == "" || userID == "" {
		return apperror.New(apperror.CodeMissingFields,
			"Transaction ID and User ID are required")
	}

	if _, err := uuid.Parse(txnID); err != nil {
		return apperror.New(apperror.CodeInvalidIDFormat,
			"Invalid transaction ID format")
	}

	if err := s.store.Delete(ctx, txnID, userID); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return apperror.New(apperror.CodeTransactionNotFound,
				"Transaction not found or unauthorized")
		}
		return apperror.Wrap(apperror.CodeServerError,
			"Internal server error occurred", err)
	}

	return nil
}

// sanitizePatch builds the whitelisted patch from the present fields.
// type: dropped unless it normalizes to income/expense.
// amount: present and <= 0 (or non-numeric) is an error.
// category: only taken when non-empty.
// description: any present value, including the empty string.
// date: present and unparseable is an error; present but empty is dropped.
func sanitizePatch(req model.UpdateTransactionRequest) (repository.TransactionPatch, error) {
	var patch repository.TransactionPatch

	if req.Type != nil {
		if t, ok := normalizeType(*req.Type); ok {
			patch.Type = &t
		}
	}

	if req.Amount != nil {
		amount, err := req.Amount.Float64()
		if err != nil {
			return patch, apperror.New(apperror.CodeInvalidAmount,
				"Amount must be a valid number")
		}
		if amount <= 0 {
			return patch, apperror.New(apperror.CodeInvalidAmount,
				"Amount must be greater than 0")
		}
		patch.Amount = &amount
	}

	if req.Category != nil && *req.Category != "" {
		patch.Category = req.Category
	}

	if req.Description != nil {
		patch.Description = req.Description
	}

	if req.Date != nil && *req.Date != "" {
		date, ok := parseDate(*req.Date)
		if !ok {
			return patch, apperror.New(apperror.CodeInvalidDate, "Invalid date format")
		}
		patch.Date = &date
	}

	return patch, nil
}

// normalizeType lower-cases the type and checks membership in the enum.
func normalizeType(t string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(t))
	if normalized == model.TypeIncome || normalized == model.TypeExpense {
		return normalized, true
	}
	return "", false
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
