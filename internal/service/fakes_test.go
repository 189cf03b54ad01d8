package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/elegantbudget/budget-go/internal/model"
	"github.com/elegantbudget/budget-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore mirroring the MySQL repository's
// contract, including the unique-email constraint.
type fakeUserStore struct {
	users map[string]*model.User // keyed by id
	err   error                  // when set, every call fails with it
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if s.err != nil {
		return s.err
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC().Truncate(time.Second)
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrUserNotFound
}

// fakeTransactionStore is an in-memory TransactionStore with owner-scoped
// predicates and date-descending list order, matching the MySQL repository.
type fakeTransactionStore struct {
	txns map[string]*model.Transaction
	err  error
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{txns: make(map[string]*model.Transaction)}
}

func (s *fakeTransactionStore) Create(_ context.Context, txn *model.Transaction) error {
	if s.err != nil {
		return s.err
	}
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	now := time.Now().UTC().Truncate(time.Second)
	txn.CreatedAt = now
	txn.UpdatedAt = now
	stored := *txn
	s.txns[txn.ID] = &stored
	return nil
}

func (s *fakeTransactionStore) GetByID(_ context.Context, id, userID string) (*model.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.txns[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *fakeTransactionStore) ListByUser(_ context.Context, userID string) ([]model.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []model.Transaction
	for _, t := range s.txns {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *fakeTransactionStore) Update(ctx context.Context, id, userID string, patch repository.TransactionPatch) (*model.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.txns[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrTransactionNotFound
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	t.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	copied := *t
	return &copied, nil
}

func (s *fakeTransactionStore) Delete(_ context.Context, id, userID string) error {
	if s.err != nil {
		return s.err
	}
	t, ok := s.txns[id]
	if !ok || t.UserID != userID {
		return repository.ErrTransactionNotFound
	}
	delete(s.txns, id)
	return nil
}
