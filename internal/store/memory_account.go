package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// memoryAccountRepository is an in-process [AccountRepository] used when no
// database is configured. Accounts are keyed by normalised email, which
// makes the uniqueness check and the insert one step under the lock.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
	now      func() time.Time
}

// NewMemoryAccountRepository returns an empty in-memory [AccountRepository].
func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{
		accounts: make(map[string]models.Account),
		now:      time.Now,
	}
}

func (r *memoryAccountRepository) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Email]; exists {
		return models.Account{}, ErrEmailAlreadyExists
	}

	account.CreatedAt = r.now().UTC()
	r.accounts[account.Email] = account

	return account, nil
}

func (r *memoryAccountRepository) FindAccountByEmail(_ context.Context, email string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	return account, nil
}
