package payment

import (
	"context"
	"sync"

	"chainpass/internal/domain"
)

// AccountBook is an in-memory ValueTransfer that credits transferred amounts
// to per-identity balances. Used in development mode and tests.
type AccountBook struct {
	mu       sync.Mutex
	balances map[string]int64
}

var _ domain.ValueTransfer = (*AccountBook)(nil)

// NewAccountBook returns an empty account book.
func NewAccountBook() *AccountBook {
	return &AccountBook{balances: make(map[string]int64)}
}

func (b *AccountBook) Transfer(ctx context.Context, to string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[to] += amount
	return nil
}

// BalanceOf returns the total amount credited to an identity.
func (b *AccountBook) BalanceOf(identity string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[identity]
}
