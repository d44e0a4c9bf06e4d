package ledger

import (
	"context"
	"fmt"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

// Accountant maintains per-account star balances
type Accountant struct {
	store store.Store
}

// NewAccountant creates a stars accountant
func NewAccountant(s store.Store) *Accountant {
	return &Accountant{store: s}
}

// Balance retrieves the account for an address. The address is an identity:
// an absent account is indistinguishable from a zero balance, so one is
// created lazily.
func (a *Accountant) Balance(ctx context.Context, address string) (*schema.User, error) {
	if !domain.ValidAddress(address) {
		return nil, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	return a.store.EnsureUser(ctx, domain.NormalizeAddress(address))
}

// Credit atomically adds stars to an address, creating the account if absent
func (a *Accountant) Credit(ctx context.Context, address string, amount int64) (*schema.User, error) {
	if !domain.ValidAddress(address) {
		return nil, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive", domain.ErrValidation)
	}
	return a.store.CreditStars(ctx, domain.NormalizeAddress(address), amount)
}

// Debit atomically removes stars from an address. The balance check and the
// subtraction are one statement; the balance can never go negative.
func (a *Accountant) Debit(ctx context.Context, address string, amount int64) error {
	if !domain.ValidAddress(address) {
		return fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: debit amount must be positive", domain.ErrValidation)
	}
	return a.store.DebitStars(ctx, domain.NormalizeAddress(address), amount)
}
