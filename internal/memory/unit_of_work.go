package memory

import (
	"context"
	"sync"

	"library-lending/internal/lending"
)

// UnitOfWork serializes units of work behind one mutex and rolls back to a
// snapshot when the callback fails. Within a unit no other goroutine can
// observe intermediate state, which gives the same guarantee as the database
// transaction in the postgres implementation.
type UnitOfWork struct {
	mu     sync.Mutex
	stores *Stores
}

// NewUnitOfWork creates a UnitOfWork over the given store set.
func NewUnitOfWork(stores *Stores) *UnitOfWork {
	return &UnitOfWork{stores: stores}
}

// Execute implements lending.UnitOfWork.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, s lending.Stores) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	before := u.stores.snapshot()

	if err := fn(ctx, u.stores); err != nil {
		u.stores.restore(before)
		return err
	}

	return nil
}
