package lending

import (
	"context"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// GetTransaction loads a single ledger entry.
func (e Engine) GetTransaction(ctx context.Context, id uuid.UUID) (core.Transaction, error) {
	var entry core.Transaction

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var lookupErr error
		entry, lookupErr = s.Ledger().GetByID(ctx, id)

		return lookupErr
	})

	if err != nil {
		return core.Transaction{}, err
	}

	return entry, nil
}

// ListTransactions returns the full ledger, oldest first.
func (e Engine) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	var entries []core.Transaction

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var listErr error
		entries, listErr = s.Ledger().List(ctx)

		return listErr
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ListMemberTransactions returns the ledger entries for one member, oldest
// first. The member must exist.
func (e Engine) ListMemberTransactions(ctx context.Context, memberID uuid.UUID) ([]core.Transaction, error) {
	var entries []core.Transaction

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		if _, lookupErr := s.Members().GetByID(ctx, memberID); lookupErr != nil {
			return lookupErr
		}

		var listErr error
		entries, listErr = s.Ledger().ListForMember(ctx, memberID)

		return listErr
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// CurrentHolder resolves who currently holds a book: the most recent
// CheckOut entry with no later Return. found is false for a book that is not
// checked out.
func (e Engine) CurrentHolder(ctx context.Context, bookID uuid.UUID) (core.Transaction, bool, error) {
	var entry core.Transaction
	var found bool

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		if _, lookupErr := s.Books().GetByID(ctx, bookID); lookupErr != nil {
			return lookupErr
		}

		var queryErr error
		entry, found, queryErr = s.Ledger().OpenCheckOut(ctx, bookID)

		return queryErr
	})

	if err != nil {
		return core.Transaction{}, false, err
	}

	return entry, found, nil
}

// GetHold loads a single hold.
func (e Engine) GetHold(ctx context.Context, id uuid.UUID) (core.Hold, error) {
	var hold core.Hold

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var lookupErr error
		hold, lookupErr = s.Holds().GetByID(ctx, id)

		return lookupErr
	})

	if err != nil {
		return core.Hold{}, err
	}

	return hold, nil
}

// ListHolds returns all holds, active or not.
func (e Engine) ListHolds(ctx context.Context) ([]core.Hold, error) {
	var holds []core.Hold

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var listErr error
		holds, listErr = s.Holds().List(ctx)

		return listErr
	})

	if err != nil {
		return nil, err
	}

	return holds, nil
}

// ListMemberHolds returns all holds placed by one member. The member must
// exist.
func (e Engine) ListMemberHolds(ctx context.Context, memberID uuid.UUID) ([]core.Hold, error) {
	var holds []core.Hold

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		if _, lookupErr := s.Members().GetByID(ctx, memberID); lookupErr != nil {
			return lookupErr
		}

		var listErr error
		holds, listErr = s.Holds().ListForMember(ctx, memberID)

		return listErr
	})

	if err != nil {
		return nil, err
	}

	return holds, nil
}
