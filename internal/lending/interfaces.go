package lending

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// BookStore persists catalog entities. Implementations must return
// core.ErrBookNotFound (wrapped or not) when a book does not exist.
type BookStore interface {
	Insert(ctx context.Context, book core.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (core.Book, error)
	// GetByIDForUpdate loads a book and locks its row for the remainder of
	// the surrounding unit of work, serializing concurrent status changes.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (core.Book, error)
	ExistsByTitleAndAuthor(ctx context.Context, title string, author string) (bool, error)
	Update(ctx context.Context, book core.Book) error
	// SetStatus changes the lending status and the derived holder reference
	// in one write. holderID must be nil unless status is CheckedOut.
	SetStatus(ctx context.Context, id uuid.UUID, status core.BookStatus, holderID *uuid.UUID) error
	List(ctx context.Context) ([]core.Book, error)
}

// MemberStore persists members. Implementations must return
// core.ErrMemberNotFound when a member does not exist.
type MemberStore interface {
	Insert(ctx context.Context, member core.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	Update(ctx context.Context, member core.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]core.Member, error)
}

// LedgerStore is the append-only transaction log. Entries are inserted and
// queried, never updated or deleted.
type LedgerStore interface {
	Append(ctx context.Context, entry core.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (core.Transaction, error)
	// OpenCheckOut returns the most recent CheckOut entry for the book that
	// has no later Return entry, i.e. the checkout that currently holds the
	// copy. found is false when the book is not checked out.
	OpenCheckOut(ctx context.Context, bookID uuid.UUID) (entry core.Transaction, found bool, err error)
	List(ctx context.Context) ([]core.Transaction, error)
	ListForMember(ctx context.Context, memberID uuid.UUID) ([]core.Transaction, error)
}

// HoldStore persists holds. Deactivation is the only mutation; holds are
// never physically deleted.
type HoldStore interface {
	Insert(ctx context.Context, hold core.Hold) error
	GetByID(ctx context.Context, id uuid.UUID) (core.Hold, error)
	HasActive(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID) (bool, error)
	// NextEligible returns the first active, unexpired hold for the book,
	// ordered by start time ascending (first requested, first served).
	// Expired holds are filtered out here, never cleaned up.
	NextEligible(ctx context.Context, bookID uuid.UUID, now time.Time) (hold core.Hold, found bool, err error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]core.Hold, error)
	ListForMember(ctx context.Context, memberID uuid.UUID) ([]core.Hold, error)
}

// Stores bundles the four stores bound to one atomicity boundary. A Stores
// value handed to a unit-of-work callback is only valid until the callback
// returns.
type Stores interface {
	Books() BookStore
	Members() MemberStore
	Ledger() LedgerStore
	Holds() HoldStore
}

// UnitOfWork executes fn as one atomic transaction against the shared store:
// either every write made through the supplied Stores is persisted, or none
// is. Returning an error from fn rolls the unit back and is passed through.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}
