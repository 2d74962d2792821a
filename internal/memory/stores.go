package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"library-lending/internal/core"
	"library-lending/internal/lending"
)

// Stores holds all records in plain maps plus an insertion-ordered ledger
// slice. Access is serialized by the UnitOfWork; the stores themselves do no
// locking.
type Stores struct {
	books   map[uuid.UUID]core.Book
	members map[uuid.UUID]core.Member
	ledger  []core.Transaction
	holds   map[uuid.UUID]core.Hold
}

// NewStores creates an empty in-memory store set.
func NewStores() *Stores {
	return &Stores{
		books:   make(map[uuid.UUID]core.Book),
		members: make(map[uuid.UUID]core.Member),
		ledger:  make([]core.Transaction, 0),
		holds:   make(map[uuid.UUID]core.Hold),
	}
}

// Books implements lending.Stores.
func (s *Stores) Books() lending.BookStore { return bookStore{s} }

// Members implements lending.Stores.
func (s *Stores) Members() lending.MemberStore { return memberStore{s} }

// Ledger implements lending.Stores.
func (s *Stores) Ledger() lending.LedgerStore { return ledgerStore{s} }

// Holds implements lending.Stores.
func (s *Stores) Holds() lending.HoldStore { return holdStore{s} }

func (s *Stores) snapshot() *Stores {
	clone := NewStores()

	for id, book := range s.books {
		clone.books[id] = book
	}

	for id, member := range s.members {
		clone.members[id] = member
	}

	clone.ledger = append(clone.ledger, s.ledger...)

	for id, hold := range s.holds {
		clone.holds[id] = hold
	}

	return clone
}

func (s *Stores) restore(from *Stores) {
	s.books = from.books
	s.members = from.members
	s.ledger = from.ledger
	s.holds = from.holds
}

type bookStore struct{ s *Stores }

func (bs bookStore) Insert(_ context.Context, book core.Book) error {
	bs.s.books[book.ID] = book
	return nil
}

func (bs bookStore) GetByID(_ context.Context, id uuid.UUID) (core.Book, error) {
	book, ok := bs.s.books[id]
	if !ok {
		return core.Book{}, core.ErrBookNotFound
	}

	return book, nil
}

// GetByIDForUpdate is a plain read here; the unit of work already serializes
// all access.
func (bs bookStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (core.Book, error) {
	return bs.GetByID(ctx, id)
}

func (bs bookStore) ExistsByTitleAndAuthor(_ context.Context, title string, author string) (bool, error) {
	for _, book := range bs.s.books {
		if book.Title == title && book.Author == author {
			return true, nil
		}
	}

	return false, nil
}

func (bs bookStore) Update(_ context.Context, book core.Book) error {
	if _, ok := bs.s.books[book.ID]; !ok {
		return core.ErrBookNotFound
	}

	bs.s.books[book.ID] = book

	return nil
}

func (bs bookStore) SetStatus(_ context.Context, id uuid.UUID, status core.BookStatus, holderID *uuid.UUID) error {
	book, ok := bs.s.books[id]
	if !ok {
		return core.ErrBookNotFound
	}

	book.Status = status
	book.HolderID = holderID
	bs.s.books[id] = book

	return nil
}

func (bs bookStore) List(_ context.Context) ([]core.Book, error) {
	books := make([]core.Book, 0, len(bs.s.books))
	for _, book := range bs.s.books {
		books = append(books, book)
	}

	sort.Slice(books, func(i, j int) bool { return books[i].ID.String() < books[j].ID.String() })

	return books, nil
}

type memberStore struct{ s *Stores }

func (ms memberStore) Insert(_ context.Context, member core.Member) error {
	ms.s.members[member.ID] = member
	return nil
}

func (ms memberStore) GetByID(_ context.Context, id uuid.UUID) (core.Member, error) {
	member, ok := ms.s.members[id]
	if !ok {
		return core.Member{}, core.ErrMemberNotFound
	}

	return member, nil
}

func (ms memberStore) Update(_ context.Context, member core.Member) error {
	if _, ok := ms.s.members[member.ID]; !ok {
		return core.ErrMemberNotFound
	}

	ms.s.members[member.ID] = member

	return nil
}

func (ms memberStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := ms.s.members[id]; !ok {
		return core.ErrMemberNotFound
	}

	delete(ms.s.members, id)

	return nil
}

func (ms memberStore) List(_ context.Context) ([]core.Member, error) {
	members := make([]core.Member, 0, len(ms.s.members))
	for _, member := range ms.s.members {
		members = append(members, member)
	}

	sort.Slice(members, func(i, j int) bool { return members[i].ID.String() < members[j].ID.String() })

	return members, nil
}

type ledgerStore struct{ s *Stores }

func (ls ledgerStore) Append(_ context.Context, entry core.Transaction) error {
	ls.s.ledger = append(ls.s.ledger, entry)
	return nil
}

func (ls ledgerStore) GetByID(_ context.Context, id uuid.UUID) (core.Transaction, error) {
	for _, entry := range ls.s.ledger {
		if entry.ID == id {
			return entry, nil
		}
	}

	return core.Transaction{}, core.ErrTransactionNotFound
}

func (ls ledgerStore) OpenCheckOut(_ context.Context, bookID uuid.UUID) (core.Transaction, bool, error) {
	// Walk backwards: the most recent entry for the book decides.
	for i := len(ls.s.ledger) - 1; i >= 0; i-- {
		entry := ls.s.ledger[i]
		if entry.BookID != bookID {
			continue
		}

		switch entry.Kind {
		case core.KindCheckOut:
			return entry, true, nil
		case core.KindReturn:
			return core.Transaction{}, false, nil
		}
	}

	return core.Transaction{}, false, nil
}

func (ls ledgerStore) List(_ context.Context) ([]core.Transaction, error) {
	entries := make([]core.Transaction, len(ls.s.ledger))
	copy(entries, ls.s.ledger)

	return entries, nil
}

func (ls ledgerStore) ListForMember(_ context.Context, memberID uuid.UUID) ([]core.Transaction, error) {
	entries := make([]core.Transaction, 0)
	for _, entry := range ls.s.ledger {
		if entry.MemberID == memberID {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

type holdStore struct{ s *Stores }

func (hs holdStore) Insert(_ context.Context, hold core.Hold) error {
	hs.s.holds[hold.ID] = hold
	return nil
}

func (hs holdStore) GetByID(_ context.Context, id uuid.UUID) (core.Hold, error) {
	hold, ok := hs.s.holds[id]
	if !ok {
		return core.Hold{}, core.ErrHoldNotFound
	}

	return hold, nil
}

func (hs holdStore) HasActive(_ context.Context, memberID uuid.UUID, bookID uuid.UUID) (bool, error) {
	for _, hold := range hs.s.holds {
		if hold.Active && hold.MemberID == memberID && hold.BookID == bookID {
			return true, nil
		}
	}

	return false, nil
}

func (hs holdStore) NextEligible(_ context.Context, bookID uuid.UUID, now time.Time) (core.Hold, bool, error) {
	eligible := make([]core.Hold, 0)
	for _, hold := range hs.s.holds {
		if hold.BookID == bookID && hold.IsEligible(now) {
			eligible = append(eligible, hold)
		}
	}

	if len(eligible) == 0 {
		return core.Hold{}, false, nil
	}

	sort.Slice(eligible, func(i, j int) bool { return eligible[i].StartAt.Before(eligible[j].StartAt) })

	return eligible[0], true, nil
}

func (hs holdStore) Deactivate(_ context.Context, id uuid.UUID) error {
	hold, ok := hs.s.holds[id]
	if !ok {
		return core.ErrHoldNotFound
	}

	hold.Active = false
	hs.s.holds[id] = hold

	return nil
}

func (hs holdStore) List(_ context.Context) ([]core.Hold, error) {
	holds := make([]core.Hold, 0, len(hs.s.holds))
	for _, hold := range hs.s.holds {
		holds = append(holds, hold)
	}

	sort.Slice(holds, func(i, j int) bool { return holds[i].StartAt.Before(holds[j].StartAt) })

	return holds, nil
}

func (hs holdStore) ListForMember(_ context.Context, memberID uuid.UUID) ([]core.Hold, error) {
	holds := make([]core.Hold, 0)
	for _, hold := range hs.s.holds {
		if hold.MemberID == memberID {
			holds = append(holds, hold)
		}
	}

	sort.Slice(holds, func(i, j int) bool { return holds[i].StartAt.Before(holds[j].StartAt) })

	return holds, nil
}
