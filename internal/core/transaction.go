package core

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind identifies the lending event a ledger entry records.
type TransactionKind string

const (
	KindCheckOut TransactionKind = "CheckOut"
	KindReturn   TransactionKind = "Return"
	KindRenewal  TransactionKind = "Renewal"
)

// LoanPeriod is how long a checkout or renewal lasts before the copy is due.
const LoanPeriod = 14 * 24 * time.Hour

// Transactions is an alias type for a slice of Transaction.
type Transactions = []Transaction

// Transaction is one append-only ledger entry. Once written it is never
// mutated or deleted. DueDate is set for CheckOut and Renewal entries and
// nil for Return entries.
type Transaction struct {
	ID         uuid.UUID
	MemberID   uuid.UUID
	BookID     uuid.UUID
	OccurredAt time.Time
	Kind       TransactionKind
	DueDate    *time.Time
}

// BuildCheckOutTransaction creates a CheckOut entry due LoanPeriod after now.
func BuildCheckOutTransaction(memberID uuid.UUID, bookID uuid.UUID, now time.Time) Transaction {
	due := now.Add(LoanPeriod)

	return Transaction{
		ID:         uuid.New(),
		MemberID:   memberID,
		BookID:     bookID,
		OccurredAt: now,
		Kind:       KindCheckOut,
		DueDate:    &due,
	}
}

// BuildReturnTransaction creates a Return entry. Returns carry no due date.
func BuildReturnTransaction(memberID uuid.UUID, bookID uuid.UUID, now time.Time) Transaction {
	return Transaction{
		ID:         uuid.New(),
		MemberID:   memberID,
		BookID:     bookID,
		OccurredAt: now,
		Kind:       KindReturn,
	}
}

// BuildRenewalTransaction creates a Renewal entry extending the due date to
// LoanPeriod after now. The book's status is unchanged by a renewal.
func BuildRenewalTransaction(memberID uuid.UUID, bookID uuid.UUID, now time.Time) Transaction {
	due := now.Add(LoanPeriod)

	return Transaction{
		ID:         uuid.New(),
		MemberID:   memberID,
		BookID:     bookID,
		OccurredAt: now,
		Kind:       KindRenewal,
		DueDate:    &due,
	}
}
