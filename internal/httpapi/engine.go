package httpapi

import (
	"context"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// Engine is the surface of the lending engine consumed by the HTTP handlers.
type Engine interface {
	AddBook(ctx context.Context, title string, author string) (core.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (core.Book, error)
	ListBooks(ctx context.Context) ([]core.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, title string, author string) (core.Book, error)
	RemoveBook(ctx context.Context, id uuid.UUID) error
	CurrentHolder(ctx context.Context, bookID uuid.UUID) (core.Transaction, bool, error)

	RegisterMember(ctx context.Context, name string, phone string, address string, role core.MemberRole) (core.Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (core.Member, error)
	ListMembers(ctx context.Context) ([]core.Member, error)
	UpdateMember(ctx context.Context, id uuid.UUID, name string, phone string, address string, role core.MemberRole) (core.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	ListMemberTransactions(ctx context.Context, memberID uuid.UUID) ([]core.Transaction, error)
	ListMemberHolds(ctx context.Context, memberID uuid.UUID) ([]core.Hold, error)

	RecordTransaction(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID, kind core.TransactionKind) (core.Transactions, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (core.Transaction, error)
	ListTransactions(ctx context.Context) ([]core.Transaction, error)

	PlaceHold(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID) (core.Hold, error)
	GetHold(ctx context.Context, id uuid.UUID) (core.Hold, error)
	ListHolds(ctx context.Context) ([]core.Hold, error)
	CancelHold(ctx context.Context, holdID uuid.UUID) error
}
