package core

import (
	"github.com/google/uuid"
)

// BookStatus is the single source of truth for a book's lending eligibility.
type BookStatus string

const (
	StatusAvailable  BookStatus = "Available"
	StatusCheckedOut BookStatus = "CheckedOut"
	StatusRemoved    BookStatus = "Removed" // terminal
)

// Book is a catalog entity. Status and HolderID are mutated only by the
// lending engine; books are never physically deleted, removal is a status.
type Book struct {
	ID     uuid.UUID
	Title  string
	Author string
	Status BookStatus

	// HolderID is the member currently holding the copy, derived from the
	// ledger and kept in sync transactionally with Status. Nil unless the
	// status is CheckedOut.
	HolderID *uuid.UUID
}

// BuildBook creates a new Book in the initial Available status.
func BuildBook(id uuid.UUID, title string, author string) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Status: StatusAvailable,
	}
}

// IsRemoved reports whether the book has reached the terminal Removed status.
func (b Book) IsRemoved() bool {
	return b.Status == StatusRemoved
}
