package lending

import (
	"context"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// AddBook registers a new book in the initial Available status. A book with
// the same title and author is rejected as a duplicate.
func (e Engine) AddBook(ctx context.Context, title string, author string) (core.Book, error) {
	var book core.Book

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		exists, existsErr := s.Books().ExistsByTitleAndAuthor(ctx, title, author)
		if existsErr != nil {
			return existsErr
		}

		if exists {
			return core.ErrDuplicateBook
		}

		book = core.BuildBook(uuid.New(), title, author)

		return s.Books().Insert(ctx, book)
	})

	if err != nil {
		return core.Book{}, err
	}

	return book, nil
}

// GetBook loads a single book.
func (e Engine) GetBook(ctx context.Context, id uuid.UUID) (core.Book, error) {
	var book core.Book

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var lookupErr error
		book, lookupErr = s.Books().GetByID(ctx, id)

		return lookupErr
	})

	if err != nil {
		return core.Book{}, err
	}

	return book, nil
}

// ListBooks returns all books, including removed ones.
func (e Engine) ListBooks(ctx context.Context) ([]core.Book, error) {
	var books []core.Book

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var listErr error
		books, listErr = s.Books().List(ctx)

		return listErr
	})

	if err != nil {
		return nil, err
	}

	return books, nil
}

// UpdateBook changes a book's title and author. Removed books cannot be
// updated.
func (e Engine) UpdateBook(ctx context.Context, id uuid.UUID, title string, author string) (core.Book, error) {
	var book core.Book

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		var lookupErr error
		book, lookupErr = s.Books().GetByIDForUpdate(ctx, id)
		if lookupErr != nil {
			return lookupErr
		}

		if book.IsRemoved() {
			return core.ErrBookAlreadyRemoved
		}

		book.Title = title
		book.Author = author

		return s.Books().Update(ctx, book)
	})

	if err != nil {
		return core.Book{}, err
	}

	return book, nil
}

// RemoveBook marks a book as Removed. The record stays in the catalog and no
// further status transition is permitted. Legal from Available and
// CheckedOut; removing an already removed book is rejected.
func (e Engine) RemoveBook(ctx context.Context, id uuid.UUID) error {
	return e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		book, lookupErr := s.Books().GetByIDForUpdate(ctx, id)
		if lookupErr != nil {
			return lookupErr
		}

		nextStatus, decideErr := core.DecideRemoval(book.Status)
		if decideErr != nil {
			return decideErr
		}

		return s.Books().SetStatus(ctx, book.ID, nextStatus, nil)
	})
}
