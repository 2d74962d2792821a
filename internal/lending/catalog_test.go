package lending_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-lending/internal/core"
)

func Test_Engine_AddBook_CreatesAvailableBook(t *testing.T) {
	// arrange
	env := givenEngine(t)

	// act
	book, err := env.engine.AddBook(context.Background(), "The Go Programming Language", "Donovan and Kernighan")

	// assert
	require.NoError(t, err, "Adding a book should succeed")
	assert.Equal(t, core.StatusAvailable, book.Status)
	assert.Nil(t, book.HolderID)
}

func Test_Engine_AddBook_RejectsDuplicateTitleAndAuthor(t *testing.T) {
	// arrange
	env := givenEngine(t)
	env.givenBook(t, "Design Patterns", "Gang of Four")

	// act
	_, err := env.engine.AddBook(context.Background(), "Design Patterns", "Gang of Four")

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateBook)
	assert.ErrorIs(t, err, core.ErrConflict)
}

func Test_Engine_UpdateBook_ChangesTitleAndAuthor(t *testing.T) {
	// arrange
	env := givenEngine(t)
	book := env.givenBook(t, "Draft Title", "Draft Author")

	// act
	updated, err := env.engine.UpdateBook(context.Background(), book.ID, "Final Title", "Final Author")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Final Title", updated.Title)
	assert.Equal(t, "Final Author", updated.Author)

	reloaded := env.mustGetBook(t, book.ID)
	assert.Equal(t, "Final Title", reloaded.Title)
}

func Test_Engine_UpdateBook_RejectsRemovedBook(t *testing.T) {
	// arrange
	env := givenEngine(t)
	book := env.givenBook(t, "Old Edition", "Some Author")

	err := env.engine.RemoveBook(context.Background(), book.ID)
	require.NoError(t, err)

	// act
	_, err = env.engine.UpdateBook(context.Background(), book.ID, "New Edition", "Some Author")

	// assert
	assert.ErrorIs(t, err, core.ErrBookAlreadyRemoved)
}

func Test_Engine_RemoveBook_IsLegalFromCheckedOut(t *testing.T) {
	// arrange
	env := givenEngine(t)
	_, book := env.givenCheckedOutBook(t)

	// act
	err := env.engine.RemoveBook(context.Background(), book.ID)

	// assert
	require.NoError(t, err, "Removal of a checked out book should succeed")

	reloaded := env.mustGetBook(t, book.ID)
	assert.Equal(t, core.StatusRemoved, reloaded.Status)
	assert.Nil(t, reloaded.HolderID, "A removed book must not keep a holder")
}

func Test_Engine_RemoveBook_IsTerminal(t *testing.T) {
	// arrange
	env := givenEngine(t)
	book := env.givenBook(t, "Short Lived", "Some Author")

	err := env.engine.RemoveBook(context.Background(), book.ID)
	require.NoError(t, err)

	// act
	err = env.engine.RemoveBook(context.Background(), book.ID)

	// assert
	assert.ErrorIs(t, err, core.ErrBookAlreadyRemoved)
}

func Test_Engine_RemoveBook_KeepsRecordInCatalog(t *testing.T) {
	// arrange
	env := givenEngine(t)
	book := env.givenBook(t, "Still Listed", "Some Author")

	err := env.engine.RemoveBook(context.Background(), book.ID)
	require.NoError(t, err)

	// act
	books, err := env.engine.ListBooks(context.Background())

	// assert
	require.NoError(t, err)
	require.Len(t, books, 1, "Removed books stay in the catalog")
	assert.Equal(t, book.ID, books[0].ID)
	assert.Equal(t, core.StatusRemoved, books[0].Status)
}

func Test_Engine_GetBook_RejectsUnknownID(t *testing.T) {
	// arrange
	env := givenEngine(t)

	// act
	_, err := env.engine.GetBook(context.Background(), uuid.New())

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
