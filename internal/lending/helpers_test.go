package lending_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"library-lending/internal/core"
	"library-lending/internal/lending"
	"library-lending/internal/memory"
)

// fakeClock is a mutable time source for deterministic due dates and hold
// expiry.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type testEnv struct {
	engine lending.Engine
	clock  *fakeClock
}

func givenEngine(t *testing.T) testEnv {
	t.Helper()

	stores := memory.NewStores()
	clock := &fakeClock{now: time.Unix(0, 0).UTC()}

	engine, err := lending.NewEngine(memory.NewUnitOfWork(stores), lending.WithClock(clock.Now))
	require.NoError(t, err, "Should create the engine")

	return testEnv{engine: engine, clock: clock}
}

func (env testEnv) givenMember(t *testing.T, name string) core.Member {
	t.Helper()

	member, err := env.engine.RegisterMember(context.Background(), name, "555-0100", "1 Library Lane", core.RoleMember)
	require.NoError(t, err, "Should register member")

	return member
}

func (env testEnv) givenBook(t *testing.T, title string, author string) core.Book {
	t.Helper()

	book, err := env.engine.AddBook(context.Background(), title, author)
	require.NoError(t, err, "Should add book")

	return book
}

// givenCheckedOutBook registers a member and a book and checks the book out
// to that member.
func (env testEnv) givenCheckedOutBook(t *testing.T) (core.Member, core.Book) {
	t.Helper()

	member := env.givenMember(t, "Holder")
	book := env.givenBook(t, "Learning Domain-Driven Design", "Vlad Khononov")

	_, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindCheckOut)
	require.NoError(t, err, "Should check the book out")

	return member, env.mustGetBook(t, book.ID)
}

func (env testEnv) mustGetBook(t *testing.T, id uuid.UUID) core.Book {
	t.Helper()

	book, err := env.engine.GetBook(context.Background(), id)
	require.NoError(t, err, "Should load book")

	return book
}
