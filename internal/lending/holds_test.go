package lending_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-lending/internal/core"
)

func Test_Engine_PlaceHold_CreatesActiveHold_WhenBookCheckedOut(t *testing.T) {
	// arrange
	env := givenEngine(t)
	_, book := env.givenCheckedOutBook(t)
	waiting := env.givenMember(t, "Waiting Reader")

	// act
	hold, err := env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)

	// assert
	require.NoError(t, err, "Placing a hold on a checked out book should succeed")
	assert.True(t, hold.Active)
	assert.Equal(t, waiting.ID, hold.MemberID)
	assert.Equal(t, book.ID, hold.BookID)
	assert.Equal(t, env.clock.Now(), hold.StartAt)
	assert.Equal(t, env.clock.Now().Add(core.HoldPeriod), hold.EndAt)
}

func Test_Engine_PlaceHold_RejectsAvailableAndRemovedBooks(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")
	available := env.givenBook(t, "Available Book", "Some Author")
	removed := env.givenBook(t, "Removed Book", "Some Author")

	err := env.engine.RemoveBook(context.Background(), removed.ID)
	require.NoError(t, err)

	// act + assert
	_, err = env.engine.PlaceHold(context.Background(), member.ID, available.ID)
	assert.ErrorIs(t, err, core.ErrHoldOnAvailableBook)

	_, err = env.engine.PlaceHold(context.Background(), member.ID, removed.ID)
	assert.ErrorIs(t, err, core.ErrHoldOnRemovedBook)
}

func Test_Engine_PlaceHold_RejectsDuplicateActiveHold(t *testing.T) {
	// arrange
	env := givenEngine(t)
	_, book := env.givenCheckedOutBook(t)
	waiting := env.givenMember(t, "Waiting Reader")

	_, err := env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)
	require.NoError(t, err)

	// act
	_, err = env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicateHold)
	assert.ErrorIs(t, err, core.ErrConflict)
}

func Test_Engine_PlaceHold_AllowsNewHoldAfterCancellation(t *testing.T) {
	// arrange
	env := givenEngine(t)
	_, book := env.givenCheckedOutBook(t)
	waiting := env.givenMember(t, "Waiting Reader")

	hold, err := env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)
	require.NoError(t, err)

	err = env.engine.CancelHold(context.Background(), hold.ID)
	require.NoError(t, err)

	env.clock.Advance(time.Hour)

	// act
	replacement, err := env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)

	// assert
	require.NoError(t, err, "A new hold should be allowed once the old one is inactive")
	assert.NotEqual(t, hold.ID, replacement.ID)
	assert.True(t, replacement.Active)
}

func Test_Engine_PlaceHold_RejectsUnknownMemberAndBook(t *testing.T) {
	// arrange
	env := givenEngine(t)
	_, book := env.givenCheckedOutBook(t)
	member := env.givenMember(t, "Anna Reader")

	// act + assert
	_, err := env.engine.PlaceHold(context.Background(), uuid.New(), book.ID)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)

	_, err = env.engine.PlaceHold(context.Background(), member.ID, uuid.New())
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func Test_Engine_CancelHold_DeactivatesHold(t *testing.T) {
	// arrange
	env := givenEngine(t)
	_, book := env.givenCheckedOutBook(t)
	waiting := env.givenMember(t, "Waiting Reader")

	hold, err := env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)
	require.NoError(t, err)

	// act
	err = env.engine.CancelHold(context.Background(), hold.ID)

	// assert
	require.NoError(t, err, "Cancel should succeed")

	stored, err := env.engine.GetHold(context.Background(), hold.ID)
	require.NoError(t, err, "Canceled hold must still be readable")
	assert.False(t, stored.Active)
}

func Test_Engine_CancelHold_RejectsInactiveHold(t *testing.T) {
	// arrange
	env := givenEngine(t)
	_, book := env.givenCheckedOutBook(t)
	waiting := env.givenMember(t, "Waiting Reader")

	hold, err := env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)
	require.NoError(t, err)

	err = env.engine.CancelHold(context.Background(), hold.ID)
	require.NoError(t, err)

	// act
	err = env.engine.CancelHold(context.Background(), hold.ID)

	// assert
	assert.ErrorIs(t, err, core.ErrHoldNotActive)
}

func Test_Engine_CancelHold_RejectsUnknownHold(t *testing.T) {
	// arrange
	env := givenEngine(t)

	// act
	err := env.engine.CancelHold(context.Background(), uuid.New())

	// assert
	assert.ErrorIs(t, err, core.ErrHoldNotFound)
}
