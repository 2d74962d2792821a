package lending_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-lending/internal/core"
)

func Test_Engine_RegisterMember_CreatesMember(t *testing.T) {
	// arrange
	env := givenEngine(t)

	// act
	member, err := env.engine.RegisterMember(context.Background(), "Anna Reader", "555-0100", "1 Library Lane", core.RoleClerk)

	// assert
	require.NoError(t, err, "Registering a member should succeed")
	assert.Equal(t, "Anna Reader", member.Name)
	assert.Equal(t, core.RoleClerk, member.Role)

	reloaded, err := env.engine.GetMember(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, member, reloaded)
}

func Test_Engine_UpdateMember_ReplacesAttributes(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")

	// act
	updated, err := env.engine.UpdateMember(context.Background(), member.ID, "Anna Clerk", "555-0199", "2 Library Lane", core.RoleClerk)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Anna Clerk", updated.Name)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, core.RoleClerk, updated.Role)
}

func Test_Engine_UpdateMember_RejectsUnknownID(t *testing.T) {
	// arrange
	env := givenEngine(t)

	// act
	_, err := env.engine.UpdateMember(context.Background(), uuid.New(), "Nobody", "555-0000", "Nowhere", core.RoleMember)

	// assert
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
}

func Test_Engine_DeleteMember_KeepsLedgerEntries(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member, book := env.givenCheckedOutBook(t)

	_, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindReturn)
	require.NoError(t, err)

	// act
	err = env.engine.DeleteMember(context.Background(), member.ID)

	// assert
	require.NoError(t, err, "Deleting the member should succeed")

	_, err = env.engine.GetMember(context.Background(), member.ID)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)

	ledger, err := env.engine.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, ledger, 2, "The ledger is append-only and keeps entries of deleted members")
}

func Test_Engine_DeleteMember_RejectsUnknownID(t *testing.T) {
	// arrange
	env := givenEngine(t)

	// act
	err := env.engine.DeleteMember(context.Background(), uuid.New())

	// assert
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
}

func Test_Engine_ListMembers_ReturnsAllMembers(t *testing.T) {
	// arrange
	env := givenEngine(t)
	env.givenMember(t, "First")
	env.givenMember(t, "Second")

	// act
	members, err := env.engine.ListMembers(context.Background())

	// assert
	require.NoError(t, err)
	assert.Len(t, members, 2)
}
