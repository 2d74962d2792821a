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

func Test_Engine_RecordTransaction_ChecksOutAvailableBook(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")
	book := env.givenBook(t, "Learning Domain-Driven Design", "Vlad Khononov")

	// act
	entries, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindCheckOut)

	// assert
	require.NoError(t, err, "Checkout should succeed")
	require.Len(t, entries, 1, "Checkout should produce exactly one ledger entry")
	assert.Equal(t, core.KindCheckOut, entries[0].Kind)
	assert.Equal(t, member.ID, entries[0].MemberID)
	assert.Equal(t, book.ID, entries[0].BookID)
	require.NotNil(t, entries[0].DueDate, "Checkout entry should carry a due date")
	assert.Equal(t, env.clock.Now().Add(core.LoanPeriod), *entries[0].DueDate)

	reloaded := env.mustGetBook(t, book.ID)
	assert.Equal(t, core.StatusCheckedOut, reloaded.Status)
	require.NotNil(t, reloaded.HolderID, "Checked out book should record its holder")
	assert.Equal(t, member.ID, *reloaded.HolderID)
}

func Test_Engine_RecordTransaction_RejectsCheckout_WhenBookAlreadyCheckedOut(t *testing.T) {
	// arrange
	env := givenEngine(t)
	holder, book := env.givenCheckedOutBook(t)
	other := env.givenMember(t, "Second Reader")

	// act
	entries, err := env.engine.RecordTransaction(context.Background(), other.ID, book.ID, core.KindCheckOut)

	// assert
	require.Error(t, err, "Checkout of a checked out book must be rejected")
	assert.ErrorIs(t, err, core.ErrBookNotAvailable)
	assert.Nil(t, entries)

	ledger, err := env.engine.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, ledger, 1, "A rejected checkout must not write to the ledger")

	reloaded := env.mustGetBook(t, book.ID)
	require.NotNil(t, reloaded.HolderID)
	assert.Equal(t, holder.ID, *reloaded.HolderID, "Holder must be unchanged after a rejected checkout")
}

func Test_Engine_RecordTransaction_RejectsCheckout_WhenBookRemoved(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")
	book := env.givenBook(t, "Design Patterns", "Gang of Four")

	err := env.engine.RemoveBook(context.Background(), book.ID)
	require.NoError(t, err, "Should remove book")

	// act
	_, err = env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindCheckOut)

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotAvailable)
}

func Test_Engine_RecordTransaction_RejectsUnknownMemberAndBook(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")
	book := env.givenBook(t, "Effective Java", "Joshua Bloch")

	// act + assert
	_, err := env.engine.RecordTransaction(context.Background(), uuid.New(), book.ID, core.KindCheckOut)
	assert.ErrorIs(t, err, core.ErrMemberNotFound)

	_, err = env.engine.RecordTransaction(context.Background(), member.ID, uuid.New(), core.KindCheckOut)
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func Test_Engine_RecordTransaction_RejectsUnknownKind(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")
	book := env.givenBook(t, "Effective Java", "Joshua Bloch")

	// act
	_, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.TransactionKind("Borrow"))

	// assert
	assert.ErrorIs(t, err, core.ErrUnknownTransactionKind)
}

func Test_Engine_RecordTransaction_ReturnsBook_WhenNoHoldsWait(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member, book := env.givenCheckedOutBook(t)
	env.clock.Advance(time.Hour)

	// act
	entries, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindReturn)

	// assert
	require.NoError(t, err, "Return should succeed")
	require.Len(t, entries, 1, "Return without waiting holds should produce exactly one entry")
	assert.Equal(t, core.KindReturn, entries[0].Kind)
	assert.Nil(t, entries[0].DueDate, "Return entry must not carry a due date")

	reloaded := env.mustGetBook(t, book.ID)
	assert.Equal(t, core.StatusAvailable, reloaded.Status)
	assert.Nil(t, reloaded.HolderID, "Returned book must have no holder")
}

func Test_Engine_RecordTransaction_RejectsReturn_WhenBookNotCheckedOut(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")
	book := env.givenBook(t, "Refactoring", "Martin Fowler")

	// act
	_, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindReturn)

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotCheckedOut)
}

func Test_Engine_RecordTransaction_ReturnPromotesOldestEligibleHold(t *testing.T) {
	// arrange
	env := givenEngine(t)
	holder, book := env.givenCheckedOutBook(t)
	first := env.givenMember(t, "First In Line")
	second := env.givenMember(t, "Second In Line")

	firstHold, err := env.engine.PlaceHold(context.Background(), first.ID, book.ID)
	require.NoError(t, err, "Should place first hold")

	env.clock.Advance(time.Hour)

	secondHold, err := env.engine.PlaceHold(context.Background(), second.ID, book.ID)
	require.NoError(t, err, "Should place second hold")

	env.clock.Advance(time.Hour)
	returnedAt := env.clock.Now()

	// act
	entries, err := env.engine.RecordTransaction(context.Background(), holder.ID, book.ID, core.KindReturn)

	// assert
	require.NoError(t, err, "Return should succeed")
	require.Len(t, entries, 2, "Return with a waiting hold should produce a return and a promotion entry")

	assert.Equal(t, core.KindReturn, entries[0].Kind)
	assert.Equal(t, holder.ID, entries[0].MemberID)

	assert.Equal(t, core.KindCheckOut, entries[1].Kind)
	assert.Equal(t, first.ID, entries[1].MemberID, "The oldest hold must be promoted first")
	assert.Equal(t, returnedAt, entries[1].OccurredAt)
	require.NotNil(t, entries[1].DueDate)
	assert.Equal(t, returnedAt.Add(core.LoanPeriod), *entries[1].DueDate)

	reloaded := env.mustGetBook(t, book.ID)
	assert.Equal(t, core.StatusCheckedOut, reloaded.Status, "Promotion must leave the book checked out")
	require.NotNil(t, reloaded.HolderID)
	assert.Equal(t, first.ID, *reloaded.HolderID)

	promoted, err := env.engine.GetHold(context.Background(), firstHold.ID)
	require.NoError(t, err)
	assert.False(t, promoted.Active, "Promoted hold must be deactivated")

	waiting, err := env.engine.GetHold(context.Background(), secondHold.ID)
	require.NoError(t, err)
	assert.True(t, waiting.Active, "The younger hold must keep waiting")
}

func Test_Engine_RecordTransaction_ReturnSkipsExpiredHolds(t *testing.T) {
	// arrange
	env := givenEngine(t)
	holder, book := env.givenCheckedOutBook(t)
	waiting := env.givenMember(t, "Too Late")

	hold, err := env.engine.PlaceHold(context.Background(), waiting.ID, book.ID)
	require.NoError(t, err, "Should place hold")

	env.clock.Advance(core.HoldPeriod + time.Hour)

	// act
	entries, err := env.engine.RecordTransaction(context.Background(), holder.ID, book.ID, core.KindReturn)

	// assert
	require.NoError(t, err, "Return should succeed")
	assert.Len(t, entries, 1, "An expired hold must not be promoted")

	reloaded := env.mustGetBook(t, book.ID)
	assert.Equal(t, core.StatusAvailable, reloaded.Status)

	// Expiry is lazy: the hold stays active in storage, it is only
	// filtered out of eligibility.
	stored, err := env.engine.GetHold(context.Background(), hold.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)
}

func Test_Engine_RecordTransaction_ReturnSkipsCanceledHold(t *testing.T) {
	// arrange
	env := givenEngine(t)
	holder, book := env.givenCheckedOutBook(t)
	first := env.givenMember(t, "Changed My Mind")
	second := env.givenMember(t, "Still Waiting")

	firstHold, err := env.engine.PlaceHold(context.Background(), first.ID, book.ID)
	require.NoError(t, err)

	env.clock.Advance(time.Hour)

	_, err = env.engine.PlaceHold(context.Background(), second.ID, book.ID)
	require.NoError(t, err)

	err = env.engine.CancelHold(context.Background(), firstHold.ID)
	require.NoError(t, err, "Should cancel the older hold")

	// act
	entries, err := env.engine.RecordTransaction(context.Background(), holder.ID, book.ID, core.KindReturn)

	// assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[1].MemberID, "Promotion must skip the canceled hold")
}

func Test_Engine_RecordTransaction_RenewalExtendsDueDateWithoutStatusChange(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member, book := env.givenCheckedOutBook(t)
	env.clock.Advance(7 * 24 * time.Hour)

	// act
	entries, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindRenewal)

	// assert
	require.NoError(t, err, "Renewal should succeed")
	require.Len(t, entries, 1)
	assert.Equal(t, core.KindRenewal, entries[0].Kind)
	require.NotNil(t, entries[0].DueDate)
	assert.Equal(t, env.clock.Now().Add(core.LoanPeriod), *entries[0].DueDate)

	reloaded := env.mustGetBook(t, book.ID)
	assert.Equal(t, core.StatusCheckedOut, reloaded.Status, "Renewal must not change the status")
	require.NotNil(t, reloaded.HolderID)
	assert.Equal(t, member.ID, *reloaded.HolderID, "Renewal must not change the holder")
}

func Test_Engine_RecordTransaction_RejectsRenewal_WhenBookNotCheckedOut(t *testing.T) {
	// arrange
	env := givenEngine(t)
	member := env.givenMember(t, "Anna Reader")
	book := env.givenBook(t, "Clean Architecture", "Robert C. Martin")

	// act
	_, err := env.engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindRenewal)

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotCheckedOut)
}
