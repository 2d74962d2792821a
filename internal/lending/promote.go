package lending

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// promoteNextHold converts the earliest eligible hold for the book into a
// checkout. It is invoked only after a Return has transitioned the book to
// Available, inside the same unit of work as the Return itself.
//
// Eligibility is evaluated lazily: only active holds with an end date in the
// future are considered, ordered by start time ascending. Expired holds are
// skipped, never deactivated or swept.
func (e Engine) promoteNextHold(
	ctx context.Context,
	s Stores,
	bookID uuid.UUID,
	now time.Time,
) (core.Transaction, bool, error) {

	hold, found, err := s.Holds().NextEligible(ctx, bookID, now)
	if err != nil {
		return core.Transaction{}, false, err
	}

	if !found {
		e.logRejection(logMsgNoEligibleHold, logAttrBookID, bookID.String())

		return core.Transaction{}, false, nil
	}

	if deactivateErr := s.Holds().Deactivate(ctx, hold.ID); deactivateErr != nil {
		return core.Transaction{}, false, deactivateErr
	}

	holder := hold.MemberID
	if statusErr := s.Books().SetStatus(ctx, bookID, core.StatusCheckedOut, &holder); statusErr != nil {
		return core.Transaction{}, false, statusErr
	}

	entry := core.BuildCheckOutTransaction(hold.MemberID, bookID, now)
	if appendErr := s.Ledger().Append(ctx, entry); appendErr != nil {
		return core.Transaction{}, false, appendErr
	}

	e.countOutcome(metricHoldsPromotedTotal, nil)

	e.logOperation(logMsgHoldPromoted,
		logAttrHoldID, hold.ID.String(),
		logAttrMemberID, hold.MemberID.String(),
		logAttrBookID, bookID.String())

	return entry, true, nil
}
