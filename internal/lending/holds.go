package lending

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// PlaceHold creates a hold for the member on a book that is currently
// checked out. A hold against an available or removed book is rejected, as
// is a duplicate active hold by the same member for the same book.
func (e Engine) PlaceHold(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID) (core.Hold, error) {
	start := time.Now()
	defer e.recordDuration(operationPlaceHold, start)

	var hold core.Hold

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		member, lookupErr := s.Members().GetByID(ctx, memberID)
		if lookupErr != nil {
			return lookupErr
		}

		book, lookupErr := s.Books().GetByIDForUpdate(ctx, bookID)
		if lookupErr != nil {
			return lookupErr
		}

		if placementErr := core.DecideHoldPlacement(book.Status); placementErr != nil {
			return placementErr
		}

		hasActive, activeErr := s.Holds().HasActive(ctx, member.ID, book.ID)
		if activeErr != nil {
			return activeErr
		}

		if hasActive {
			return core.ErrDuplicateHold
		}

		hold = core.BuildHold(member.ID, book.ID, e.now())

		return s.Holds().Insert(ctx, hold)
	})

	if err != nil {
		e.countOutcome(metricHoldsPlacedTotal, map[string]string{metricLabelOutcome: outcomeFor(err)})

		return core.Hold{}, err
	}

	e.countOutcome(metricHoldsPlacedTotal, map[string]string{metricLabelOutcome: metricOutcomeSuccess})

	e.logOperation(logMsgHoldPlaced,
		logAttrHoldID, hold.ID.String(),
		logAttrMemberID, memberID.String(),
		logAttrBookID, bookID.String())

	return hold, nil
}

// CancelHold deactivates a hold explicitly. Canceling an already inactive
// hold is rejected rather than treated as a no-op.
func (e Engine) CancelHold(ctx context.Context, holdID uuid.UUID) error {
	start := time.Now()
	defer e.recordDuration(operationCancelHold, start)

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		hold, lookupErr := s.Holds().GetByID(ctx, holdID)
		if lookupErr != nil {
			return lookupErr
		}

		if !hold.Active {
			return core.ErrHoldNotActive
		}

		return s.Holds().Deactivate(ctx, hold.ID)
	})

	if err != nil {
		return err
	}

	e.logOperation(logMsgHoldCanceled, logAttrHoldID, holdID.String())

	return nil
}
