package lending

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-lending/internal/core"
)

// RecordTransaction validates and records one lending event for the given
// member and book. It returns the ledger entries produced, in order:
//
//   - CheckOut, Renewal: exactly one entry
//   - Return: the Return entry, followed by a promotion CheckOut entry when
//     an eligible hold was waiting
//
// The whole operation, including a chained promotion, runs inside one unit
// of work; a rejected precondition leaves every entity untouched.
func (e Engine) RecordTransaction(
	ctx context.Context,
	memberID uuid.UUID,
	bookID uuid.UUID,
	kind core.TransactionKind,
) (core.Transactions, error) {

	start := time.Now()
	defer e.recordDuration(operationRecordTransaction, start)

	var produced core.Transactions

	err := e.uow.Execute(ctx, func(ctx context.Context, s Stores) error {
		member, lookupErr := s.Members().GetByID(ctx, memberID)
		if lookupErr != nil {
			return lookupErr
		}

		book, lookupErr := s.Books().GetByIDForUpdate(ctx, bookID)
		if lookupErr != nil {
			return lookupErr
		}

		nextStatus, decideErr := core.DecideTransition(book.Status, kind)
		if decideErr != nil {
			e.logRejection(logMsgTransactionRejected,
				logAttrMemberID, member.ID.String(),
				logAttrBookID, book.ID.String(),
				logAttrKind, string(kind),
				logAttrError, decideErr.Error())

			return decideErr
		}

		now := e.now()

		switch kind {
		case core.KindCheckOut:
			entry := core.BuildCheckOutTransaction(member.ID, book.ID, now)
			if appendErr := s.Ledger().Append(ctx, entry); appendErr != nil {
				return appendErr
			}

			holder := member.ID
			if statusErr := s.Books().SetStatus(ctx, book.ID, nextStatus, &holder); statusErr != nil {
				return statusErr
			}

			produced = core.Transactions{entry}

		case core.KindRenewal:
			entry := core.BuildRenewalTransaction(member.ID, book.ID, now)
			if appendErr := s.Ledger().Append(ctx, entry); appendErr != nil {
				return appendErr
			}

			produced = core.Transactions{entry}

		case core.KindReturn:
			entry := core.BuildReturnTransaction(member.ID, book.ID, now)
			if appendErr := s.Ledger().Append(ctx, entry); appendErr != nil {
				return appendErr
			}

			if statusErr := s.Books().SetStatus(ctx, book.ID, nextStatus, nil); statusErr != nil {
				return statusErr
			}

			produced = core.Transactions{entry}

			promotion, promoted, promoteErr := e.promoteNextHold(ctx, s, book.ID, now)
			if promoteErr != nil {
				return promoteErr
			}

			if promoted {
				produced = append(produced, promotion)
			}
		}

		return nil
	})

	if err != nil {
		e.countOutcome(metricTransactionsTotal, map[string]string{
			metricLabelKind:    string(kind),
			metricLabelOutcome: outcomeFor(err),
		})

		return nil, err
	}

	e.countOutcome(metricTransactionsTotal, map[string]string{
		metricLabelKind:    string(kind),
		metricLabelOutcome: metricOutcomeSuccess,
	})

	e.logOperation(logMsgTransactionRecorded,
		logAttrMemberID, memberID.String(),
		logAttrBookID, bookID.String(),
		logAttrKind, string(kind),
		logAttrEntryCount, len(produced),
		logAttrDurationMS, durationToMilliseconds(time.Since(start)))

	return produced, nil
}

// outcomeFor classifies an operation error for metrics: domain rejections
// count separately from infrastructure failures.
func outcomeFor(err error) string {
	if core.IsDomainError(err) {
		return metricOutcomeRejected
	}

	return metricOutcomeError
}
