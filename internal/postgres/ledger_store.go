package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"library-lending/internal/core"
	"library-lending/internal/postgres/internal/adapters"
)

// ledgerStore is append-only: it issues inserts and selects, never updates
// or deletes. Rows carry a bigserial seq column so entries written at the
// same instant (a return and its chained promotion) still have a total
// order.
type ledgerStore struct {
	db   *DB
	exec adapters.DBExecutor
}

func (ls ledgerStore) Append(ctx context.Context, entry core.Transaction) error {
	record := goqu.Record{
		colID:         entry.ID.String(),
		colMemberID:   entry.MemberID.String(),
		colBookID:     entry.BookID.String(),
		colOccurredAt: entry.OccurredAt,
		colKind:       string(entry.Kind),
		colDueDate:    nil,
	}
	if entry.DueDate != nil {
		record[colDueDate] = *entry.DueDate
	}

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(ls.db.tables.transactions).
		Rows(record).
		ToSQL()
	if toSQLErr != nil {
		ls.db.logError(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())

		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return ls.db.runExec(ctx, ls.exec, sqlQuery, nil)
}

func (ls ledgerStore) GetByID(ctx context.Context, id uuid.UUID) (core.Transaction, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(ls.db.tables.transactions).
		Select(colID, colMemberID, colBookID, colOccurredAt, colKind, colDueDate).
		Where(goqu.Ex{colID: id.String()}).
		ToSQL()
	if toSQLErr != nil {
		return core.Transaction{}, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := ls.db.runQuery(ctx, ls.exec, sqlQuery)
	if queryErr != nil {
		return core.Transaction{}, queryErr
	}
	defer ls.db.closeRows(rows)

	if !rows.Next() {
		return core.Transaction{}, core.ErrTransactionNotFound
	}

	return ls.scanTransaction(rows)
}

// OpenCheckOut resolves the checkout currently holding the book: the latest
// CheckOut or Return entry decides. A renewal never changes the holder, so
// renewals are ignored here.
func (ls ledgerStore) OpenCheckOut(ctx context.Context, bookID uuid.UUID) (core.Transaction, bool, error) {
	sqlQuery, buildErr := buildOpenCheckOutQuery(ls.db.tables.transactions, bookID)
	if buildErr != nil {
		ls.db.logError(logMsgBuildQueryFailed, logAttrError, buildErr.Error())

		return core.Transaction{}, false, buildErr
	}

	rows, queryErr := ls.db.runQuery(ctx, ls.exec, sqlQuery)
	if queryErr != nil {
		return core.Transaction{}, false, queryErr
	}
	defer ls.db.closeRows(rows)

	if !rows.Next() {
		return core.Transaction{}, false, nil
	}

	entry, scanErr := ls.scanTransaction(rows)
	if scanErr != nil {
		return core.Transaction{}, false, scanErr
	}

	if entry.Kind != core.KindCheckOut {
		return core.Transaction{}, false, nil
	}

	return entry, true, nil
}

func (ls ledgerStore) List(ctx context.Context) ([]core.Transaction, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(ls.db.tables.transactions).
		Select(colID, colMemberID, colBookID, colOccurredAt, colKind, colDueDate).
		Order(goqu.I(colSeq).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return ls.queryTransactions(ctx, sqlQuery)
}

func (ls ledgerStore) ListForMember(ctx context.Context, memberID uuid.UUID) ([]core.Transaction, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(ls.db.tables.transactions).
		Select(colID, colMemberID, colBookID, colOccurredAt, colKind, colDueDate).
		Where(goqu.Ex{colMemberID: memberID.String()}).
		Order(goqu.I(colSeq).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return ls.queryTransactions(ctx, sqlQuery)
}

func (ls ledgerStore) queryTransactions(ctx context.Context, sqlQuery string) ([]core.Transaction, error) {
	rows, queryErr := ls.db.runQuery(ctx, ls.exec, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer ls.db.closeRows(rows)

	entries := make([]core.Transaction, 0)

	for rows.Next() {
		entry, scanErr := ls.scanTransaction(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (ls ledgerStore) scanTransaction(rows adapters.DBRows) (core.Transaction, error) {
	var entry core.Transaction
	var kind string
	var dueDate sql.NullTime

	scanErr := rows.Scan(&entry.ID, &entry.MemberID, &entry.BookID, &entry.OccurredAt, &kind, &dueDate)
	if scanErr != nil {
		ls.db.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())

		return core.Transaction{}, errors.Join(ErrScanningDBRowFailed, scanErr)
	}

	entry.Kind = core.TransactionKind(kind)

	if dueDate.Valid {
		due := dueDate.Time
		entry.DueDate = &due
	}

	return entry, nil
}

// buildOpenCheckOutQuery selects the single most recent CheckOut or Return
// entry for the book; the caller inspects its kind.
func buildOpenCheckOutQuery(table string, bookID uuid.UUID) (string, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(table).
		Select(colID, colMemberID, colBookID, colOccurredAt, colKind, colDueDate).
		Where(goqu.Ex{
			colBookID: bookID.String(),
			colKind:   []string{string(core.KindCheckOut), string(core.KindReturn)},
		}).
		Order(goqu.I(colSeq).Desc()).
		Limit(1).
		ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}
