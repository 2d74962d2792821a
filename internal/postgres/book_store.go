package postgres

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"library-lending/internal/core"
	"library-lending/internal/postgres/internal/adapters"
)

type bookStore struct {
	db   *DB
	exec adapters.DBExecutor
}

func (bs bookStore) Insert(ctx context.Context, book core.Book) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(bs.db.tables.books).
		Rows(goqu.Record{
			colID:     book.ID.String(),
			colTitle:  book.Title,
			colAuthor: book.Author,
			colStatus: string(book.Status),
		}).
		ToSQL()
	if toSQLErr != nil {
		bs.db.logError(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())

		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return bs.db.runExec(ctx, bs.exec, sqlQuery, nil)
}

func (bs bookStore) GetByID(ctx context.Context, id uuid.UUID) (core.Book, error) {
	return bs.getByID(ctx, id, false)
}

// GetByIDForUpdate locks the book row for the remainder of the transaction.
func (bs bookStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (core.Book, error) {
	return bs.getByID(ctx, id, true)
}

func (bs bookStore) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (core.Book, error) {
	sqlQuery, buildErr := buildBookByIDQuery(bs.db.tables.books, id, forUpdate)
	if buildErr != nil {
		bs.db.logError(logMsgBuildQueryFailed, logAttrError, buildErr.Error())

		return core.Book{}, buildErr
	}

	rows, queryErr := bs.db.runQuery(ctx, bs.exec, sqlQuery)
	if queryErr != nil {
		return core.Book{}, queryErr
	}
	defer bs.db.closeRows(rows)

	if !rows.Next() {
		return core.Book{}, core.ErrBookNotFound
	}

	return bs.scanBook(rows)
}

func (bs bookStore) ExistsByTitleAndAuthor(ctx context.Context, title string, author string) (bool, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(bs.db.tables.books).
		Select(colID).
		Where(goqu.Ex{colTitle: title, colAuthor: author}).
		Limit(1).
		ToSQL()
	if toSQLErr != nil {
		return false, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := bs.db.runQuery(ctx, bs.exec, sqlQuery)
	if queryErr != nil {
		return false, queryErr
	}
	defer bs.db.closeRows(rows)

	return rows.Next(), nil
}

func (bs bookStore) Update(ctx context.Context, book core.Book) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(bs.db.tables.books).
		Set(goqu.Record{colTitle: book.Title, colAuthor: book.Author}).
		Where(goqu.Ex{colID: book.ID.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return bs.db.runExec(ctx, bs.exec, sqlQuery, core.ErrBookNotFound)
}

func (bs bookStore) SetStatus(ctx context.Context, id uuid.UUID, status core.BookStatus, holderID *uuid.UUID) error {
	record := goqu.Record{colStatus: string(status), colHolderID: nil}
	if holderID != nil {
		record[colHolderID] = holderID.String()
	}

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(bs.db.tables.books).
		Set(record).
		Where(goqu.Ex{colID: id.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return bs.db.runExec(ctx, bs.exec, sqlQuery, core.ErrBookNotFound)
}

func (bs bookStore) List(ctx context.Context) ([]core.Book, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(bs.db.tables.books).
		Select(colID, colTitle, colAuthor, colStatus, colHolderID).
		Order(goqu.I(colTitle).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := bs.db.runQuery(ctx, bs.exec, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer bs.db.closeRows(rows)

	books := make([]core.Book, 0)

	for rows.Next() {
		book, scanErr := bs.scanBook(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		books = append(books, book)
	}

	return books, nil
}

func (bs bookStore) scanBook(rows adapters.DBRows) (core.Book, error) {
	var book core.Book
	var status string
	var holder uuid.NullUUID

	if scanErr := rows.Scan(&book.ID, &book.Title, &book.Author, &status, &holder); scanErr != nil {
		bs.db.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())

		return core.Book{}, errors.Join(ErrScanningDBRowFailed, scanErr)
	}

	book.Status = core.BookStatus(status)

	if holder.Valid {
		holderID := holder.UUID
		book.HolderID = &holderID
	}

	return book, nil
}

// buildBookByIDQuery is split out so the locking clause is testable without
// a database.
func buildBookByIDQuery(table string, id uuid.UUID, forUpdate bool) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(table).
		Select(colID, colTitle, colAuthor, colStatus, colHolderID).
		Where(goqu.Ex{colID: id.String()})

	if forUpdate {
		selectStmt = selectStmt.ForUpdate(exp.Wait)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}
