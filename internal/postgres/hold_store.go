package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"library-lending/internal/core"
	"library-lending/internal/postgres/internal/adapters"
)

// holdStore never deletes rows; cancellation and promotion clear the active
// flag and expired holds simply stop matching the eligibility filter.
type holdStore struct {
	db   *DB
	exec adapters.DBExecutor
}

func (hs holdStore) Insert(ctx context.Context, hold core.Hold) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(hs.db.tables.holds).
		Rows(goqu.Record{
			colID:       hold.ID.String(),
			colMemberID: hold.MemberID.String(),
			colBookID:   hold.BookID.String(),
			colStartAt:  hold.StartAt,
			colEndAt:    hold.EndAt,
			colActive:   hold.Active,
		}).
		ToSQL()
	if toSQLErr != nil {
		hs.db.logError(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())

		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return hs.db.runExec(ctx, hs.exec, sqlQuery, nil)
}

func (hs holdStore) GetByID(ctx context.Context, id uuid.UUID) (core.Hold, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(hs.db.tables.holds).
		Select(colID, colMemberID, colBookID, colStartAt, colEndAt, colActive).
		Where(goqu.Ex{colID: id.String()}).
		ToSQL()
	if toSQLErr != nil {
		return core.Hold{}, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := hs.db.runQuery(ctx, hs.exec, sqlQuery)
	if queryErr != nil {
		return core.Hold{}, queryErr
	}
	defer hs.db.closeRows(rows)

	if !rows.Next() {
		return core.Hold{}, core.ErrHoldNotFound
	}

	return hs.scanHold(rows)
}

func (hs holdStore) HasActive(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID) (bool, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(hs.db.tables.holds).
		Select(colID).
		Where(goqu.Ex{
			colMemberID: memberID.String(),
			colBookID:   bookID.String(),
			colActive:   true,
		}).
		Limit(1).
		ToSQL()
	if toSQLErr != nil {
		return false, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := hs.db.runQuery(ctx, hs.exec, sqlQuery)
	if queryErr != nil {
		return false, queryErr
	}
	defer hs.db.closeRows(rows)

	return rows.Next(), nil
}

func (hs holdStore) NextEligible(ctx context.Context, bookID uuid.UUID, now time.Time) (core.Hold, bool, error) {
	sqlQuery, buildErr := buildNextEligibleHoldQuery(hs.db.tables.holds, bookID, now)
	if buildErr != nil {
		hs.db.logError(logMsgBuildQueryFailed, logAttrError, buildErr.Error())

		return core.Hold{}, false, buildErr
	}

	rows, queryErr := hs.db.runQuery(ctx, hs.exec, sqlQuery)
	if queryErr != nil {
		return core.Hold{}, false, queryErr
	}
	defer hs.db.closeRows(rows)

	if !rows.Next() {
		return core.Hold{}, false, nil
	}

	hold, scanErr := hs.scanHold(rows)
	if scanErr != nil {
		return core.Hold{}, false, scanErr
	}

	return hold, true, nil
}

func (hs holdStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(hs.db.tables.holds).
		Set(goqu.Record{colActive: false}).
		Where(goqu.Ex{colID: id.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return hs.db.runExec(ctx, hs.exec, sqlQuery, core.ErrHoldNotFound)
}

func (hs holdStore) List(ctx context.Context) ([]core.Hold, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(hs.db.tables.holds).
		Select(colID, colMemberID, colBookID, colStartAt, colEndAt, colActive).
		Order(goqu.I(colStartAt).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return hs.queryHolds(ctx, sqlQuery)
}

func (hs holdStore) ListForMember(ctx context.Context, memberID uuid.UUID) ([]core.Hold, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(hs.db.tables.holds).
		Select(colID, colMemberID, colBookID, colStartAt, colEndAt, colActive).
		Where(goqu.Ex{colMemberID: memberID.String()}).
		Order(goqu.I(colStartAt).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return hs.queryHolds(ctx, sqlQuery)
}

func (hs holdStore) queryHolds(ctx context.Context, sqlQuery string) ([]core.Hold, error) {
	rows, queryErr := hs.db.runQuery(ctx, hs.exec, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer hs.db.closeRows(rows)

	holds := make([]core.Hold, 0)

	for rows.Next() {
		hold, scanErr := hs.scanHold(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		holds = append(holds, hold)
	}

	return holds, nil
}

func (hs holdStore) scanHold(rows adapters.DBRows) (core.Hold, error) {
	var hold core.Hold

	scanErr := rows.Scan(&hold.ID, &hold.MemberID, &hold.BookID, &hold.StartAt, &hold.EndAt, &hold.Active)
	if scanErr != nil {
		hs.db.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())

		return core.Hold{}, errors.Join(ErrScanningDBRowFailed, scanErr)
	}

	return hold, nil
}

// buildNextEligibleHoldQuery selects the first active, unexpired hold for
// the book by start time ascending and locks it so a concurrent promotion
// cannot pick the same hold. Expired holds are filtered out here, never
// cleaned up.
func buildNextEligibleHoldQuery(table string, bookID uuid.UUID, now time.Time) (string, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(table).
		Select(colID, colMemberID, colBookID, colStartAt, colEndAt, colActive).
		Where(goqu.And(
			goqu.Ex{colBookID: bookID.String(), colActive: true},
			goqu.C(colEndAt).Gt(now),
		)).
		Order(goqu.I(colStartAt).Asc()).
		Limit(1).
		ForUpdate(exp.Wait).
		ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}
