package postgres

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"library-lending/internal/core"
	"library-lending/internal/postgres/internal/adapters"
)

type memberStore struct {
	db   *DB
	exec adapters.DBExecutor
}

func (ms memberStore) Insert(ctx context.Context, member core.Member) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(ms.db.tables.members).
		Rows(goqu.Record{
			colID:      member.ID.String(),
			colName:    member.Name,
			colPhone:   member.Phone,
			colAddress: member.Address,
			colRole:    string(member.Role),
		}).
		ToSQL()
	if toSQLErr != nil {
		ms.db.logError(logMsgBuildQueryFailed, logAttrError, toSQLErr.Error())

		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return ms.db.runExec(ctx, ms.exec, sqlQuery, nil)
}

func (ms memberStore) GetByID(ctx context.Context, id uuid.UUID) (core.Member, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(ms.db.tables.members).
		Select(colID, colName, colPhone, colAddress, colRole).
		Where(goqu.Ex{colID: id.String()}).
		ToSQL()
	if toSQLErr != nil {
		return core.Member{}, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := ms.db.runQuery(ctx, ms.exec, sqlQuery)
	if queryErr != nil {
		return core.Member{}, queryErr
	}
	defer ms.db.closeRows(rows)

	if !rows.Next() {
		return core.Member{}, core.ErrMemberNotFound
	}

	return ms.scanMember(rows)
}

func (ms memberStore) Update(ctx context.Context, member core.Member) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Update(ms.db.tables.members).
		Set(goqu.Record{
			colName:    member.Name,
			colPhone:   member.Phone,
			colAddress: member.Address,
			colRole:    string(member.Role),
		}).
		Where(goqu.Ex{colID: member.ID.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return ms.db.runExec(ctx, ms.exec, sqlQuery, core.ErrMemberNotFound)
}

func (ms memberStore) Delete(ctx context.Context, id uuid.UUID) error {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Delete(ms.db.tables.members).
		Where(goqu.Ex{colID: id.String()}).
		ToSQL()
	if toSQLErr != nil {
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return ms.db.runExec(ctx, ms.exec, sqlQuery, core.ErrMemberNotFound)
}

func (ms memberStore) List(ctx context.Context) ([]core.Member, error) {
	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		From(ms.db.tables.members).
		Select(colID, colName, colPhone, colAddress, colRole).
		Order(goqu.I(colName).Asc()).
		ToSQL()
	if toSQLErr != nil {
		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := ms.db.runQuery(ctx, ms.exec, sqlQuery)
	if queryErr != nil {
		return nil, queryErr
	}
	defer ms.db.closeRows(rows)

	members := make([]core.Member, 0)

	for rows.Next() {
		member, scanErr := ms.scanMember(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		members = append(members, member)
	}

	return members, nil
}

func (ms memberStore) scanMember(rows adapters.DBRows) (core.Member, error) {
	var member core.Member
	var role string

	if scanErr := rows.Scan(&member.ID, &member.Name, &member.Phone, &member.Address, &role); scanErr != nil {
		ms.db.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())

		return core.Member{}, errors.Join(ErrScanningDBRowFailed, scanErr)
	}

	member.Role = core.MemberRole(role)

	return member, nil
}
