package postgres

import (
	"context"
	"errors"

	"library-lending/internal/postgres/internal/adapters"
)

// runQuery executes a select through the bound executor with debug logging.
func (db *DB) runQuery(ctx context.Context, exec adapters.DBExecutor, sqlQuery string) (adapters.DBRows, error) {
	db.logQuery(sqlQuery)

	rows, queryErr := exec.Query(ctx, sqlQuery)
	if queryErr != nil {
		db.logError(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)

		return nil, errors.Join(ErrQueryingFailed, queryErr)
	}

	return rows, nil
}

// runExec executes a statement through the bound executor. When notFoundErr
// is non-nil, affecting zero rows returns it (the row the statement targeted
// does not exist).
func (db *DB) runExec(ctx context.Context, exec adapters.DBExecutor, sqlQuery string, notFoundErr error) error {
	db.logQuery(sqlQuery)

	result, execErr := exec.Exec(ctx, sqlQuery)
	if execErr != nil {
		db.logError(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)

		return errors.Join(ErrExecFailed, execErr)
	}

	if notFoundErr != nil {
		rowsAffected, affectedErr := result.RowsAffected()
		if affectedErr != nil {
			return errors.Join(ErrExecFailed, affectedErr)
		}

		if rowsAffected == 0 {
			return notFoundErr
		}
	}

	return nil
}

// closeRows safely closes database rows and logs any errors.
func (db *DB) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		db.logWarn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}
