package postgres

import (
	"context"
	"errors"

	"library-lending/internal/lending"
	"library-lending/internal/postgres/internal/adapters"
)

// Execute implements lending.UnitOfWork. It begins one database transaction,
// hands transaction-bound stores to fn, and commits on success. Any error
// from fn rolls the transaction back and is passed through unchanged, so
// domain rejections keep their error kind.
func (db *DB) Execute(ctx context.Context, fn func(ctx context.Context, s lending.Stores) error) error {
	tx, beginErr := db.db.Begin(ctx)
	if beginErr != nil {
		db.logError(logMsgBeginFailed, logAttrError, beginErr.Error())

		return errors.Join(ErrBeginTxFailed, beginErr)
	}

	if fnErr := fn(ctx, db.txStores(tx)); fnErr != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			db.logWarn(logMsgRollbackFailed, logAttrError, rollbackErr.Error())
		}

		return fnErr
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		db.logError(logMsgCommitFailed, logAttrError, commitErr.Error())

		return errors.Join(ErrCommitTxFailed, commitErr)
	}

	return nil
}

// txStores binds the four stores to one transaction.
func (db *DB) txStores(exec adapters.DBExecutor) lending.Stores {
	return storeSet{
		books:   bookStore{db: db, exec: exec},
		members: memberStore{db: db, exec: exec},
		ledger:  ledgerStore{db: db, exec: exec},
		holds:   holdStore{db: db, exec: exec},
	}
}

type storeSet struct {
	books   bookStore
	members memberStore
	ledger  ledgerStore
	holds   holdStore
}

func (s storeSet) Books() lending.BookStore     { return s.books }
func (s storeSet) Members() lending.MemberStore { return s.members }
func (s storeSet) Ledger() lending.LedgerStore  { return s.ledger }
func (s storeSet) Holds() lending.HoldStore     { return s.holds }
