package adapters

import "context"

// DBExecutor defines the query operations shared by connections and
// transactions.
type DBExecutor interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBAdapter defines the interface for database access needed by the stores.
type DBAdapter interface {
	DBExecutor
	Begin(ctx context.Context) (DBTx, error)
}

// DBTx is one database transaction. All store writes of a unit of work run
// through it and become visible atomically on Commit.
type DBTx interface {
	DBExecutor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
