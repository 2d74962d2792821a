package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"library-lending/internal/postgres/internal/adapters"
)

const (
	defaultBooksTableName        = "books"
	defaultMembersTableName      = "members"
	defaultTransactionsTableName = "transactions"
	defaultHoldsTableName        = "holds"

	dialectPostgres = "postgres"

	colID         = "id"
	colTitle      = "title"
	colAuthor     = "author"
	colStatus     = "status"
	colHolderID   = "holder_id"
	colName       = "name"
	colPhone      = "phone"
	colAddress    = "address"
	colRole       = "role"
	colMemberID   = "member_id"
	colBookID     = "book_id"
	colSeq        = "seq"
	colOccurredAt = "occurred_at"
	colKind       = "kind"
	colDueDate    = "due_date"
	colStartAt    = "start_at"
	colEndAt      = "end_at"
	colActive     = "active"

	logMsgBuildQueryFailed = "failed to build query"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgDBExecFailed     = "database execution failed"
	logMsgScanRowFailed    = "failed to scan database row"
	logMsgCloseRowsFailed  = "failed to close database rows"
	logMsgSQLExecuted      = "executed sql"
	logMsgBeginFailed      = "failed to begin transaction"
	logMsgCommitFailed     = "failed to commit transaction"
	logMsgRollbackFailed   = "failed to roll back transaction"
	logAttrError           = "error"
	logAttrQuery           = "query"
)

var (
	ErrNilDatabaseConnection = errors.New("nil database connection supplied")
	ErrEmptyTableName        = errors.New("empty table name supplied")
	ErrBuildingQueryFailed   = errors.New("building query failed")
	ErrQueryingFailed        = errors.New("querying failed")
	ErrExecFailed            = errors.New("executing statement failed")
	ErrScanningDBRowFailed   = errors.New("scanning database row failed")
	ErrBeginTxFailed         = errors.New("beginning transaction failed")
	ErrCommitTxFailed        = errors.New("committing transaction failed")
	ErrNoRowsAffected        = errors.New("no rows were affected")
)

// Logger interface for SQL query logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// tableNames bundles the four table names so they can be overridden as a set.
type tableNames struct {
	books        string
	members      string
	transactions string
	holds        string
}

// DB is the PostgreSQL-backed store set. It implements lending.UnitOfWork;
// every Execute call runs inside one database transaction.
type DB struct {
	db     adapters.DBAdapter
	tables tableNames
	logger Logger
}

// Option defines a functional option for configuring DB.
type Option func(*DB) error

// WithLogger sets the logger for the DB.
//
// Debug level: SQL queries (development use)
// Warn level: non-critical issues like rollback failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(db *DB) error {
		db.logger = logger
		return nil
	}
}

// WithTableNames overrides the default table names.
func WithTableNames(books string, members string, transactions string, holds string) Option {
	return func(db *DB) error {
		for _, name := range []string{books, members, transactions, holds} {
			if name == "" {
				return ErrEmptyTableName
			}
		}

		db.tables = tableNames{books: books, members: members, transactions: transactions, holds: holds}

		return nil
	}
}

// NewFromPGXPool creates a DB using a pgx pool with optional configuration.
func NewFromPGXPool(pool *pgxpool.Pool, options ...Option) (*DB, error) {
	if pool == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newDB(adapters.NewPGXAdapter(pool), options...)
}

// NewFromSQLDB creates a DB using a sql.DB with optional configuration.
func NewFromSQLDB(db *sql.DB, options ...Option) (*DB, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newDB(adapters.NewSQLAdapter(db), options...)
}

// NewFromSQLX creates a DB using a sqlx.DB with optional configuration.
func NewFromSQLX(db *sqlx.DB, options ...Option) (*DB, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newDB(adapters.NewSQLXAdapter(db), options...)
}

func newDB(adapter adapters.DBAdapter, options ...Option) (*DB, error) {
	db := &DB{
		db: adapter,
		tables: tableNames{
			books:        defaultBooksTableName,
			members:      defaultMembersTableName,
			transactions: defaultTransactionsTableName,
			holds:        defaultHoldsTableName,
		},
	}

	for _, option := range options {
		if err := option(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// logError logs a failure at error level if a logger is configured.
func (db *DB) logError(msg string, args ...any) {
	if db.logger != nil {
		db.logger.Error(msg, args...)
	}
}

// logWarn logs a non-critical issue at warn level if a logger is configured.
func (db *DB) logWarn(msg string, args ...any) {
	if db.logger != nil {
		db.logger.Warn(msg, args...)
	}
}

// logQuery logs executed SQL at debug level if a logger is configured.
func (db *DB) logQuery(sqlQuery string) {
	if db.logger != nil {
		db.logger.Debug(logMsgSQLExecuted, logAttrQuery, sqlQuery)
	}
}
