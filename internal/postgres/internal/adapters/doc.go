// Package adapters abstracts the database access technology behind small
// interfaces so the stores work identically with pgx, database/sql, and
// sqlx. Each adapter can also begin a transaction, which backs the lending
// unit of work.
package adapters
