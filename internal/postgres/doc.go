// Package postgres implements the lending store interfaces and unit of work
// on PostgreSQL.
//
// All SQL is built with goqu and executed through a small adapter layer, so
// the same stores run on a pgx pool, a database/sql DB (lib/pq), or a sqlx
// DB. The unit of work maps one engine operation onto one database
// transaction; the row lock taken by GetByIDForUpdate serializes concurrent
// status changes for the same book.
package postgres
