// Package lending contains the lending engine: the only component allowed to
// mutate a book's lending status, append to the transaction ledger, and
// promote holds.
//
// The engine is wired to four stores (books, members, ledger, holds) through
// a UnitOfWork, which executes every public operation as one atomic unit
// against the shared persistence. Two concurrent checkouts of the same book
// therefore cannot both succeed: the second observes the first's status
// change or is serialized behind it.
//
// The core workflow for a transaction is: load entities -> decide the status
// transition with pure core functions -> append ledger entries -> persist the
// new status. A return additionally invokes hold promotion inside the same
// unit of work and may produce a second ledger entry.
package lending
