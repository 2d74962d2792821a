// Package core holds the pure domain model for library circulation:
// books and their lending status, members, ledger transactions, and holds.
//
// Everything in this package is free of I/O. The state machine for a book's
// lending status lives in DecideTransition and DecideRemoval; the lending
// engine applies the decisions and persists the outcome.
//
// Key types:
//   - Book: a catalog entity with a lending status
//   - Transaction: one append-only ledger entry (check-out, return, renewal)
//   - Hold: a pending reservation for a checked-out book
//
// Common usage pattern:
//
//	next, err := core.DecideTransition(book.Status, core.KindCheckOut)
//	if err != nil {
//		// illegal for the current status
//	}
//	entry := core.BuildCheckOutTransaction(memberID, bookID, now)
package core
