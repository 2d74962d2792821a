// Package memory provides an in-memory implementation of the lending store
// interfaces and unit of work. It backs the engine tests and local
// development without a database.
//
// Atomicity is provided by serializing all units of work behind one mutex
// and restoring a snapshot of the store maps when the unit's callback
// returns an error, so a failed unit leaves no partial writes behind.
package memory
