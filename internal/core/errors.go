package core

import (
	"errors"
	"fmt"
)

// Base error kinds. Every domain failure wraps exactly one of these so that
// callers (and the transport layer) can classify with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
	ErrInvalidArgument   = errors.New("invalid argument")
)

var (
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)
	ErrBookNotFound   = fmt.Errorf("book %w", ErrNotFound)
	ErrHoldNotFound   = fmt.Errorf("hold %w", ErrNotFound)

	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	ErrBookNotAvailable   = fmt.Errorf("%w: book is not available for checkout", ErrInvalidTransition)
	ErrBookNotCheckedOut  = fmt.Errorf("%w: book is not currently checked out", ErrInvalidTransition)
	ErrBookAlreadyRemoved = fmt.Errorf("%w: book was removed from the library", ErrInvalidTransition)

	ErrHoldOnAvailableBook = fmt.Errorf("%w: cannot place a hold on an available book", ErrInvalidState)
	ErrHoldOnRemovedBook   = fmt.Errorf("%w: cannot place a hold on a removed book", ErrInvalidState)
	ErrHoldNotActive       = fmt.Errorf("%w: hold is already inactive", ErrInvalidState)

	ErrDuplicateHold = fmt.Errorf("%w: member already has an active hold for this book", ErrConflict)
	ErrDuplicateBook = fmt.Errorf("%w: this book already exists in the library", ErrConflict)

	ErrUnknownTransactionKind = fmt.Errorf("%w: unknown transaction kind", ErrInvalidArgument)
)

// IsDomainError reports whether err wraps one of the base error kinds, i.e.
// it is a rejected precondition rather than an infrastructure failure.
func IsDomainError(err error) bool {
	for _, kind := range []error{ErrNotFound, ErrInvalidTransition, ErrInvalidState, ErrConflict, ErrInvalidArgument} {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}
