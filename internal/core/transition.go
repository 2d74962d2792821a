package core

// DecideTransition implements the lending state machine. It is a pure
// function: given a book's current status and the requested transaction kind
// it returns the status the book must transition to, or an error when the
// transaction is illegal for the current status.
//
// Transitions:
//
//	Available  --CheckOut--> CheckedOut
//	CheckedOut --Return-->   Available
//	CheckedOut --Renewal-->  CheckedOut (due date extended, status unchanged)
//	Removed    --(none)
func DecideTransition(current BookStatus, kind TransactionKind) (BookStatus, error) {
	switch kind {
	case KindCheckOut:
		if current != StatusAvailable {
			return "", ErrBookNotAvailable
		}

		return StatusCheckedOut, nil

	case KindReturn:
		if current != StatusCheckedOut {
			return "", ErrBookNotCheckedOut
		}

		return StatusAvailable, nil

	case KindRenewal:
		if current != StatusCheckedOut {
			return "", ErrBookNotCheckedOut
		}

		return StatusCheckedOut, nil

	default:
		return "", ErrUnknownTransactionKind
	}
}

// DecideRemoval validates the explicit removal transition. Removal is legal
// from Available and CheckedOut; Removed is terminal.
func DecideRemoval(current BookStatus) (BookStatus, error) {
	if current == StatusRemoved {
		return "", ErrBookAlreadyRemoved
	}

	return StatusRemoved, nil
}

// DecideHoldPlacement validates that a hold may be created against a book in
// the given status. A hold only makes sense while the book is checked out.
func DecideHoldPlacement(current BookStatus) error {
	switch current {
	case StatusAvailable:
		return ErrHoldOnAvailableBook
	case StatusRemoved:
		return ErrHoldOnRemovedBook
	default:
		return nil
	}
}
