package core

import (
	"time"

	"github.com/google/uuid"
)

// HoldPeriod is how long a hold stays eligible for promotion before it
// silently expires.
const HoldPeriod = 14 * 24 * time.Hour

// Holds is an alias type for a slice of Hold.
type Holds = []Hold

// Hold is a pending reservation for a checked-out book. Holds are never
// physically deleted; cancellation and promotion both just clear Active.
// Expired holds stay active in storage and are filtered out lazily whenever
// eligibility is evaluated.
type Hold struct {
	ID       uuid.UUID
	MemberID uuid.UUID
	BookID   uuid.UUID
	StartAt  time.Time
	EndAt    time.Time
	Active   bool
}

// BuildHold creates an active Hold valid for HoldPeriod from now.
func BuildHold(memberID uuid.UUID, bookID uuid.UUID, now time.Time) Hold {
	return Hold{
		ID:       uuid.New(),
		MemberID: memberID,
		BookID:   bookID,
		StartAt:  now,
		EndAt:    now.Add(HoldPeriod),
		Active:   true,
	}
}

// IsEligible reports whether the hold can be promoted at the given time:
// it must be active and not yet expired.
func (h Hold) IsEligible(now time.Time) bool {
	return h.Active && h.EndAt.After(now)
}
