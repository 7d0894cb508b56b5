package domain

import "time"

// Movement is one residency interval in an animal's pasture timeline: the
// animal entered DestinationPastureID on EntryDate and left on ExitDate. A nil
// ExitDate marks the open interval, i.e. the animal is still there. For any
// animal at most one movement may be open at a time.
type Movement struct {
	MovementID           string     `json:"movementID"`
	AnimalID             string     `json:"animalID"`
	OriginPastureID      *string    `json:"originPastureID"` // nil for a first movement or unknown origin
	DestinationPastureID string     `json:"destinationPastureID"`
	EntryDate            time.Time  `json:"entryDate"`
	ExitDate             *time.Time `json:"exitDate"`
	Reason               string     `json:"reason"`
	AuditFields
}

// IsOpen reports whether the movement is the animal's current residency.
func (m Movement) IsOpen() bool {
	return m.ExitDate == nil
}

// Covers reports whether the animal was resident under this movement on the
// given date: entry on or before the date, and either still open or exited
// strictly after it.
func (m Movement) Covers(date time.Time) bool {
	if m.EntryDate.After(date) {
		return false
	}
	return m.ExitDate == nil || m.ExitDate.After(date)
}

// Overlaps reports whether two movements' intervals intersect in time.
// Touching endpoints (one exits the day the other enters) do not overlap.
func (m Movement) Overlaps(other Movement) bool {
	mEndsBefore := m.ExitDate != nil && !m.ExitDate.After(other.EntryDate)
	otherEndsBefore := other.ExitDate != nil && !other.ExitDate.After(m.EntryDate)
	return !mEndsBefore && !otherEndsBefore
}
