package domain

import "time"

// LifeStatus tracks where an animal is in its lifecycle. SOLD, SLAUGHTERED
// and DEAD are terminal: once reached, the animal is excluded from every
// "currently active" query and can no longer be moved.
type LifeStatus string

const (
	Alive       LifeStatus = "ALIVE"
	Sold        LifeStatus = "SOLD"
	Slaughtered LifeStatus = "SLAUGHTERED"
	Dead        LifeStatus = "DEAD"
	Semen       LifeStatus = "SEMEN" // sire kept only as a semen source
)

// IsTerminal reports whether the status is a one-way exit from the herd.
func (s LifeStatus) IsTerminal() bool {
	switch s {
	case Sold, Slaughtered, Dead:
		return true
	}
	return false
}

// Sex of an animal.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// Animal is a single head of livestock identified by its external tag.
//
// CurrentPastureID and CurrentLotID are materialized pointers, not sources of
// truth: the pasture pointer must always equal the destination of the animal's
// open movement (or nil when it has none), and only the movement repository
// writes it.
type Animal struct {
	AnimalID         string     `json:"animalID"`
	Tag              string     `json:"tag"` // unique external identification
	Name             string     `json:"name"`
	BirthDate        time.Time  `json:"birthDate"`
	Sex              Sex        `json:"sex"`
	LifeStatus       LifeStatus `json:"lifeStatus"`
	MotherID         *string    `json:"motherID"`
	FatherID         *string    `json:"fatherID"`
	Notes            string     `json:"notes"`
	CurrentPastureID *string    `json:"currentPastureID"`
	CurrentLotID     *string    `json:"currentLotID"`
	AuditFields
}

// AgeInMonths returns the animal's age in whole months as of the given date.
func (a Animal) AgeInMonths(asOf time.Time) int {
	years := asOf.Year() - a.BirthDate.Year()
	months := int(asOf.Month()) - int(a.BirthDate.Month())
	if asOf.Day() < a.BirthDate.Day() {
		months--
	}
	total := years*12 + months
	if total < 0 {
		return 0
	}
	return total
}
