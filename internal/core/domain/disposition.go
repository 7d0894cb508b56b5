package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DispositionKind names how an animal left the herd.
type DispositionKind string

const (
	DispositionSale      DispositionKind = "SALE"
	DispositionSlaughter DispositionKind = "SLAUGHTER"
	DispositionDeath     DispositionKind = "DEATH"
)

// LifeStatus returns the terminal status a disposition of this kind moves the
// animal into.
func (k DispositionKind) LifeStatus() LifeStatus {
	switch k {
	case DispositionSale:
		return Sold
	case DispositionSlaughter:
		return Slaughtered
	case DispositionDeath:
		return Dead
	}
	return ""
}

// Disposition records the one-way exit of an animal from the herd: a sale, a
// slaughter or a death. Recording it also closes the animal's open movement,
// so the ledger never keeps a dangling open interval for a gone animal.
type Disposition struct {
	DispositionID   string           `json:"dispositionID"`
	AnimalID        string           `json:"animalID"`
	Kind            DispositionKind  `json:"kind"`
	DispositionDate time.Time        `json:"dispositionDate"`
	WeightKg        *decimal.Decimal `json:"weightKg"`     // sale or carcass weight
	Amount          *decimal.Decimal `json:"amount"`       // sale value or estimated carcass value
	Counterparty    string           `json:"counterparty"` // buyer, or carcass destination
	Cause           string           `json:"cause"`        // death cause, free text
	Notes           string           `json:"notes"`
	AuditFields
}
