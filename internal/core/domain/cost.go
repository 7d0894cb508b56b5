package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostCategory groups cost records (feed, veterinary, labour, ...).
// Name is the single lookup key: recording an expense against an unknown
// category name creates the category on the fly.
type CostCategory struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// CostRecord is a monetary cost optionally tied to a pasture or an individual
// animal. A pasture-scoped record is split across the animals resident in the
// pasture on CostDate; an animal-scoped record is attributed whole; a record
// with neither is farm-level overhead.
type CostRecord struct {
	CostID      string          `json:"costID"`
	CategoryID  string          `json:"categoryID"`
	CostDate    time.Time       `json:"costDate"`
	Amount      decimal.Decimal `json:"amount"` // total, 2 decimal places
	Description string          `json:"description"`
	AnimalID    *string         `json:"animalID"`
	PastureID   *string         `json:"pastureID"`
	Quantity    decimal.Decimal `json:"quantity"` // doses, bags, hours; defaults to 1
	AuditFields
}

// CostAllocationDetail is the share of a cost record attributed to one animal.
// The allocated amounts for a record always sum exactly to the record's total.
type CostAllocationDetail struct {
	CostID    string          `json:"costID"`
	AnimalID  string          `json:"animalID"`
	Allocated decimal.Decimal `json:"allocated"`
}
