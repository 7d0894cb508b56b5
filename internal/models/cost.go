package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostCategory maps to the cost_categories table.
type CostCategory struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// CostRecord maps to the cost_records table.
type CostRecord struct {
	CostID      string          `json:"costID"`
	CategoryID  string          `json:"categoryID"`
	CostDate    time.Time       `json:"costDate"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AnimalID    *string         `json:"animalID"`
	PastureID   *string         `json:"pastureID"`
	Quantity    decimal.Decimal `json:"quantity"`
	AuditFields
}

// CostAllocationDetail maps to the cost_allocation_details table.
// (cost_id, animal_id) is unique.
type CostAllocationDetail struct {
	CostID    string          `json:"costID"`
	AnimalID  string          `json:"animalID"`
	Allocated decimal.Decimal `json:"allocated"`
}
