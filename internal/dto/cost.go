package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCostRecordRequest records a cost against a pasture, an animal, or the
// farm as a whole. A pasture-scoped cost is split across the animals resident
// there on CostDate; when both AnimalID and PastureID are set the pasture
// drives allocation and the animal is carried as a reference on the record.
type CreateCostRecordRequest struct {
	CategoryName string           `json:"categoryName" binding:"required,max=100"`
	CostDate     time.Time        `json:"costDate" binding:"required"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	Description  string           `json:"description" binding:"required"`
	AnimalID     *string          `json:"animalID"`
	PastureID    *string          `json:"pastureID"`
	Quantity     *decimal.Decimal `json:"quantity" binding:"omitempty,gt=0"`
}

// UpdateCostRecordRequest updates cost header fields. Changing them never
// re-runs allocation; the original allocation event stands.
type UpdateCostRecordRequest struct {
	CostDate    *time.Time       `json:"costDate"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"omitempty,gt=0"`
}

// RecordExpenseRequest records a general farm expense. The category is looked
// up by name and created on first use.
type RecordExpenseRequest struct {
	CategoryName string          `json:"categoryName" binding:"required,max=100"`
	PaymentDate  time.Time       `json:"paymentDate" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description" binding:"required,max=255"`
}

// CostRecordResponse returns a cost record together with the number of
// allocation rows it produced.
type CostRecordResponse struct {
	CostID         string          `json:"costID"`
	CategoryID     string          `json:"categoryID"`
	CostDate       time.Time       `json:"costDate"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	AnimalID       *string         `json:"animalID"`
	PastureID      *string         `json:"pastureID"`
	Quantity       decimal.Decimal `json:"quantity"`
	AllocatedCount int             `json:"allocatedCount"`
}
