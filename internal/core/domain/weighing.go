package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Weighing is one weight measurement of an animal. The weighing history feeds
// the average daily gain reports.
type Weighing struct {
	WeighingID string          `json:"weighingID"`
	AnimalID   string          `json:"animalID"`
	WeighDate  time.Time       `json:"weighDate"`
	WeightKg   decimal.Decimal `json:"weightKg"`
	Event      string          `json:"event"` // e.g. weaning, yearly, pre-sale
	AuditFields
}
