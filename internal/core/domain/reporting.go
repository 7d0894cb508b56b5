package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PastureSummary aggregates one pasture's occupancy and allocated cost over a
// date range.
type PastureSummary struct {
	PastureID   string          `json:"pastureID"`
	PastureName string          `json:"pastureName"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	AnimalCount int             `json:"animalCount"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// CategoryCost is the allocated total for one cost category over a period.
type CategoryCost struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// AnimalPerformance reports an animal's weight trajectory and accumulated
// allocated cost. AverageDailyGainKg is nil when fewer than two weighings
// exist in the window.
type AnimalPerformance struct {
	AnimalID          string           `json:"animalID"`
	Tag               string           `json:"tag"`
	FirstWeighDate    *time.Time       `json:"firstWeighDate"`
	LastWeighDate     *time.Time       `json:"lastWeighDate"`
	FirstWeightKg     *decimal.Decimal `json:"firstWeightKg"`
	LastWeightKg      *decimal.Decimal `json:"lastWeightKg"`
	AverageDailyGainKg *decimal.Decimal `json:"averageDailyGainKg"`
	TotalAllocatedCost decimal.Decimal  `json:"totalAllocatedCost"`
}
