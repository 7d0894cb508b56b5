package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries behind the
// reporting collaborators. No method here mutates core state.
type ReportingRepository interface {
	// GetPastureSummaryData returns the distinct count of animals resident in
	// the pasture at any point of [from, to] and the total cost allocated to
	// pasture-scoped cost records there in the same period.
	GetPastureSummaryData(ctx context.Context, pastureID string, from, to time.Time) (animalCount int, totalCost decimal.Decimal, err error)

	// GetCostTotalsByCategory returns allocated cost totals grouped by
	// category over [from, to], largest first.
	GetCostTotalsByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryCost, error)

	// GetAllocatedTotalForAnimal returns the sum of all allocation rows
	// attributed to the animal.
	GetAllocatedTotalForAnimal(ctx context.Context, animalID string) (decimal.Decimal, error)
}
