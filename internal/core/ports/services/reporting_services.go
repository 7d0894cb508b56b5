package services

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// ReportingSvcFacade exposes the read-only reports built over occupancy,
// allocated costs and weighing history.
type ReportingSvcFacade interface {
	PastureSummary(ctx context.Context, pastureID string, from, to time.Time) (*domain.PastureSummary, error)
	CostByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryCost, error)

	// AnimalPerformance computes the animal's average daily gain from the
	// weighings of the last sinceDays days (all history when zero) plus its
	// accumulated allocated cost.
	AnimalPerformance(ctx context.Context, animalID string, sinceDays int) (*domain.AnimalPerformance, error)

	// DueTreatments lists the health treatments of living animals whose
	// follow-up date falls on or before the given date.
	DueTreatments(ctx context.Context, by time.Time) ([]domain.Treatment, error)
}
