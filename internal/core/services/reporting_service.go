package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
)

// gainPrecision is the decimal places kept for average daily gain.
const gainPrecision = 3

// reportingService provides read-only reports over occupancy, allocated
// costs, weighing history and the treatment calendar.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	pastureRepo   portsrepo.PastureRepositoryFacade
	animalRepo    portsrepo.AnimalRepositoryFacade
	weighingRepo  portsrepo.WeighingRepositoryFacade
	treatmentRepo portsrepo.TreatmentRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, pastureRepo portsrepo.PastureRepositoryFacade, animalRepo portsrepo.AnimalRepositoryFacade, weighingRepo portsrepo.WeighingRepositoryFacade, treatmentRepo portsrepo.TreatmentRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		pastureRepo:   pastureRepo,
		animalRepo:    animalRepo,
		weighingRepo:  weighingRepo,
		treatmentRepo: treatmentRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// PastureSummary aggregates a pasture's occupancy and allocated cost over a
// date range.
func (s *reportingService) PastureSummary(ctx context.Context, pastureID string, from, to time.Time) (*domain.PastureSummary, error) {
	pasture, err := s.pastureRepo.FindPastureByID(ctx, pastureID)
	if err != nil {
		return nil, err
	}

	animalCount, totalCost, err := s.reportingRepo.GetPastureSummaryData(ctx, pastureID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.PastureSummary{
		PastureID:   pasture.PastureID,
		PastureName: pasture.Name,
		From:        from,
		To:          to,
		AnimalCount: animalCount,
		TotalCost:   totalCost,
	}, nil
}

// DueTreatments lists treatments of living animals whose follow-up date
// falls on or before the given date.
func (s *reportingService) DueTreatments(ctx context.Context, by time.Time) ([]domain.Treatment, error) {
	return s.treatmentRepo.ListTreatmentsDueBy(ctx, by)
}

// CostByCategory sums allocated cost by category over [from, to].
func (s *reportingService) CostByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryCost, error) {
	return s.reportingRepo.GetCostTotalsByCategory(ctx, from, to)
}

// AnimalPerformance computes the animal's average daily gain from its
// weighing history plus its accumulated allocated cost. With fewer than two
// weighings in the window, or zero days between them, the gain is nil.
func (s *reportingService) AnimalPerformance(ctx context.Context, animalID string, sinceDays int) (*domain.AnimalPerformance, error) {
	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	weighings, err := s.weighingRepo.ListWeighingsByAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}

	if sinceDays > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -sinceDays)
		filtered := weighings[:0]
		for _, w := range weighings {
			if !w.WeighDate.Before(cutoff) {
				filtered = append(filtered, w)
			}
		}
		weighings = filtered
	}

	totalCost, err := s.reportingRepo.GetAllocatedTotalForAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}

	perf := &domain.AnimalPerformance{
		AnimalID:           animal.AnimalID,
		Tag:                animal.Tag,
		TotalAllocatedCost: totalCost,
	}
	if len(weighings) == 0 {
		return perf, nil
	}

	first := weighings[0]
	last := weighings[len(weighings)-1]
	perf.FirstWeighDate = &first.WeighDate
	perf.LastWeighDate = &last.WeighDate
	perf.FirstWeightKg = &first.WeightKg
	perf.LastWeightKg = &last.WeightKg

	days := int64(last.WeighDate.Sub(first.WeighDate).Hours() / 24)
	if len(weighings) >= 2 && days > 0 {
		gain := last.WeightKg.Sub(first.WeightKg).DivRound(decimal.NewFromInt(days), gainPrecision)
		perf.AverageDailyGainKg = &gain
	}

	return perf, nil
}
