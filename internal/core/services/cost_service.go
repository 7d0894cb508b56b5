package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
	"github.com/herdstack/herd_management_app/internal/utils/allocation"
)

var ErrAmountNegative = errors.New("cost amount must not be negative")

// costService provides cost recording and the allocation ledger reads.
type costService struct {
	BaseService
	costRepo    portsrepo.CostRepositoryFacade
	animalRepo  portsrepo.AnimalRepositoryFacade
	pastureRepo portsrepo.PastureRepositoryFacade
}

// NewCostService creates a new CostService.
func NewCostService(costRepo portsrepo.CostRepositoryFacade, animalRepo portsrepo.AnimalRepositoryFacade, pastureRepo portsrepo.PastureRepositoryFacade) portssvc.CostSvcFacade {
	return &costService{
		costRepo:    costRepo,
		animalRepo:  animalRepo,
		pastureRepo: pastureRepo,
	}
}

var _ portssvc.CostSvcFacade = (*costService)(nil)

func (s *costService) validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s (got %s)", apperrors.ErrValidation, ErrAmountNegative, amount.String())
	}
	if amount.Exponent() < -allocation.CurrencyPlaces {
		return fmt.Errorf("%w: amount %s exceeds %d decimal places", apperrors.ErrValidation, amount.String(), allocation.CurrencyPlaces)
	}
	return nil
}

// CreateCostRecord persists the record and applies allocation exactly once,
// in one repository transaction.
func (s *costService) CreateCostRecord(ctx context.Context, req dto.CreateCostRecordRequest, actorID string) (*domain.CostRecord, int, error) {
	if err := s.validateAmount(req.Amount); err != nil {
		return nil, 0, err
	}

	if req.AnimalID != nil {
		if _, err := s.animalRepo.FindAnimalByID(ctx, *req.AnimalID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, 0, apperrors.NewNotFoundError("animal " + *req.AnimalID + " not found")
			}
			return nil, 0, err
		}
	}
	if req.PastureID != nil {
		if _, err := s.pastureRepo.FindPastureByID(ctx, *req.PastureID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, 0, apperrors.NewNotFoundError("pasture " + *req.PastureID + " not found")
			}
			return nil, 0, err
		}
	}

	now := time.Now().UTC()
	category, err := s.costRepo.GetOrCreateCategory(ctx, req.CategoryName, "", actorID, now)
	if err != nil {
		return nil, 0, err
	}

	quantity := decimal.NewFromInt(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	record := domain.CostRecord{
		CostID:      uuid.New().String(),
		CategoryID:  category.CategoryID,
		CostDate:    req.CostDate,
		Amount:      req.Amount,
		Description: req.Description,
		AnimalID:    req.AnimalID,
		PastureID:   req.PastureID,
		Quantity:    quantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	allocated, err := s.costRepo.SaveCostRecord(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "failed to create cost record",
			slog.String("category", req.CategoryName), slog.String("amount", req.Amount.String()))
		return nil, 0, err
	}

	s.LogInfo(ctx, "cost record created",
		slog.String("cost_id", record.CostID),
		slog.String("amount", record.Amount.String()),
		slog.Int("allocated_count", allocated))
	return &record, allocated, nil
}

// RecordExpense records a farm-level expense with no per-animal allocation.
// The category is resolved by name and created on first use.
func (s *costService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, actorID string) (*domain.CostRecord, error) {
	record, _, err := s.CreateCostRecord(ctx, dto.CreateCostRecordRequest{
		CategoryName: req.CategoryName,
		CostDate:     req.PaymentDate,
		Amount:       req.Amount,
		Description:  req.Description,
	}, actorID)
	return record, err
}

// GetCostRecordByID retrieves a cost record by its ID.
func (s *costService) GetCostRecordByID(ctx context.Context, costID string) (*domain.CostRecord, error) {
	return s.costRepo.FindCostRecordByID(ctx, costID)
}

// UpdateCostRecord updates header fields only. The allocation written at
// creation time stands.
func (s *costService) UpdateCostRecord(ctx context.Context, costID string, req dto.UpdateCostRecordRequest, actorID string) (*domain.CostRecord, error) {
	record, err := s.costRepo.FindCostRecordByID(ctx, costID)
	if err != nil {
		return nil, err
	}

	if req.CostDate != nil {
		record.CostDate = *req.CostDate
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Quantity != nil {
		record.Quantity = *req.Quantity
	}

	record.LastUpdatedAt = time.Now().UTC()
	record.LastUpdatedBy = actorID

	if err := s.costRepo.UpdateCostRecord(ctx, *record); err != nil {
		s.LogError(ctx, err, "failed to update cost record", slog.String("cost_id", costID))
		return nil, err
	}
	return record, nil
}

// ListCostRecords retrieves cost records within [from, to].
func (s *costService) ListCostRecords(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.CostRecord, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s precedes start %s", apperrors.ErrValidation,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.costRepo.ListCostRecords(ctx, from, to, limit, offset)
}

// ListAllocations retrieves the allocation rows of a cost record.
func (s *costService) ListAllocations(ctx context.Context, costID string) ([]domain.CostAllocationDetail, error) {
	if _, err := s.costRepo.FindCostRecordByID(ctx, costID); err != nil {
		return nil, err
	}
	return s.costRepo.FindAllocationsByCostID(ctx, costID)
}

// ListAllocationsByAnimal retrieves every allocation row attributed to an
// animal.
func (s *costService) ListAllocationsByAnimal(ctx context.Context, animalID string) ([]domain.CostAllocationDetail, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	return s.costRepo.ListAllocationsByAnimal(ctx, animalID)
}

// ListCategories lists all cost categories.
func (s *costService) ListCategories(ctx context.Context) ([]domain.CostCategory, error) {
	return s.costRepo.ListCategories(ctx)
}
