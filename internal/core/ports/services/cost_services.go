package services

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// CostSvcFacade exposes cost recording and the allocation ledger reads.
type CostSvcFacade interface {
	// CreateCostRecord persists the record and applies allocation once.
	// Returns the record and the number of allocation rows written.
	CreateCostRecord(ctx context.Context, req dto.CreateCostRecordRequest, actorID string) (*domain.CostRecord, int, error)

	// RecordExpense records a farm-level expense, creating the category by
	// name when it does not exist yet.
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, actorID string) (*domain.CostRecord, error)

	GetCostRecordByID(ctx context.Context, costID string) (*domain.CostRecord, error)
	UpdateCostRecord(ctx context.Context, costID string, req dto.UpdateCostRecordRequest, actorID string) (*domain.CostRecord, error)
	ListCostRecords(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.CostRecord, error)
	ListAllocations(ctx context.Context, costID string) ([]domain.CostAllocationDetail, error)
	ListAllocationsByAnimal(ctx context.Context, animalID string) ([]domain.CostAllocationDetail, error)
	ListCategories(ctx context.Context) ([]domain.CostCategory, error)
}
