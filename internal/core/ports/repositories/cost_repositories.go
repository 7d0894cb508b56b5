package repositories

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// CostReader defines read operations for cost data.
type CostReader interface {
	FindCostRecordByID(ctx context.Context, costID string) (*domain.CostRecord, error)

	// ListCostRecords retrieves cost records within [from, to], newest first.
	ListCostRecords(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.CostRecord, error)

	// FindAllocationsByCostID retrieves the per-animal allocation rows of a
	// cost record, ordered by animal tag.
	FindAllocationsByCostID(ctx context.Context, costID string) ([]domain.CostAllocationDetail, error)

	// ListAllocationsByAnimal retrieves every allocation row attributed to an
	// animal, newest cost first.
	ListAllocationsByAnimal(ctx context.Context, animalID string) ([]domain.CostAllocationDetail, error)

	FindCategoryByName(ctx context.Context, name string) (*domain.CostCategory, error)
	ListCategories(ctx context.Context) ([]domain.CostCategory, error)
}

// CostWriter defines write operations for cost data.
type CostWriter interface {
	// SaveCostRecord inserts the record and applies allocation in one
	// transaction. Pasture-scoped records read the pasture's occupancy on the
	// cost date inside the same transaction, delete any stale allocation rows
	// and insert one row per resident animal so the shares sum exactly to the
	// amount. Animal-scoped records get a single full-amount row. Returns the
	// number of allocation rows written.
	SaveCostRecord(ctx context.Context, record domain.CostRecord) (int, error)

	// UpdateCostRecord updates header fields only. Allocation is applied once
	// on creation and deliberately never re-run on update.
	UpdateCostRecord(ctx context.Context, record domain.CostRecord) error

	// GetOrCreateCategory finds the category by its unique name, creating it
	// when absent.
	GetOrCreateCategory(ctx context.Context, name, description, actorID string, now time.Time) (*domain.CostCategory, error)
}

// CostRepositoryFacade combines cost repository interfaces.
type CostRepositoryFacade interface {
	CostReader
	CostWriter
}
