package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	"github.com/herdstack/herd_management_app/internal/models"
	"github.com/herdstack/herd_management_app/internal/utils/allocation"
	"github.com/herdstack/herd_management_app/internal/utils/mapping"
)

type PgxCostRepository struct {
	BaseRepository
}

func newPgxCostRepository(pool DBPool) portsrepo.CostRepositoryFacade {
	return &PgxCostRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CostRepositoryFacade = (*PgxCostRepository)(nil)

const costColumns = `cost_id, category_id, cost_date, amount, description, animal_id, pasture_id, quantity,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanCostRecord(row pgx.Row) (*models.CostRecord, error) {
	var c models.CostRecord
	err := row.Scan(
		&c.CostID,
		&c.CategoryID,
		&c.CostDate,
		&c.Amount,
		&c.Description,
		&c.AnimalID,
		&c.PastureID,
		&c.Quantity,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCostRecord inserts the record and applies allocation in one
// transaction. The occupancy read, the stale-row delete and the share inserts
// commit together with the record itself, so a reader never observes a
// pasture-scoped cost whose shares do not sum to its amount.
func (r *PgxCostRepository) SaveCostRecord(ctx context.Context, record domain.CostRecord) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCostRecord(record)
	_, err = tx.Exec(ctx, `
		INSERT INTO cost_records (
			cost_id, category_id, cost_date, amount, description, animal_id, pasture_id, quantity,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.CostID, m.CategoryID, m.CostDate, m.Amount, m.Description, m.AnimalID, m.PastureID, m.Quantity,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to save cost record "+m.CostID, err)
	}

	written, err := allocateCostTx(ctx, tx, m)
	if err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return written, nil
}

// allocateCostTx writes the per-animal allocation rows for a cost record.
// Stale rows are deleted first so replaying the allocation for a record is
// idempotent. Recipients are ordered by tag, which pins the remainder share
// to the same animal on every run. When the record carries both a pasture and
// an animal the pasture scope drives allocation; the animal reference is a tag
// on the record only.
func allocateCostTx(ctx context.Context, tx pgx.Tx, record models.CostRecord) (int, error) {
	_, err := tx.Exec(ctx, `DELETE FROM cost_allocation_details WHERE cost_id = $1;`, record.CostID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to clear allocation rows for cost "+record.CostID, err)
	}

	var recipients []string
	switch {
	case record.PastureID != nil:
		rows, err := tx.Query(ctx, `
			SELECT DISTINCT a.animal_id, a.tag
			FROM animals a
			JOIN movements m ON m.animal_id = a.animal_id
			WHERE m.destination_pasture_id = $1
			  AND m.entry_date <= $2
			  AND (m.exit_date > $2 OR m.exit_date IS NULL)
			ORDER BY a.tag;
		`, *record.PastureID, record.CostDate)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to query occupancy for cost "+record.CostID, err)
		}
		defer rows.Close()
		for rows.Next() {
			var id, tag string
			if err := rows.Scan(&id, &tag); err != nil {
				return 0, apperrors.NewAppError(500, "failed to scan occupancy row for cost "+record.CostID, err)
			}
			recipients = append(recipients, id)
		}
		if err := rows.Err(); err != nil {
			return 0, apperrors.NewAppError(500, "error iterating occupancy rows for cost "+record.CostID, err)
		}
		rows.Close()
	case record.AnimalID != nil:
		recipients = []string{*record.AnimalID}
	default:
		// Farm-level overhead: no allocation rows.
		return 0, nil
	}

	// An empty pasture on the cost date is not an error; the record simply
	// carries no allocation rows.
	if len(recipients) == 0 {
		return 0, nil
	}

	shares, err := allocation.Split(record.Amount, len(recipients))
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to split cost "+record.CostID, err)
	}

	batch := &pgx.Batch{}
	for i, animalID := range recipients {
		batch.Queue(
			`INSERT INTO cost_allocation_details (cost_id, animal_id, allocated) VALUES ($1, $2, $3);`,
			record.CostID, animalID, shares[i],
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range recipients {
		if _, err := results.Exec(); err != nil {
			return 0, apperrors.NewAppError(500, "failed to insert allocation row for cost "+record.CostID, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to flush allocation batch for cost "+record.CostID, err)
	}

	return len(recipients), nil
}

// UpdateCostRecord updates the record's header fields. Allocation rows are
// written once on creation and never re-derived here.
func (r *PgxCostRepository) UpdateCostRecord(ctx context.Context, record domain.CostRecord) error {
	m := mapping.ToModelCostRecord(record)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE cost_records
		SET cost_date = $2, description = $3, quantity = $4, last_updated_at = $5, last_updated_by = $6
		WHERE cost_id = $1;
	`,
		m.CostID, m.CostDate, m.Description, m.Quantity, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update cost record "+m.CostID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cost record " + m.CostID + " not found for update")
	}
	return nil
}

// GetOrCreateCategory finds the category by name, creating it when absent.
// A concurrent insert losing the race falls back to reading the winner's row.
func (r *PgxCostRepository) GetOrCreateCategory(ctx context.Context, name, description, actorID string, now time.Time) (*domain.CostCategory, error) {
	existing, err := r.FindCategoryByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	m := models.CostCategory{
		CategoryID:  uuid.New().String(),
		Name:        name,
		Description: description,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	_, err = r.Pool.Exec(ctx, `
		INSERT INTO cost_categories (category_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		m.CategoryID, m.Name, m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return r.FindCategoryByName(ctx, name)
		}
		return nil, apperrors.NewAppError(500, "failed to create cost category "+name, err)
	}

	result := mapping.ToDomainCostCategory(m)
	return &result, nil
}

// FindCostRecordByID retrieves a cost record by its ID.
func (r *PgxCostRepository) FindCostRecordByID(ctx context.Context, costID string) (*domain.CostRecord, error) {
	query := `SELECT ` + costColumns + ` FROM cost_records WHERE cost_id = $1;`
	c, err := scanCostRecord(r.Pool.QueryRow(ctx, query, costID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cost record by ID "+costID, err)
	}
	result := mapping.ToDomainCostRecord(*c)
	return &result, nil
}

// ListCostRecords retrieves cost records within [from, to], newest first.
func (r *PgxCostRepository) ListCostRecords(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.CostRecord, error) {
	query := `SELECT ` + costColumns + ` FROM cost_records
		WHERE cost_date >= $1 AND cost_date <= $2
		ORDER BY cost_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;`
	rows, err := r.Pool.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cost records", err)
	}
	defer rows.Close()

	records := []domain.CostRecord{}
	for rows.Next() {
		c, err := scanCostRecord(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cost record row", err)
		}
		records = append(records, mapping.ToDomainCostRecord(*c))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cost record rows", err)
	}

	return records, nil
}

// FindAllocationsByCostID retrieves the allocation rows of a cost record
// ordered by animal tag.
func (r *PgxCostRepository) FindAllocationsByCostID(ctx context.Context, costID string) ([]domain.CostAllocationDetail, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT d.cost_id, d.animal_id, d.allocated
		FROM cost_allocation_details d
		JOIN animals a ON a.animal_id = d.animal_id
		WHERE d.cost_id = $1
		ORDER BY a.tag;
	`, costID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query allocation rows for cost "+costID, err)
	}
	return collectAllocations(rows)
}

// ListAllocationsByAnimal retrieves every allocation row attributed to an
// animal, newest cost first.
func (r *PgxCostRepository) ListAllocationsByAnimal(ctx context.Context, animalID string) ([]domain.CostAllocationDetail, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT d.cost_id, d.animal_id, d.allocated
		FROM cost_allocation_details d
		JOIN cost_records c ON c.cost_id = d.cost_id
		WHERE d.animal_id = $1
		ORDER BY c.cost_date DESC, c.created_at DESC;
	`, animalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query allocation rows for animal "+animalID, err)
	}
	return collectAllocations(rows)
}

func collectAllocations(rows pgx.Rows) ([]domain.CostAllocationDetail, error) {
	defer rows.Close()
	details := []models.CostAllocationDetail{}
	for rows.Next() {
		var d models.CostAllocationDetail
		if err := rows.Scan(&d.CostID, &d.AnimalID, &d.Allocated); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan allocation row", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating allocation rows", err)
	}
	return mapping.ToDomainAllocationDetailSlice(details), nil
}

// FindCategoryByName retrieves a cost category by its unique name.
func (r *PgxCostRepository) FindCategoryByName(ctx context.Context, name string) (*domain.CostCategory, error) {
	var m models.CostCategory
	err := r.Pool.QueryRow(ctx, `
		SELECT category_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM cost_categories WHERE name = $1;
	`, name).Scan(&m.CategoryID, &m.Name, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cost category by name "+name, err)
	}
	result := mapping.ToDomainCostCategory(m)
	return &result, nil
}

// ListCategories lists all cost categories ordered by name.
func (r *PgxCostRepository) ListCategories(ctx context.Context) ([]domain.CostCategory, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT category_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM cost_categories ORDER BY name;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cost categories", err)
	}
	defer rows.Close()

	categories := []domain.CostCategory{}
	for rows.Next() {
		var m models.CostCategory
		if err := rows.Scan(&m.CategoryID, &m.Name, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cost category row", err)
		}
		categories = append(categories, mapping.ToDomainCostCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cost category rows", err)
	}

	return categories, nil
}
