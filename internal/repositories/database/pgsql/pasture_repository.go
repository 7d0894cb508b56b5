package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	"github.com/herdstack/herd_management_app/internal/models"
	"github.com/herdstack/herd_management_app/internal/utils/mapping"
)

type PgxPastureRepository struct {
	BaseRepository
}

func newPgxPastureRepository(pool DBPool) portsrepo.PastureRepositoryFacade {
	return &PgxPastureRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PastureRepositoryFacade = (*PgxPastureRepository)(nil)

const pastureColumns = `pasture_id, name, area_hectares, forage_type, max_capacity_units,
	       last_maintenance_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanPasture(row pgx.Row) (*models.Pasture, error) {
	var p models.Pasture
	err := row.Scan(
		&p.PastureID,
		&p.Name,
		&p.AreaHectares,
		&p.ForageType,
		&p.MaxCapacityUnits,
		&p.LastMaintenanceDate,
		&p.Notes,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePasture persists a new pasture.
func (r *PgxPastureRepository) SavePasture(ctx context.Context, pasture domain.Pasture) error {
	m := mapping.ToModelPasture(pasture)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO pastures (
			pasture_id, name, area_hectares, forage_type, max_capacity_units,
			last_maintenance_date, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		m.PastureID, m.Name, m.AreaHectares, m.ForageType, m.MaxCapacityUnits,
		m.LastMaintenanceDate, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pasture name %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to save pasture "+m.PastureID, err)
	}
	return nil
}

// UpdatePasture updates a pasture's fields.
func (r *PgxPastureRepository) UpdatePasture(ctx context.Context, pasture domain.Pasture) error {
	m := mapping.ToModelPasture(pasture)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE pastures
		SET name = $2, area_hectares = $3, forage_type = $4, max_capacity_units = $5,
		    last_maintenance_date = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE pasture_id = $1;
	`,
		m.PastureID, m.Name, m.AreaHectares, m.ForageType, m.MaxCapacityUnits,
		m.LastMaintenanceDate, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pasture name %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to update pasture "+m.PastureID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("pasture " + m.PastureID + " not found for update")
	}
	return nil
}

// DeletePasture removes a pasture. The movement ledger is the system of
// record, so deletion is refused while any movement references the pasture as
// its destination; origin references and the materialized pointers on animals
// and lots fall back to NULL.
func (r *PgxPastureRepository) DeletePasture(ctx context.Context, pastureID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var refs int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM movements WHERE destination_pasture_id = $1;`,
		pastureID,
	).Scan(&refs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to count movement references for pasture "+pastureID, err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: pasture %s is referenced by %d movements", apperrors.ErrValidation, pastureID, refs)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM pastures WHERE pasture_id = $1;`, pastureID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete pasture "+pastureID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("pasture " + pastureID + " not found for deletion")
	}

	return r.Commit(ctx, tx)
}

// FindPastureByID retrieves a pasture by its ID.
func (r *PgxPastureRepository) FindPastureByID(ctx context.Context, pastureID string) (*domain.Pasture, error) {
	query := `SELECT ` + pastureColumns + ` FROM pastures WHERE pasture_id = $1;`
	p, err := scanPasture(r.Pool.QueryRow(ctx, query, pastureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find pasture by ID "+pastureID, err)
	}
	result := mapping.ToDomainPasture(*p)
	return &result, nil
}

// FindPastureByName retrieves a pasture by its unique name.
func (r *PgxPastureRepository) FindPastureByName(ctx context.Context, name string) (*domain.Pasture, error) {
	query := `SELECT ` + pastureColumns + ` FROM pastures WHERE name = $1;`
	p, err := scanPasture(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find pasture by name "+name, err)
	}
	result := mapping.ToDomainPasture(*p)
	return &result, nil
}

// ListPastures lists all pastures ordered by name.
func (r *PgxPastureRepository) ListPastures(ctx context.Context) ([]domain.Pasture, error) {
	query := `SELECT ` + pastureColumns + ` FROM pastures ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pastures", err)
	}
	defer rows.Close()

	pastures := []domain.Pasture{}
	for rows.Next() {
		p, err := scanPasture(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan pasture row", err)
		}
		pastures = append(pastures, mapping.ToDomainPasture(*p))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating pasture rows", err)
	}

	return pastures, nil
}
