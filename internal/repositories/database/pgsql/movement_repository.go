package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	"github.com/herdstack/herd_management_app/internal/models"
	"github.com/herdstack/herd_management_app/internal/utils/mapping"
)

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for the movement ledger.
func newPgxMovementRepository(pool DBPool) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

const movementColumns = `movement_id, animal_id, origin_pasture_id, destination_pasture_id,
	       entry_date, exit_date, reason, created_at, created_by, last_updated_at, last_updated_by`

func scanMovement(row pgx.Row) (*models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.AnimalID,
		&m.OriginPastureID,
		&m.DestinationPastureID,
		&m.EntryDate,
		&m.ExitDate,
		&m.Reason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// lockedAnimal is the slice of the animal row a movement write needs under
// FOR UPDATE.
type lockedAnimal struct {
	AnimalID         string
	LifeStatus       models.LifeStatus
	CurrentPastureID *string
}

// lockAnimalRow takes a row-level lock on the animal, serializing concurrent
// writes to its movement history.
func lockAnimalRow(ctx context.Context, tx pgx.Tx, animalID string) (*lockedAnimal, error) {
	var a lockedAnimal
	err := tx.QueryRow(ctx,
		`SELECT animal_id, life_status, current_pasture_id FROM animals WHERE animal_id = $1 FOR UPDATE;`,
		animalID,
	).Scan(&a.AnimalID, &a.LifeStatus, &a.CurrentPastureID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock animal "+animalID, err)
	}
	return &a, nil
}

// closePriorOpenMovement finds the animal's open movement, validates interval
// ordering against the new entry date and closes it. Returns the closed
// movement's ID, or empty when the animal had none. More than one open row is
// a consistency violation and is refused.
func closePriorOpenMovement(ctx context.Context, tx pgx.Tx, animalID string, entryDate time.Time, actorID string, now time.Time) (string, error) {
	rows, err := tx.Query(ctx,
		`SELECT movement_id, entry_date FROM movements WHERE animal_id = $1 AND exit_date IS NULL;`,
		animalID,
	)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to query open movements for animal "+animalID, err)
	}
	defer rows.Close()

	type openRow struct {
		id    string
		entry time.Time
	}
	var open []openRow
	for rows.Next() {
		var o openRow
		if err := rows.Scan(&o.id, &o.entry); err != nil {
			return "", apperrors.NewAppError(500, "failed to scan open movement row", err)
		}
		open = append(open, o)
	}
	if err := rows.Err(); err != nil {
		return "", apperrors.NewAppError(500, "error iterating open movement rows", err)
	}
	rows.Close()

	if len(open) > 1 {
		return "", fmt.Errorf("%w: animal %s has %d open movements", apperrors.ErrConsistency, animalID, len(open))
	}
	if len(open) == 0 {
		return "", nil
	}

	prior := open[0]
	if entryDate.Before(prior.entry) {
		return "", fmt.Errorf("%w: entry date %s precedes the open interval's entry date %s",
			apperrors.ErrValidation, entryDate.Format(time.DateOnly), prior.entry.Format(time.DateOnly))
	}

	_, err = tx.Exec(ctx,
		`UPDATE movements SET exit_date = $2, last_updated_at = $3, last_updated_by = $4 WHERE movement_id = $1;`,
		prior.id, entryDate, now, actorID,
	)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to close movement "+prior.id, err)
	}
	return prior.id, nil
}

// openMovementTx performs the whole residency transition for one animal
// inside the caller's transaction: close the prior interval, insert the new
// open movement and update the materialized pasture pointer. The animal row
// must already be locked; the movement's origin is resolved from it when the
// caller left it nil. The lot repository reuses this for bulk moves.
func openMovementTx(ctx context.Context, tx pgx.Tx, animal *lockedAnimal, movement models.Movement) (*models.Movement, error) {
	if _, err := closePriorOpenMovement(ctx, tx, animal.AnimalID, movement.EntryDate, movement.LastUpdatedBy, movement.LastUpdatedAt); err != nil {
		return nil, err
	}

	if movement.OriginPastureID == nil {
		movement.OriginPastureID = animal.CurrentPastureID
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO movements (
			movement_id, animal_id, origin_pasture_id, destination_pasture_id,
			entry_date, exit_date, reason,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, NULL, $6, $7, $8, $9, $10);
	`,
		movement.MovementID,
		movement.AnimalID,
		movement.OriginPastureID,
		movement.DestinationPastureID,
		movement.EntryDate,
		movement.Reason,
		movement.CreatedAt,
		movement.CreatedBy,
		movement.LastUpdatedAt,
		movement.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert movement "+movement.MovementID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE animals SET current_pasture_id = $2, last_updated_at = $3, last_updated_by = $4 WHERE animal_id = $1;`,
		movement.AnimalID, movement.DestinationPastureID, movement.LastUpdatedAt, movement.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update current pasture for animal "+movement.AnimalID, err)
	}

	return &movement, nil
}

// SaveMovement persists a new open movement atomically: lock the animal, close
// its prior open interval at the new entry date, insert the row and project
// the destination onto the animal's materialized pasture.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) (*domain.Movement, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	animal, err := lockAnimalRow(ctx, tx, movement.AnimalID)
	if err != nil {
		return nil, err
	}

	saved, err := openMovementTx(ctx, tx, animal, mapping.ToModelMovement(movement))
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := mapping.ToDomainMovement(*saved)
	return &result, nil
}

// FindMovementByID retrieves a movement by its ID.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1;`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find movement by ID "+movementID, err)
	}
	result := mapping.ToDomainMovement(*m)
	return &result, nil
}

// FindOpenMovementByAnimal retrieves the animal's open movement, or
// ErrNotFound when the animal has none.
func (r *PgxMovementRepository) FindOpenMovementByAnimal(ctx context.Context, animalID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE animal_id = $1 AND exit_date IS NULL;`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, animalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open movement for animal "+animalID, err)
	}
	result := mapping.ToDomainMovement(*m)
	return &result, nil
}

// ListMovementsByAnimal retrieves the animal's movement history, newest entry
// first.
func (r *PgxMovementRepository) ListMovementsByAnimal(ctx context.Context, animalID string) ([]domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE animal_id = $1 ORDER BY entry_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, animalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for animal "+animalID, err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row for animal "+animalID, err)
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement rows for animal "+animalID, err)
	}

	return mapping.ToDomainMovementSlice(movements), nil
}

// occupancyQuery selects the animals whose movement history places them in a
// pasture over a predicate on entry/exit dates.
var occupancyQuery = `
	SELECT DISTINCT ` + animalColumnsPrefixed + `
	FROM animals a
	JOIN movements m ON m.animal_id = a.animal_id
	WHERE m.destination_pasture_id = $1
	  AND m.entry_date <= $2
	  AND (m.exit_date %s OR m.exit_date IS NULL)
	ORDER BY a.tag;
`

// OccupancyAt returns the animals resident in the pasture on the given date.
func (r *PgxMovementRepository) OccupancyAt(ctx context.Context, pastureID string, asOf time.Time) ([]domain.Animal, error) {
	query := fmt.Sprintf(occupancyQuery, "> $2")
	return r.queryOccupancy(ctx, query, pastureID, asOf)
}

// OccupancyBetween returns the animals resident in the pasture at any point
// of [from, to].
func (r *PgxMovementRepository) OccupancyBetween(ctx context.Context, pastureID string, from, to time.Time) ([]domain.Animal, error) {
	query := `
	SELECT DISTINCT ` + animalColumnsPrefixed + `
	FROM animals a
	JOIN movements m ON m.animal_id = a.animal_id
	WHERE m.destination_pasture_id = $1
	  AND m.entry_date <= $3
	  AND (m.exit_date >= $2 OR m.exit_date IS NULL)
	ORDER BY a.tag;
`
	return r.queryOccupancy(ctx, query, pastureID, from, to)
}

func (r *PgxMovementRepository) queryOccupancy(ctx context.Context, query string, args ...any) ([]domain.Animal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pasture occupancy", err)
	}
	defer rows.Close()

	animals := []models.Animal{}
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan occupancy row", err)
		}
		animals = append(animals, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating occupancy rows", err)
	}

	return mapping.ToDomainAnimalSlice(animals), nil
}

// assertNoOverlapTx fails with ErrValidation when the corrected interval
// intersects any other movement of the same animal. Intervals are half-open
// [entry, exit); an open interval extends to infinity. Runs under the
// animal's row lock so a concurrent correction cannot slip a second
// conflicting interval past the check.
func assertNoOverlapTx(ctx context.Context, tx pgx.Tx, movement models.Movement) error {
	var conflictID string
	err := tx.QueryRow(ctx, `
		SELECT movement_id FROM movements
		WHERE animal_id = $1
		  AND movement_id <> $2
		  AND ($4::date IS NULL OR entry_date < $4)
		  AND (exit_date IS NULL OR exit_date > $3)
		LIMIT 1;
	`, movement.AnimalID, movement.MovementID, movement.EntryDate, movement.ExitDate).Scan(&conflictID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return apperrors.NewAppError(500, "failed to check interval overlap for movement "+movement.MovementID, err)
	}
	return fmt.Errorf("%w: corrected interval for movement %s overlaps movement %s",
		apperrors.ErrValidation, movement.MovementID, conflictID)
}

// UpdateMovement applies an administrative correction to a ledger row and
// re-derives the animal's materialized pasture inside the same transaction.
// The corrected interval must not overlap the animal's other movements.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := lockAnimalRow(ctx, tx, movement.AnimalID); err != nil {
		return err
	}

	m := mapping.ToModelMovement(movement)
	if err := assertNoOverlapTx(ctx, tx, m); err != nil {
		return err
	}
	cmdTag, err := tx.Exec(ctx, `
		UPDATE movements
		SET origin_pasture_id = $2,
		    destination_pasture_id = $3,
		    entry_date = $4,
		    exit_date = $5,
		    reason = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE movement_id = $1;
	`,
		m.MovementID, m.OriginPastureID, m.DestinationPastureID, m.EntryDate, m.ExitDate, m.Reason, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update movement "+m.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("movement " + m.MovementID + " not found for update")
	}

	if err := reprojectCurrentPasture(ctx, tx, m.AnimalID, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteMovement removes a ledger row (administrative correction only) and
// re-derives the animal's materialized pasture inside the same transaction.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var animalID string
	err = tx.QueryRow(ctx, `SELECT animal_id FROM movements WHERE movement_id = $1;`, movementID).Scan(&animalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to resolve animal for movement "+movementID, err)
	}

	if _, err := lockAnimalRow(ctx, tx, animalID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM movements WHERE movement_id = $1;`, movementID); err != nil {
		return apperrors.NewAppError(500, "failed to delete movement "+movementID, err)
	}

	if err := reprojectCurrentPasture(ctx, tx, animalID, "system", time.Now().UTC()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// reprojectCurrentPasture re-derives the animal's materialized pasture from
// the ledger: the destination of its open movement, else NULL. Refuses to
// proceed when more than one open movement exists.
func reprojectCurrentPasture(ctx context.Context, tx pgx.Tx, animalID, actorID string, now time.Time) error {
	rows, err := tx.Query(ctx,
		`SELECT destination_pasture_id FROM movements WHERE animal_id = $1 AND exit_date IS NULL;`,
		animalID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query open movements for projection of animal "+animalID, err)
	}
	defer rows.Close()

	var destinations []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return apperrors.NewAppError(500, "failed to scan projection row", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating projection rows", err)
	}
	rows.Close()

	if len(destinations) > 1 {
		return fmt.Errorf("%w: animal %s has %d open movements", apperrors.ErrConsistency, animalID, len(destinations))
	}

	var current *string
	if len(destinations) == 1 {
		current = &destinations[0]
	}

	_, err = tx.Exec(ctx,
		`UPDATE animals SET current_pasture_id = $2, last_updated_at = $3, last_updated_by = $4 WHERE animal_id = $1;`,
		animalID, current, now, actorID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to project current pasture for animal "+animalID, err)
	}
	return nil
}
